package logger

import "strings"

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}

	parts := strings.Split(phone, "-")
	if len(parts) == 3 {
		return parts[0] + "-****-" + parts[2]
	}

	// 하이픈 없는 번호는 가운데 네 자리만 가린다
	if len(phone) >= 10 {
		return phone[:3] + "****" + phone[7:]
	}
	return "****"
}

// Example: 홍길동 -> 홍**
func MaskName(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return "*"
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
