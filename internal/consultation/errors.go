package consultation

import (
	"net/http"

	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
)

const (
	consultationNotFound = "CONSULTATION_NOT_FOUND" // errInfo
)

var (
	ErrConsultationNotFound = sharedError.NewDomainError(consultationNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(consultationNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CONSULT-001",
		Message: "상담 기록을 찾을 수 없습니다.",
	})
}
