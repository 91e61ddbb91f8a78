package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the canonical date format every date field round-trips
// through before it is written to the store.
const DateLayout = "2006-01-02"

// ValidateDateFormat checks that a string field is a calendar date in
// yyyy-MM-dd form. Empty values pass; combine with required where the
// field is mandatory.
func ValidateDateFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, datePart(value))
	return err == nil
}

// NormalizeDate cuts a date value down to the canonical yyyy-MM-dd form.
// Full timestamps (2025-06-10T09:30:00Z) lose their time-of-day part;
// values that are not valid dates come back empty.
func NormalizeDate(value string) string {
	part := datePart(value)
	if _, err := time.Parse(DateLayout, part); err != nil {
		return ""
	}
	return part
}

func datePart(value string) string {
	if idx := len(DateLayout); len(value) > idx {
		return value[:idx]
	}
	return value
}
