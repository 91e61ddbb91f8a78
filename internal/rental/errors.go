package rental

import (
	"net/http"

	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
)

const (
	productNotFound  = "RENTAL_PRODUCT_NOT_FOUND" // errInfo
	duplicateBarcode = "DUPLICATE_BARCODE"        // errInfo
	historyNotFound  = "RENTAL_HISTORY_NOT_FOUND" // errInfo
)

var (
	ErrProductNotFound  = sharedError.NewDomainError(productNotFound)
	ErrDuplicateBarcode = sharedError.NewDomainError(duplicateBarcode)
	ErrHistoryNotFound  = sharedError.NewDomainError(historyNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(productNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "RENTAL-001",
		Message: "대여제품을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateBarcode, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "RENTAL-002",
		Message: "이미 등록된 바코드입니다.",
	})

	sharedError.RegisterDomainErrorResponse(historyNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "RENTAL-003",
		Message: "대여 이력을 찾을 수 없습니다.",
	})
}
