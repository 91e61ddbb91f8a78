package rental

import (
	"github.com/bokjion/rental-care-api/internal/model"
)

// Known rental-address classifications. 기타 switches the form to a
// sibling free-text field whose value replaces the classification itself.
const (
	RentAddressHome   = "수급자집"
	RentAddressCenter = "이용센터"
	RentAddressOther  = "기타"
)

type CreateProductRequest struct {
	Category     string `json:"category" binding:"required,max=100"`
	ProductName  string `json:"productName" binding:"required,max=100"`
	ModelName    string `json:"modelName" binding:"required,max=100"`
	Barcode      string `json:"barcode" binding:"required,max=100"`
	RegisterDate string `json:"registerDate" binding:"omitempty,dateformat"`
}

type CreateProductResponse struct {
	ID uint32 `json:"id"`
}

type ListProductsResponse struct {
	Items []model.RentalProduct `json:"items"`
	Total int                   `json:"total"`
}

// ModelCount is the per-model line of the 제품 현황 summary.
type ModelCount struct {
	Total  int `json:"total"`
	Rented int `json:"rented"`
}

type InventoryStatsResponse struct {
	// category -> model -> counts
	Stats map[string]map[string]ModelCount `json:"stats"`
}

type ProductDetailResponse struct {
	Product *model.RentalProduct  `json:"product"`
	History []model.RentalHistory `json:"history"`
}

// SubmitHistoryRequest is the rental-history form for both the insert and
// the update path.
type SubmitHistoryRequest struct {
	Renter          string `json:"renter" binding:"required,max=100"`
	ApprovalNumber  string `json:"approvalNumber" binding:"max=50"`
	Type            string `json:"type" binding:"required,oneof=대여 위탁 보관"`
	ContractPeriod  string `json:"contractPeriod" binding:"max=100"`
	RentAddressType string `json:"rentAddressType" binding:"max=100"`
	RentAddressEtc  string `json:"rentAddressEtc" binding:"max=100"` // 기타 선택 시 자유입력
	RentAddress     string `json:"rentAddress" binding:"max=255"`
	Org             string `json:"org" binding:"max=100"`
	Memo            string `json:"memo"`
}

// ResolvedRentAddressType collapses the Known(enum) | Other(free text)
// pair into the stored string: 기타 is replaced by the free-text value.
func (r *SubmitHistoryRequest) ResolvedRentAddressType() string {
	if r.RentAddressType == RentAddressOther {
		return r.RentAddressEtc
	}
	return r.RentAddressType
}

type SubmitHistoryResponse struct {
	ID uint32 `json:"id"`
}
