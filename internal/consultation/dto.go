package consultation

import (
	"github.com/bokjion/rental-care-api/internal/model"
)

// ProductLineRequest is one entry of the 구매목록. Name may be blank
// (free-text custom products are allowed); the statistics engine buckets
// blanks under 기타.
type ProductLineRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Copay    string `json:"copay"`
}

// SaveConsultationRequest is the full-record draft used for both insert
// and update. There is no partial-field patch.
type SaveConsultationRequest struct {
	Name       string               `json:"name" binding:"required,max=100"`
	Gender     string               `json:"gender" binding:"max=20"`
	Birth      string               `json:"birth" binding:"max=20"`
	Phone      string               `json:"phone" binding:"omitempty,phone"`
	RefType    string               `json:"refType" binding:"max=50"`
	Copay      string               `json:"copay" binding:"max=20"`
	CareGrade  string               `json:"careGrade" binding:"max=20"`
	CareNumber string               `json:"careNumber" binding:"max=50"`
	Address    string               `json:"address" binding:"max=255"`
	Content    string               `json:"content"`
	Date       string               `json:"date" binding:"required,dateformat"`
	Products   []ProductLineRequest `json:"products"`
}

type CreateConsultationResponse struct {
	ID uint32 `json:"id"`
}

type ListConsultationsResponse struct {
	Items      []model.Consultation `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"totalPages"`
}

type DeleteBatchRequest struct {
	IDs []uint32 `json:"ids" binding:"required,min=1"`
}
