package consultation

import (
	"context"

	"github.com/bokjion/rental-care-api/internal/model"
	"gorm.io/gorm"
)

type ConsultationRepository struct{}

func NewConsultationRepository() *ConsultationRepository {
	return &ConsultationRepository{}
}

func (r *ConsultationRepository) Create(ctx context.Context, db *gorm.DB, consultation *model.Consultation) error {
	return db.WithContext(ctx).Create(consultation).Error
}

// Save replaces the whole record. Partial patches are not part of the
// contract; the form always submits a full draft.
func (r *ConsultationRepository) Save(ctx context.Context, db *gorm.DB, consultation *model.Consultation) error {
	return db.WithContext(ctx).Save(consultation).Error
}

func (r *ConsultationRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Consultation, error) {
	var consultation model.Consultation
	err := db.WithContext(ctx).Where("id = ?", id).First(&consultation).Error
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *ConsultationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Consultation, error) {
	var consultations []model.Consultation
	err := db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *ConsultationRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Consultation{}, id).Error
}

func (r *ConsultationRepository) DeleteByIDs(ctx context.Context, db *gorm.DB, ids []uint32) error {
	return db.WithContext(ctx).Delete(&model.Consultation{}, ids).Error
}
