package consultation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bokjion/rental-care-api/internal/model"
	"github.com/bokjion/rental-care-api/internal/shared/database"
	sharedValidator "github.com/bokjion/rental-care-api/internal/shared/validator"
	"gorm.io/gorm"
)

const DefaultPageSize = 10

type ConsultationService struct {
	db                     *gorm.DB
	consultationRepository *ConsultationRepository
}

func NewConsultationService(db *gorm.DB, consultationRepository *ConsultationRepository) *ConsultationService {
	return &ConsultationService{
		db:                     db,
		consultationRepository: consultationRepository,
	}
}

func (s *ConsultationService) Create(ctx context.Context, req *SaveConsultationRequest) (*CreateConsultationResponse, error) {
	consultation := s.toModel(req)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.consultationRepository.Create(ctx, tx, consultation); err != nil {
			return fmt.Errorf("상담 기록 등록 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateConsultationResponse{ID: consultation.ID}, nil
}

func (s *ConsultationService) Update(ctx context.Context, id uint32, req *SaveConsultationRequest) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.consultationRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("상담 기록을 찾을 수 없습니다 id=%d %w", id, ErrConsultationNotFound)
			}
			return fmt.Errorf("상담 기록 조회 실패: %w", err)
		}

		updated := s.toModel(req)
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt

		if err := s.consultationRepository.Save(ctx, tx, updated); err != nil {
			return fmt.Errorf("상담 기록 수정 실패: %w", err)
		}
		return nil
	})
}

func (s *ConsultationService) Get(ctx context.Context, id uint32) (*model.Consultation, error) {
	consultation, err := s.consultationRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("상담 기록을 찾을 수 없습니다 id=%d %w", id, ErrConsultationNotFound)
		}
		return nil, fmt.Errorf("상담 기록 조회 실패: %w", err)
	}
	return consultation, nil
}

// List fetches the full record set and filters/paginates in memory,
// matching the source contract: substring match on name and date over the
// whole set, then page slicing.
func (s *ConsultationService) List(ctx context.Context, name, date string, page, size int) (*ListConsultationsResponse, error) {
	filtered, err := s.FilterAll(ctx, name, date)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return &ListConsultationsResponse{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}, nil
}

// FilterAll returns the filtered record set without pagination. The Excel
// export uses the same filter as the list view.
func (s *ConsultationService) FilterAll(ctx context.Context, name, date string) ([]model.Consultation, error) {
	consultations, err := s.consultationRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("상담 기록 목록 조회 실패: %w", err)
	}

	filtered := make([]model.Consultation, 0, len(consultations))
	for _, item := range consultations {
		if name != "" && !strings.Contains(item.Name, name) {
			continue
		}
		if date != "" && !strings.Contains(item.Date, date) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (s *ConsultationService) Delete(ctx context.Context, id uint32) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.consultationRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("상담 기록 삭제 실패: %w", err)
		}
		return nil
	})
}

func (s *ConsultationService) DeleteBatch(ctx context.Context, ids []uint32) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.consultationRepository.DeleteByIDs(ctx, tx, ids); err != nil {
			return fmt.Errorf("상담 기록 일괄 삭제 실패: %w", err)
		}
		return nil
	})
}

// toModel normalizes the draft into a record: the date is cut down to
// yyyy-MM-dd, and a non-empty record-level copay is re-stamped onto every
// product line. The re-stamp mirrors the source form, where changing the
// record copay rewrote the copay of already-selected lines.
func (s *ConsultationService) toModel(req *SaveConsultationRequest) *model.Consultation {
	products := make([]model.ProductLine, 0, len(req.Products))
	for _, line := range req.Products {
		copay := line.Copay
		if req.Copay != "" {
			copay = req.Copay
		}
		products = append(products, model.ProductLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Copay:    copay,
		})
	}

	return &model.Consultation{
		Name:       req.Name,
		Gender:     req.Gender,
		Birth:      req.Birth,
		Phone:      req.Phone,
		RefType:    req.RefType,
		Copay:      req.Copay,
		CareGrade:  req.CareGrade,
		CareNumber: req.CareNumber,
		Address:    req.Address,
		Content:    req.Content,
		Date:       sharedValidator.NormalizeDate(req.Date),
		Products:   products,
	}
}
