package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/bokjion/rental-care-api/internal/consultation"
	sharedValidator "github.com/bokjion/rental-care-api/internal/shared/validator"
	"gorm.io/gorm"
)

type StatsService struct {
	db                     *gorm.DB
	consultationRepository *consultation.ConsultationRepository
}

func NewStatsService(db *gorm.DB, consultationRepository *consultation.ConsultationRepository) *StatsService {
	return &StatsService{
		db:                     db,
		consultationRepository: consultationRepository,
	}
}

// Query fetches the full consultation set and runs the aggregation engine
// over the inclusive [start, end] window.
func (s *StatsService) Query(ctx context.Context, start, end time.Time, keyword string) ([]ProductRow, error) {
	consultations, err := s.consultationRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("상담 기록 목록 조회 실패: %w", err)
	}

	return Aggregate(consultations, start, end, keyword), nil
}

// ParseRange parses the start/end query parameters. Both are required;
// time-of-day is ignored by comparing plain calendar dates.
func ParseRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("시작일과 종료일을 모두 선택해주세요")
	}

	start, err := time.Parse(sharedValidator.DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("시작일 형식이 올바르지 않습니다: %s", startStr)
	}
	end, err := time.Parse(sharedValidator.DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("종료일 형식이 올바르지 않습니다: %s", endStr)
	}

	return start, end, nil
}
