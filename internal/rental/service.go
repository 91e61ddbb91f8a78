package rental

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bokjion/rental-care-api/internal/model"
	"github.com/bokjion/rental-care-api/internal/shared/logger"
	sharedValidator "github.com/bokjion/rental-care-api/internal/shared/validator"
	"gorm.io/gorm"
)

// StatusAll is the list filter value meaning "no status filter".
const StatusAll = "전체"

// StatusRented feeds the 대여 count of the inventory summary.
const StatusRented = "대여"

// StatusStored is the initial status of a freshly registered unit; it
// changes only through history propagation afterwards.
const StatusStored = "보관"

type RentalService struct {
	db               *gorm.DB
	rentalRepository *RentalRepository
}

func NewRentalService(db *gorm.DB, rentalRepository *RentalRepository) *RentalService {
	return &RentalService{
		db:               db,
		rentalRepository: rentalRepository,
	}
}

// CreateProduct registers a unit after the advisory barcode pre-check.
// The check and the insert are two independent store calls: two racing
// submissions can both pass the check and insert duplicates. Known gap.
func (s *RentalService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	exists, err := s.rentalRepository.ExistsByBarcode(ctx, s.db, req.Barcode)
	if err != nil {
		return nil, fmt.Errorf("바코드 중복 확인 실패: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("이미 등록된 바코드입니다 barcode=%s %w", req.Barcode, ErrDuplicateBarcode)
	}

	product := &model.RentalProduct{
		Category:     req.Category,
		ProductName:  req.ProductName,
		ModelName:    req.ModelName,
		Barcode:      req.Barcode,
		Status:       StatusStored,
		RegisterDate: sharedValidator.NormalizeDate(req.RegisterDate),
	}

	if err := s.rentalRepository.CreateProduct(ctx, s.db, product); err != nil {
		return nil, fmt.Errorf("대여제품 등록 실패: %w", err)
	}

	return &CreateProductResponse{ID: product.ID}, nil
}

// ListProducts fetches all units and filters in memory: exact status
// match (전체 or empty means all) and substring search across product
// name, model name and barcode, the way the list view matched.
func (s *RentalService) ListProducts(ctx context.Context, status, keyword string) (*ListProductsResponse, error) {
	products, err := s.rentalRepository.FindAllProducts(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("대여제품 목록 조회 실패: %w", err)
	}

	keyword = strings.ToLower(keyword)
	filtered := make([]model.RentalProduct, 0, len(products))
	for _, p := range products {
		if status != "" && status != StatusAll && p.Status != status {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.ProductName), keyword) &&
			!strings.Contains(strings.ToLower(p.ModelName), keyword) &&
			!strings.Contains(strings.ToLower(p.Barcode), keyword) {
			continue
		}
		filtered = append(filtered, p)
	}

	return &ListProductsResponse{Items: filtered, Total: len(filtered)}, nil
}

// InventoryStats reduces the full unit set into per category/model total
// and rented counts (the 제품 현황 summary box).
func (s *RentalService) InventoryStats(ctx context.Context) (*InventoryStatsResponse, error) {
	products, err := s.rentalRepository.FindAllProducts(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("대여제품 목록 조회 실패: %w", err)
	}

	stats := map[string]map[string]ModelCount{}
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "기타"
		}
		modelName := p.ModelName
		if modelName == "" {
			modelName = "모델 없음"
		}

		if stats[category] == nil {
			stats[category] = map[string]ModelCount{}
		}
		count := stats[category][modelName]
		count.Total++
		if p.Status == StatusRented {
			count.Rented++
		}
		stats[category][modelName] = count
	}

	return &InventoryStatsResponse{Stats: stats}, nil
}

// GetDetail returns the product row together with its full history list.
// Callers re-fetch this after every history write; the full reload is the
// contract, there is no incremental in-memory patch.
func (s *RentalService) GetDetail(ctx context.Context, productID uint32) (*ProductDetailResponse, error) {
	product, err := s.rentalRepository.FindProductByID(ctx, s.db, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("대여제품을 찾을 수 없습니다 id=%d %w", productID, ErrProductNotFound)
		}
		return nil, fmt.Errorf("대여제품 조회 실패: %w", err)
	}

	history, err := s.rentalRepository.FindHistoryByProductID(ctx, s.db, productID)
	if err != nil {
		return nil, fmt.Errorf("대여 이력 조회 실패: %w", err)
	}

	return &ProductDetailResponse{Product: product, History: history}, nil
}

// DeleteProduct removes the unit only. History rows referencing it stay
// behind; cascade behavior was never defined in the source.
func (s *RentalService) DeleteProduct(ctx context.Context, productID uint32) error {
	if err := s.rentalRepository.DeleteProduct(ctx, s.db, productID); err != nil {
		return fmt.Errorf("대여제품 삭제 실패: %w", err)
	}
	return nil
}

// CreateHistory is the insert path of the history submission: create the
// history row scoped to the product, and only when that succeeded,
// propagate renter/status onto the product row. A failed insert aborts
// before the propagation runs, leaving the product untouched.
func (s *RentalService) CreateHistory(ctx context.Context, productID uint32, req *SubmitHistoryRequest) (*SubmitHistoryResponse, error) {
	if _, err := s.rentalRepository.FindProductByID(ctx, s.db, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("대여제품을 찾을 수 없습니다 id=%d %w", productID, ErrProductNotFound)
		}
		return nil, fmt.Errorf("대여제품 조회 실패: %w", err)
	}

	history := s.toHistoryModel(productID, req)
	if err := s.rentalRepository.CreateHistory(ctx, s.db, history); err != nil {
		return nil, fmt.Errorf("대여 이력 등록 실패: %w", err)
	}

	if err := s.rentalRepository.PropagateRenter(ctx, s.db, productID, req.Renter, req.Type); err != nil {
		return nil, fmt.Errorf("제품 상태 반영 실패: %w", err)
	}

	return &SubmitHistoryResponse{ID: history.ID}, nil
}

// UpdateHistory is the update path: rewrite the history row, then run the
// same propagation as the insert path. The propagation is not gated on
// the history update having succeeded; a failed update is logged and the
// product write still runs.
func (s *RentalService) UpdateHistory(ctx context.Context, productID, historyID uint32, req *SubmitHistoryRequest) error {
	existing, err := s.rentalRepository.FindHistoryByID(ctx, s.db, historyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("대여 이력을 찾을 수 없습니다 id=%d %w", historyID, ErrHistoryNotFound)
		}
		return fmt.Errorf("대여 이력 조회 실패: %w", err)
	}

	updated := s.toHistoryModel(productID, req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.rentalRepository.UpdateHistory(ctx, s.db, updated); err != nil {
		logger.FromContext(ctx).Warn("대여 이력 수정 실패, 제품 상태 반영은 계속 진행",
			"history_id", historyID, "error", err)
	}

	if err := s.rentalRepository.PropagateRenter(ctx, s.db, productID, req.Renter, req.Type); err != nil {
		return fmt.Errorf("제품 상태 반영 실패: %w", err)
	}

	return nil
}

// DeleteHistory removes the entry without any compensating write: the
// renter/status previously propagated to the product stay as they are.
func (s *RentalService) DeleteHistory(ctx context.Context, historyID uint32) error {
	if err := s.rentalRepository.DeleteHistory(ctx, s.db, historyID); err != nil {
		return fmt.Errorf("대여 이력 삭제 실패: %w", err)
	}
	return nil
}

func (s *RentalService) toHistoryModel(productID uint32, req *SubmitHistoryRequest) *model.RentalHistory {
	return &model.RentalHistory{
		ProductID:       productID,
		Renter:          req.Renter,
		ApprovalNumber:  req.ApprovalNumber,
		Type:            req.Type,
		ContractPeriod:  req.ContractPeriod,
		RentAddressType: req.ResolvedRentAddressType(),
		RentAddress:     req.RentAddress,
		Org:             req.Org,
		Memo:            req.Memo,
	}
}
