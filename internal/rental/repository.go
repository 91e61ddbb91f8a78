package rental

import (
	"context"

	"github.com/bokjion/rental-care-api/internal/model"
	"gorm.io/gorm"
)

type RentalRepository struct{}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

func (r *RentalRepository) ExistsByBarcode(ctx context.Context, db *gorm.DB, barcode string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.RentalProduct{}).
		Where("barcode = ?", barcode).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *RentalRepository) CreateProduct(ctx context.Context, db *gorm.DB, product *model.RentalProduct) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *RentalRepository) FindProductByID(ctx context.Context, db *gorm.DB, id uint32) (*model.RentalProduct, error) {
	var product model.RentalProduct
	err := db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *RentalRepository) FindAllProducts(ctx context.Context, db *gorm.DB) ([]model.RentalProduct, error) {
	var products []model.RentalProduct
	err := db.WithContext(ctx).
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RentalRepository) DeleteProduct(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.RentalProduct{}, id).Error
}

// PropagateRenter writes the denormalized current_renter/status pair onto
// the product row. This is its own store call: there is deliberately no
// transaction spanning it and the history write it follows.
func (r *RentalRepository) PropagateRenter(ctx context.Context, db *gorm.DB, productID uint32, renter, status string) error {
	return db.WithContext(ctx).
		Model(&model.RentalProduct{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"current_renter": renter,
			"status":         status,
		}).Error
}

func (r *RentalRepository) CreateHistory(ctx context.Context, db *gorm.DB, history *model.RentalHistory) error {
	return db.WithContext(ctx).Create(history).Error
}

func (r *RentalRepository) UpdateHistory(ctx context.Context, db *gorm.DB, history *model.RentalHistory) error {
	return db.WithContext(ctx).Save(history).Error
}

func (r *RentalRepository) FindHistoryByID(ctx context.Context, db *gorm.DB, id uint32) (*model.RentalHistory, error) {
	var history model.RentalHistory
	err := db.WithContext(ctx).Where("id = ?", id).First(&history).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *RentalRepository) FindHistoryByProductID(ctx context.Context, db *gorm.DB, productID uint32) ([]model.RentalHistory, error) {
	var history []model.RentalHistory
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *RentalRepository) DeleteHistory(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.RentalHistory{}, id).Error
}
