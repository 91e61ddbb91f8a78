package database

import (
	"fmt"
	"log/slog"

	"github.com/bokjion/rental-care-api/internal/config"
	"github.com/bokjion/rental-care-api/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	// Safety check: prevent accidental schema changes in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다")
	}

	slog.Info("데이터베이스 마이그레이션 시작",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("마이그레이션 완료")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// rental_history가 rental_products를 참조하므로 제품 테이블 먼저
	models := []interface{}{
		&model.Consultation{},
		&model.RentalProduct{},
		&model.RentalHistory{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
