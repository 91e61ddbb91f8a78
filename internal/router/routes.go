package router

import (
	"github.com/bokjion/rental-care-api/internal/catalog"
	"github.com/bokjion/rental-care-api/internal/config"
	"github.com/bokjion/rental-care-api/internal/consultation"
	"github.com/bokjion/rental-care-api/internal/export"
	"github.com/bokjion/rental-care-api/internal/meta"
	"github.com/bokjion/rental-care-api/internal/rental"
	"github.com/bokjion/rental-care-api/internal/shared/database"
	"github.com/bokjion/rental-care-api/internal/stats"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	consultationRepository := consultation.NewConsultationRepository()
	rentalRepository := rental.NewRentalRepository()

	// service
	consultationService := consultation.NewConsultationService(db.DB, consultationRepository)
	statsService := stats.NewStatsService(db.DB, consultationRepository)
	rentalService := rental.NewRentalService(db.DB, rentalRepository)

	// handler
	consultationHandler := consultation.NewConsultationHandler(consultationService)
	statsHandler := stats.NewStatsHandler(statsService)
	rentalHandler := rental.NewRentalHandler(rentalService)
	exportHandler := export.NewExportHandler(consultationService)
	catalogHandler := catalog.NewHandler()

	// API v1 routes
	consultV1 := router.Group("/api/v1/consultations")
	{
		consultV1.POST("", consultationHandler.Create)
		consultV1.GET("", consultationHandler.List)
		consultV1.GET("/export", exportHandler.Consultations)
		consultV1.POST("/delete-batch", consultationHandler.DeleteBatch)
		consultV1.GET("/:id", consultationHandler.Get)
		consultV1.PUT("/:id", consultationHandler.Update)
		consultV1.DELETE("/:id", consultationHandler.Delete)
	}

	rentalV1 := router.Group("/api/v1/rental-products")
	{
		rentalV1.POST("", rentalHandler.CreateProduct)
		rentalV1.GET("", rentalHandler.ListProducts)
		rentalV1.GET("/stats", rentalHandler.InventoryStats)
		rentalV1.GET("/:id", rentalHandler.GetDetail)
		rentalV1.DELETE("/:id", rentalHandler.DeleteProduct)
		rentalV1.POST("/:id/history", rentalHandler.CreateHistory)
		rentalV1.PUT("/:id/history/:historyId", rentalHandler.UpdateHistory)
		rentalV1.DELETE("/:id/history/:historyId", rentalHandler.DeleteHistory)
	}

	statsV1 := router.Group("/api/v1/stats")
	{
		statsV1.GET("/consultations", statsHandler.ConsultationStats)
	}

	catalogV1 := router.Group("/api/v1/catalog")
	{
		catalogV1.GET("/consult-products", catalogHandler.ConsultProducts)
		catalogV1.GET("/rental-products", catalogHandler.RentalProducts)
	}
}
