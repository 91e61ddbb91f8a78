package stats_test

import (
	"net/http"
	"testing"

	"github.com/bokjion/rental-care-api/internal/consultation"
	"github.com/bokjion/rental-care-api/internal/model"
	"github.com/bokjion/rental-care-api/internal/shared/testutil"
	"github.com/bokjion/rental-care-api/internal/stats"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	repo := consultation.NewConsultationRepository()
	service := stats.NewStatsService(db, repo)
	handler := stats.NewStatsHandler(service)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/stats/consultations", handler.ConsultationStats)

	return router, db
}

func TestConsultationStats_EndToEnd(t *testing.T) {
	// Given: 범위 안 1건, 범위 밖 1건
	router, db := setupTestEnvironment(t)

	require.NoError(t, db.Create(&model.Consultation{
		Name: "Kim",
		Date: "2025-06-10",
		Products: []model.ProductLine{
			{Name: "BLS-700", Quantity: "2", Copay: "15%"},
		},
	}).Error)
	require.NoError(t, db.Create(&model.Consultation{
		Name: "Lee",
		Date: "2025-08-01",
		Products: []model.ProductLine{
			{Name: "BLS-700", Quantity: "1", Copay: "15%"},
		},
	}).Error)

	// When: 6월 범위로 조회
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/stats/consultations?start=2025-06-01&end=2025-06-30",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Rows []stats.ProductRow `json:"rows"`
	}
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Rows, 1)
	assert.Equal(t, "미끄럼방지매트", response.Rows[0].Category)
	assert.Equal(t, 2, response.Rows[0].Total)
	assert.Equal(t, []string{"Kim"}, response.Rows[0].ClientNames)
}

func TestConsultationStats_MissingRangeIsValidationError(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/stats/consultations?start=2025-06-01",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
