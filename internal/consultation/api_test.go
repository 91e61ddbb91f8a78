package consultation_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/bokjion/rental-care-api/internal/consultation"
	"github.com/bokjion/rental-care-api/internal/model"
	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
	"github.com/bokjion/rental-care-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for consultation handler tests
func setupTestEnvironment(t *testing.T) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	repo := consultation.NewConsultationRepository()
	service := consultation.NewConsultationService(db, repo)
	handler := consultation.NewConsultationHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/consultations", handler.Create)
	router.GET("/api/v1/consultations", handler.List)
	router.POST("/api/v1/consultations/delete-batch", handler.DeleteBatch)
	router.GET("/api/v1/consultations/:id", handler.Get)
	router.PUT("/api/v1/consultations/:id", handler.Update)
	router.DELETE("/api/v1/consultations/:id", handler.Delete)

	return router
}

func validRequest() consultation.SaveConsultationRequest {
	return consultation.SaveConsultationRequest{
		Name:  "김영희",
		Copay: "15%",
		Date:  "2025-06-10",
		Products: []consultation.ProductLineRequest{
			{Name: "BLS-700", Quantity: "2", Copay: "15%"},
			{Name: "WS8830", Quantity: "", Copay: "15%"},
		},
	}
}

func createConsultation(t *testing.T, router *gin.Engine, body interface{}) uint32 {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/consultations",
		Body:   body,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response consultation.CreateConsultationResponse
	testutil.ParseResponse(t, recorder, &response)
	require.NotZero(t, response.ID)
	return response.ID
}

func TestCreateConsultation_Success(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Execute create request
	id := createConsultation(t, router, validRequest())

	// Then: Record is assigned an identifier
	assert.NotZero(t, id)
}

func TestCreateConsultation_RoundTrip(t *testing.T) {
	// Given: Created record with an ordered product sequence
	router := setupTestEnvironment(t)
	id := createConsultation(t, router, validRequest())

	// When: Re-read by identifier
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/consultations/%d", id),
	})

	// Then: Every field reproduced, product order preserved
	require.Equal(t, http.StatusOK, recorder.Code)

	var stored model.Consultation
	testutil.ParseResponse(t, recorder, &stored)
	assert.Equal(t, "김영희", stored.Name)
	assert.Equal(t, "15%", stored.Copay)
	assert.Equal(t, "2025-06-10", stored.Date)
	require.Len(t, stored.Products, 2)
	assert.Equal(t, "BLS-700", stored.Products[0].Name)
	assert.Equal(t, "2", stored.Products[0].Quantity)
	assert.Equal(t, "WS8830", stored.Products[1].Name)
	assert.Equal(t, "", stored.Products[1].Quantity)
}

func TestCreateConsultation_RestampsLineCopay(t *testing.T) {
	// Given: 레코드 본인부담금과 다른 copay가 찍힌 라인
	router := setupTestEnvironment(t)
	req := validRequest()
	req.Copay = "9%"
	req.Products = []consultation.ProductLineRequest{
		{Name: "BLS-700", Quantity: "2", Copay: "15%"},
	}

	// When
	id := createConsultation(t, router, req)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/consultations/%d", id),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then: 모든 라인이 레코드 값으로 다시 찍힌다
	var stored model.Consultation
	testutil.ParseResponse(t, recorder, &stored)
	require.Len(t, stored.Products, 1)
	assert.Equal(t, "9%", stored.Products[0].Copay)
}

func TestCreateConsultation_NormalizesTimestampDate(t *testing.T) {
	router := setupTestEnvironment(t)
	req := validRequest()
	req.Date = "2025-06-10T09:30:00Z"

	id := createConsultation(t, router, req)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/consultations/%d", id),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var stored model.Consultation
	testutil.ParseResponse(t, recorder, &stored)
	assert.Equal(t, "2025-06-10", stored.Date)
}

func TestCreateConsultation_ValidationErrors(t *testing.T) {
	router := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]interface{}
		description string
	}{
		{
			name:        "Missing name",
			requestBody: map[string]interface{}{"date": "2025-06-10"},
			description: "Should fail when name is missing",
		},
		{
			name:        "Missing date",
			requestBody: map[string]interface{}{"name": "김영희"},
			description: "Should fail when date is missing",
		},
		{
			name:        "Broken date",
			requestBody: map[string]interface{}{"name": "김영희", "date": "10-06-2025"},
			description: "Should fail when date is not yyyy-MM-dd",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/consultations",
				Body:   tc.requestBody,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
		})
	}
}

func TestUpdateConsultation_FullReplace(t *testing.T) {
	// Given: 기존 레코드
	router := setupTestEnvironment(t)
	id := createConsultation(t, router, validRequest())

	// When: 전체 레코드 수정
	updated := validRequest()
	updated.Name = "박철수"
	updated.Copay = "0%"
	updated.Products = []consultation.ProductLineRequest{
		{Name: "KNA-2", Quantity: "1", Copay: "15%"},
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/v1/consultations/%d", id),
		Body:   updated,
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	// Then: 교체된 내용과 copay 재스탬프 확인
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/v1/consultations/%d", id),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var stored model.Consultation
	testutil.ParseResponse(t, recorder, &stored)
	assert.Equal(t, "박철수", stored.Name)
	require.Len(t, stored.Products, 1)
	assert.Equal(t, "0%", stored.Products[0].Copay)
}

func TestUpdateConsultation_NotFound(t *testing.T) {
	router := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/consultations/9999",
		Body:   validRequest(),
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CONSULT-001", errorResponse.Code)
}

func TestListConsultations_FilterAndPagination(t *testing.T) {
	// Given: 이름/날짜가 다른 레코드 3건
	router := setupTestEnvironment(t)

	first := validRequest()
	first.Name = "김영희"
	first.Date = "2025-06-10"
	createConsultation(t, router, first)

	second := validRequest()
	second.Name = "김영수"
	second.Date = "2025-06-20"
	createConsultation(t, router, second)

	third := validRequest()
	third.Name = "박철수"
	third.Date = "2025-07-01"
	createConsultation(t, router, third)

	// When: 이름 부분 일치 검색
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/consultations?name=" + url.QueryEscape("김영"),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response consultation.ListConsultationsResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.Total)

	// When: 날짜 접두 검색 (예: 2025-06)
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/consultations?date=2025-06",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.Total)

	// When: 페이지 크기 1로 슬라이싱
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/consultations?page=2&size=1",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 3, response.TotalPages)
	assert.Len(t, response.Items, 1)
}

func TestDeleteConsultation_Batch(t *testing.T) {
	// Given: 레코드 3건
	router := setupTestEnvironment(t)
	id1 := createConsultation(t, router, validRequest())
	id2 := createConsultation(t, router, validRequest())
	id3 := createConsultation(t, router, validRequest())

	// When: 두 건 일괄 삭제
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/consultations/delete-batch",
		Body:   consultation.DeleteBatchRequest{IDs: []uint32{id1, id2}},
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	// Then: 남은 건 확인
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/consultations",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response consultation.ListConsultationsResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 1, response.Total)
	assert.Equal(t, id3, response.Items[0].ID)
}
