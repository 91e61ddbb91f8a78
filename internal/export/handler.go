package export

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/bokjion/rental-care-api/internal/consultation"
	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
	"github.com/bokjion/rental-care-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	consultationService *consultation.ConsultationService
}

func NewExportHandler(consultationService *consultation.ConsultationService) *ExportHandler {
	return &ExportHandler{
		consultationService: consultationService,
	}
}

// Consultations serves GET /api/v1/consultations/export?name=&date=
// The same substring filter as the list view applies; the whole filtered
// set is exported, not just the current page.
func (h *ExportHandler) Consultations(c *gin.Context) {
	filtered, err := h.consultationService.FilterAll(
		c.Request.Context(),
		c.Query("name"),
		c.Query("date"),
	)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	buf, err := ConsultationWorkbook(filtered)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	// 파일명이 한글이므로 RFC 5987 형식으로 인코딩한다
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(ConsultationFileName)))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
