package consultation

import (
	"net/http"
	"strconv"

	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
	"github.com/bokjion/rental-care-api/internal/shared/handler"
	"github.com/bokjion/rental-care-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	consultationService *ConsultationService
}

func NewConsultationHandler(consultationService *ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
	}
}

func (h *ConsultationHandler) Create(c *gin.Context) {
	var req SaveConsultationRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.consultationService.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	logger.FromContext(c.Request.Context()).Info("상담 기록 등록",
		"id", response.ID,
		"name", logger.MaskName(req.Name),
		"phone", logger.MaskPhone(req.Phone),
	)

	c.JSON(http.StatusCreated, response)
}

func (h *ConsultationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SaveConsultationRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.consultationService.Update(c.Request.Context(), id, &req); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ConsultationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	consultation, err := h.consultationService.Get(c.Request.Context(), id)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))

	response, err := h.consultationService.List(
		c.Request.Context(),
		c.Query("name"),
		c.Query("date"),
		page,
		size,
	)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ConsultationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.consultationService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ConsultationHandler) DeleteBatch(c *gin.Context) {
	var req DeleteBatchRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.consultationService.DeleteBatch(c.Request.Context(), req.IDs); err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. A malformed value is a bad
// request, not a lookup miss.
func parseID(c *gin.Context) (uint32, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}
