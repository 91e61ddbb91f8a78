package rental

import (
	"net/http"
	"strconv"

	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
	"github.com/bokjion/rental-care-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	rentalService *RentalService
}

func NewRentalHandler(rentalService *RentalService) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

func (h *RentalHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.rentalService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *RentalHandler) ListProducts(c *gin.Context) {
	response, err := h.rentalService.ListProducts(
		c.Request.Context(),
		c.Query("status"),
		c.Query("q"),
	)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *RentalHandler) InventoryStats(c *gin.Context) {
	response, err := h.rentalService.InventoryStats(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *RentalHandler) GetDetail(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	response, err := h.rentalService.GetDetail(c.Request.Context(), productID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *RentalHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.rentalService.DeleteProduct(c.Request.Context(), productID); err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RentalHandler) CreateHistory(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SubmitHistoryRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.rentalService.CreateHistory(c.Request.Context(), productID, &req)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *RentalHandler) UpdateHistory(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	historyID, ok := parseIDParam(c, "historyId")
	if !ok {
		return
	}

	var req SubmitHistoryRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.rentalService.UpdateHistory(c.Request.Context(), productID, historyID, &req); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RentalHandler) DeleteHistory(c *gin.Context) {
	historyID, ok := parseIDParam(c, "historyId")
	if !ok {
		return
	}

	if err := h.rentalService.DeleteHistory(c.Request.Context(), historyID); err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (uint32, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}
