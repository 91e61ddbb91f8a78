package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the static catalog option tables the forms are built from.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ConsultProducts returns the consultation product options grouped by category.
func (h *Handler) ConsultProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options":    ConsultProductOptions,
		"copayRates": CopayRates,
	})
}

// RentalProducts returns the rental product model options grouped by category.
func (h *Handler) RentalProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": RentalProductOptions,
	})
}
