package stats

import (
	"net/http"

	sharedError "github.com/bokjion/rental-care-api/internal/shared/error"
	"github.com/bokjion/rental-care-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *StatsService
}

func NewStatsHandler(statsService *StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// ConsultationStats serves GET /api/v1/stats/consultations?start=&end=&q=
func (h *StatsHandler) ConsultationStats(c *gin.Context) {
	start, end, err := ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		resp := sharedError.ValidationFailed
		resp.Message = err.Error()
		c.Error(err)
		c.JSON(resp.Status, resp)
		return
	}

	rows, err := h.statsService.Query(c.Request.Context(), start, end, c.Query("q"))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
