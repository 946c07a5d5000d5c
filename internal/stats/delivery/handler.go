package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habitus-backend/internal/stats/usecase"
	"habitus-backend/pkg/date"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetDailyAggregates returns per-day totals for a date range
// GET /api/stats/daily?from=2024-01-01&to=2024-01-31
func (h *StatsHandler) GetDailyAggregates(c *gin.Context) {
	userID := c.GetString("userID")

	from, err := date.Parse(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
		return
	}
	to, err := date.Parse(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
		return
	}

	aggregates, err := h.statsUsecase.GetDailyAggregates(userID, from, to)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  aggregates,
		"count": len(aggregates),
	})
}

// GetStreaks returns the user's current and best MIT streaks
// GET /api/stats/streaks
func (h *StatsHandler) GetStreaks(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.statsUsecase.GetStreaks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
