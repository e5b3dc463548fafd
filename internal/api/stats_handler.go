package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vfp/workout-tracker/internal/service"
)

// StatsHandler serves gamification standing and history aggregates.
type StatsHandler struct {
	workoutService service.WorkoutService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(workoutService service.WorkoutService) *StatsHandler {
	return &StatsHandler{workoutService: workoutService}
}

// Stats returns the principal's level standing and lifetime metrics.
func (h *StatsHandler) Stats(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}
	c.JSON(http.StatusOK, h.workoutService.Stats(c.Request.Context(), p))
}

// History returns the principal's full workout history.
func (h *StatsHandler) History(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}
	c.JSON(http.StatusOK, h.workoutService.History(c.Request.Context(), p))
}
