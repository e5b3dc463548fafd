package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vfp/workout-tracker/internal/catalog"
)

// ProgramHandler serves the static exercise catalog.
type ProgramHandler struct{}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler() *ProgramHandler {
	return &ProgramHandler{}
}

// List returns the full weekly schedule.
func (h *ProgramHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Programs())
}

// Today returns the program scheduled for the current weekday, or a
// rest-day marker when nothing is scheduled.
func (h *ProgramHandler) Today(c *gin.Context) {
	day := time.Now().Weekday().String()
	program, ok := catalog.ProgramForDay(day)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"day": day, "restDay": true})
		return
	}
	c.JSON(http.StatusOK, program)
}
