package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vfp/workout-tracker/internal/service"
	"vfp/workout-tracker/internal/session"
)

// SessionHandler drives the active-workout lifecycle over HTTP.
type SessionHandler struct {
	workoutService service.WorkoutService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(workoutService service.WorkoutService) *SessionHandler {
	return &SessionHandler{workoutService: workoutService}
}

// --- Request Structs ---

type StartSessionRequest struct {
	Day string `json:"day" binding:"required"`
}

type SetFieldRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	SetIndex   *int   `json:"setIndex" binding:"required"`
	Field      string `json:"field" binding:"required"`
	Value      string `json:"value"`
}

type ToggleSetRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	SetIndex   *int   `json:"setIndex" binding:"required"`
}

// --- Handler Methods ---

// Start begins a session for the given day's program, discarding any session
// already in progress for this principal.
func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	snapshot, err := h.workoutService.StartSession(c.Request.Context(), p, req.Day)
	if err != nil {
		if errors.Is(err, service.ErrRestDay) {
			abortWithError(c, http.StatusNotFound, fmt.Sprintf("No program scheduled for %q", req.Day))
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Could not start session")
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

// Current returns the active session's full state.
func (h *SessionHandler) Current(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	snapshot, err := h.workoutService.CurrentSession(p)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetField edits one field of one set entry.
func (h *SessionHandler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	progress, err := h.workoutService.SetField(p, req.ExerciseID, *req.SetIndex, req.Field, req.Value)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Toggle flips the completion flag of one set entry.
func (h *SessionHandler) Toggle(c *gin.Context) {
	var req ToggleSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	progress, err := h.workoutService.ToggleSet(p, req.ExerciseID, *req.SetIndex)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Progress returns the live completion state.
func (h *SessionHandler) Progress(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	progress, err := h.workoutService.Progress(p)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Finish finalizes the session and returns the summary plus the scoring
// result.
func (h *SessionHandler) Finish(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	result, err := h.workoutService.FinishSession(c.Request.Context(), p)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Abandon discards the active session without persisting anything.
func (h *SessionHandler) Abandon(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	h.workoutService.AbandonSession(p)
	c.Status(http.StatusNoContent)
}

// sessionError maps service/session errors onto HTTP statuses. Bad exercise
// ids and indexes are caller-contract violations, reported as 400s.
func (h *SessionHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrUnknownExercise),
		errors.Is(err, session.ErrSetIndexRange),
		errors.Is(err, session.ErrFieldNotAllowed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
