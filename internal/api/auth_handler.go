package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/repository"
	"vfp/workout-tracker/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService  service.AuthService
	stateService service.StateService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, stateService service.StateService) *AuthHandler {
	return &AuthHandler{authService: authService, stateService: stateService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	// Bind JSON request body and perform validation based on `binding` tags
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrAuthUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates a user and returns a JWT token. On first login the
// local device state, if any, is migrated into the user's remote document.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrAuthUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	// One-time migration of any anonymous progress; best effort, never
	// blocks the login.
	p := service.Principal{UserID: user.ID.Hex()}
	if err := h.stateService.MigrateLocalToRemote(c.Request.Context(), p); err != nil {
		log.Printf("WARN: local-to-remote migration failed for %s: %v", p.Key(), err)
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// Me describes the caller: the account profile for an authenticated user,
// the device key for an anonymous one.
func (h *AuthHandler) Me(c *gin.Context) {
	p, err := getPrincipal(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve principal")
		return
	}

	if !p.Authenticated() {
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "key": p.Key()})
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAuthUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not load profile")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"key":           p.Key(),
		"user":          MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
