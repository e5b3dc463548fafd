package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"vfp/workout-tracker/internal/service"
)

// Constants for context and header keys
const (
	ContextPrincipalKey = "principal"
	DeviceIDHeader      = "X-Device-Id"
)

// jwtClaims defines the structure we expect in the JWT payload.
// Mirroring the structure used in authService.generateJWT
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// PrincipalMiddleware resolves who the request is for. A Bearer token maps
// to the authenticated user; no Authorization header maps to an anonymous
// device principal keyed by X-Device-Id (issued here when the client doesn't
// send one). A token that is present but invalid is rejected, never silently
// downgraded to anonymous.
func PrincipalMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			deviceID := c.GetHeader(DeviceIDHeader)
			if deviceID == "" {
				deviceID = uuid.NewString()
			}
			c.Header(DeviceIDHeader, deviceID)
			c.Set(ContextPrincipalKey, service.Principal{DeviceID: deviceID})
			c.Next()
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		// Parse and validate the token
		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			// Validate the alg is what we expect:
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			// Return the secret key
			return []byte(jwtSecret), nil
		})

		// Handle errors during parsing/validation
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
			}
			return
		}

		if !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		// --- Token is valid ---
		c.Set(ContextPrincipalKey, service.Principal{UserID: claims.UserID})
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get the request principal from context (used by handlers)
func getPrincipal(c *gin.Context) (service.Principal, error) {
	raw, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return service.Principal{}, errors.New("principal not found in context")
	}
	p, ok := raw.(service.Principal)
	if !ok {
		return service.Principal{}, errors.New("invalid principal type in context")
	}
	return p, nil
}
