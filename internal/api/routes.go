package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vfp/workout-tracker/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	stateService service.StateService,
	workoutService service.WorkoutService,
) {

	authHandler := NewAuthHandler(authService, stateService)
	programHandler := NewProgramHandler()
	sessionHandler := NewSessionHandler(workoutService)
	statsHandler := NewStatsHandler(workoutService)

	principalMiddleware := PrincipalMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	// Everything below resolves a principal: an authenticated user when a
	// Bearer token is sent, an anonymous device otherwise. Anonymous usage
	// is first-class; its state lives in the local device store.
	tracked := apiV1.Group("")
	tracked.Use(principalMiddleware)
	{
		tracked.GET("/me", authHandler.Me)

		// --- Program Catalog ---
		programGroup := tracked.Group("/programs")
		{
			programGroup.GET("", programHandler.List)
			programGroup.GET("/today", programHandler.Today)
		}

		// --- Active Session Lifecycle ---
		sessionGroup := tracked.Group("/session")
		{
			sessionGroup.POST("/start", sessionHandler.Start)
			sessionGroup.GET("", sessionHandler.Current)
			sessionGroup.PATCH("/sets", sessionHandler.SetField)
			sessionGroup.POST("/sets/toggle", sessionHandler.Toggle)
			sessionGroup.GET("/progress", sessionHandler.Progress)
			sessionGroup.POST("/finish", sessionHandler.Finish)
			sessionGroup.DELETE("", sessionHandler.Abandon)
		}

		// --- History & Gamification ---
		tracked.GET("/stats", statsHandler.Stats)
		tracked.GET("/history", statsHandler.History)
	}
}
