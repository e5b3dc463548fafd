package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vfp/workout-tracker/internal/api"
	"vfp/workout-tracker/internal/catalog"
	"vfp/workout-tracker/internal/config"
	"vfp/workout-tracker/internal/repository"
	mongorepo "vfp/workout-tracker/internal/repository/mongo"
	"vfp/workout-tracker/internal/repository/sqlite"
	"vfp/workout-tracker/internal/service"
)

func main() {
	log.Println("Starting Workout Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Program Catalog ---
	// Malformed reference data would corrupt every session built from it;
	// refuse to start.
	if err := catalog.Validate(catalog.Programs()); err != nil {
		log.Fatalf("FATAL: Invalid program catalog: %v", err)
	}
	log.Println("Program catalog validated.")

	// --- Local Store ---
	localStore, err := sqlite.Open(cfg.Local.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open local store: %v", err)
	}
	defer func() {
		if err := localStore.Close(); err != nil {
			log.Printf("ERROR: Failed to close local store: %v", err)
		}
	}()
	log.Printf("Local store ready at %s", cfg.Local.Path)

	// --- Database Connection (optional) ---
	// The remote document store is one rung of the fallback ladder, not a
	// hard dependency: when it is unreachable the server runs local-only.
	var remoteStates repository.StateRepository
	var userRepo repository.UserRepository
	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Printf("WARN: Could not connect to MongoDB (%v); running local-only", err)
	} else {
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		// --- Ensure Indexes ---
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureUserIndexes(ctx, appDB.Collection("users"))
			mongorepo.EnsureStateIndexes(ctx, appDB.Collection("user_state"))
			log.Println("Index creation process completed.")
		}()

		remoteStates = mongorepo.NewMongoStateRepository(appDB)
		userRepo = mongorepo.NewMongoUserRepository(appDB)
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	stateService := service.NewStateService(remoteStates, localStore)
	workoutService := service.NewWorkoutService(stateService)

	var authService service.AuthService
	if userRepo != nil {
		authService = service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	} else {
		log.Println("WARN: No database; auth endpoints will reject registration and login.")
		authService = service.NewUnavailableAuthService(cfg.JWT.Secret)
	}

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, stateService, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
