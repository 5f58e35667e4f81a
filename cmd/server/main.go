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

	"hudspal/tracker/internal/api"
	"hudspal/tracker/internal/catalog"
	"hudspal/tracker/internal/config"
	"hudspal/tracker/internal/repository/memory"
	"hudspal/tracker/internal/service"
)

const affirmationInterval = 5 * time.Second

func main() {
	log.Println("Starting myHUDSpal tracker server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Reference Catalogs ---
	// Both datasets load asynchronously; the server starts serving while the
	// fetches are in flight. A failed load leaves the catalog empty, logs a
	// diagnostic, and stays retryable through the reload endpoint.
	httpClient := &http.Client{Timeout: cfg.Catalogs.Timeout}
	catalogs := catalog.NewManager(httpClient, cfg.Catalogs.NutritionURL, cfg.Catalogs.ExerciseURL)
	go func() {
		if err := catalogs.LoadFoods(context.Background()); err != nil {
			log.Printf("ERROR: Loading nutrition catalog failed: %v", err)
		} else {
			log.Printf("Nutrition catalog loaded: %d foods.", catalogs.FoodCount())
		}
	}()
	go func() {
		if err := catalogs.LoadExercises(context.Background()); err != nil {
			log.Printf("ERROR: Loading exercise catalog failed: %v", err)
		} else {
			log.Printf("Exercise catalog loaded: %d exercises.", catalogs.ExerciseCount())
		}
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing session stores...")
	entryStore := memory.NewStore()
	userStore := memory.NewUserStore()

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userStore, cfg.Goals.Defaults(), cfg.JWT.Secret, cfg.JWT.Expiration)
	trackerService := service.NewTrackerService(entryStore, catalogs)
	rotator := service.NewAffirmationRotator(affirmationInterval)
	defer rotator.Stop()

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, trackerService, catalogs, rotator)

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
