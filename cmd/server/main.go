package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyplanner/internal/config"
	"studyplanner/internal/handlers"
	"studyplanner/internal/repository"
	"studyplanner/internal/security"
	"studyplanner/internal/service"
)

const rateLimiterCleanupInterval = time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	// Initialize repositories
	studyRepo := repository.NewStudyRepository()
	if cfg.SeedMockData {
		studyRepo.Seed(repository.MockSubjects(), repository.MockSessions())
		log.Println("Mock study data loaded")
	}
	userRepo := repository.NewUserRepository()
	userRepo.Set(repository.MockUser)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	studyService := service.NewStudyService(studyRepo, service.NewScheduleGenerator(nil), cfg.GenerateDelay)

	rateLimiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// Background housekeeping
	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval("rate-limiter-cleanup", rateLimiterCleanupInterval, func() {
		if removed := rateLimiter.Cleanup(); removed > 0 {
			log.Printf("Rate limiter cleanup removed %d idle clients", removed)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	mux := handlers.NewRouter(authService, studyService, rateLimiter, cfg.DashboardDay)
	handler := handlers.Logging(mux)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
