// Package main is the entry point for the Porthole container port dashboard.
// It initializes the Docker client, database, and HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nfcunha/porthole/core/repository"
	"nfcunha/porthole/core/service"
	"nfcunha/porthole/database"
	"nfcunha/porthole/handler"
	"nfcunha/porthole/utils/config"
	"nfcunha/porthole/utils/docker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Porthole...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Initialize(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	dockerClient, err := docker.NewClient(cfg.Docker.Host, cfg.Docker.APIVersion)
	if err != nil {
		log.Fatalf("Failed to initialize Docker client: %v", err)
	}
	defer dockerClient.Close()

	// The runtime may come up after us; an unreachable API only shows up as a
	// fetch error on the dashboard.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := dockerClient.Ping(ctx); err != nil {
		log.Printf("Warning: container runtime API not reachable yet: %v", err)
	}
	cancel()

	preferenceRepo := repository.NewPreferenceRepository(database.GetDB())
	eventLogRepo := repository.NewEventLogRepository(database.GetDB())

	directoryService := service.NewDirectoryService(dockerClient)
	preferenceService := service.NewPreferenceService(preferenceRepo)
	dashboard := service.NewDashboard(directoryService, preferenceService, eventLogRepo)

	go func() {
		if err := dashboard.Load(context.Background()); err != nil {
			log.Printf("Initial container fetch failed: %v", err)
		}
	}()
	go startEventPruner(eventLogRepo, cfg.Events.RetentionDays)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if cfg.Server.Mode != "release" {
		engine.Use(gin.Logger())
	}

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.LoadTemplates(engine)
	handler.RegisterRoutes(engine, dashboard, eventLogRepo, dockerClient)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Porthole listening on %s", addr)
		log.Println("API available at: /portal")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

// startEventPruner removes event logs older than the retention window once a day.
func startEventPruner(repo *repository.EventLogRepository, retentionDays int) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		deleted, err := repo.DeleteOlderThan(retentionDays)
		if err != nil {
			log.Printf("Failed to prune event logs: %v", err)
		} else if deleted > 0 {
			log.Printf("Pruned %d event logs older than %d days", deleted, retentionDays)
		}
		<-ticker.C
	}
}
