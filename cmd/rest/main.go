package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"octobot-be/internal/bootstrap"
	"octobot-be/internal/config"
	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/server"
	"octobot-be/internal/tracer"
	"octobot-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Dashboard Event Service...")
		if err := container.DashboardEventService.Consume(context.Background()); err != nil {
			log.Printf("Background Dashboard Event Error: %v", err)
		}
	}()

	// 5. Initialize Server
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	srv := server.New(cfg, container, sysLogger)

	// 6. Run Server with graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
