package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecotrack/core/internal/adapters/repository"
	"github.com/ecotrack/core/internal/application/services"
	"github.com/ecotrack/core/internal/infrastructure/config"
	"github.com/ecotrack/core/internal/infrastructure/logger"
	"github.com/ecotrack/core/internal/infrastructure/server"
	"github.com/ecotrack/core/internal/infrastructure/storage"
	"github.com/ecotrack/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the EcoTrack API server",
		Long:  "Start the EcoTrack API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample actions into the backing file",
		Long:  "Insert a set of sample sustainability actions through the service layer, for demos and local development",
		Run: func(cmd *cobra.Command, args []string) {
			file, _ := cmd.Flags().GetString("file")
			seedActions(file)
		},
	}

	seedCmd.Flags().String("file", "", "Backing file path (defaults to the configured storage.file_path)")

	return seedCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print EcoTrack version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("EcoTrack v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to open backing file", "error", err)
	}
	defer store.Close()

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting EcoTrack API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"storage_file", store.Path(),
	)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Info("Server stopped", "reason", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

func seedActions(file string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if file != "" {
		cfg.Storage.FilePath = file
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open backing file: %v", err)
	}
	defer store.Close()

	actionRepo := repository.NewActionRepository(store)
	actionService := services.NewActionService(actionRepo, appLogger)

	samples := []struct {
		action  string
		daysAgo int
		points  int
	}{
		{"Recycling", 7, 25},
		{"Cycled to work", 3, 15},
		{"Planted a tree", 1, 50},
	}

	ctx := context.Background()
	for _, sample := range samples {
		points := sample.points
		created, err := actionService.CreateAction(ctx, ports.CreateActionRequest{
			Action: sample.action,
			Date:   time.Now().AddDate(0, 0, -sample.daysAgo).Format("2006-01-02"),
			Points: &points,
		})
		if err != nil {
			log.Fatalf("Failed to seed action %q: %v", sample.action, err)
		}
		fmt.Printf("Seeded action %d: %s (%d points)\n", created.ID, created.Action, created.Points)
	}
}
