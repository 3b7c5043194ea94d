package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrack/core/cmd/api/commands"
)

// @title EcoTrack API
// @version 1.0
// @description Sustainability action tracking service with JSON-file persistence

// @host localhost:8080
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecotrack",
		Short: "EcoTrack API Server",
		Long:  `EcoTrack is a sustainability action tracker: a REST API for recording actions with dates and points, persisted to a flat JSON file.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
