package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()
	initLogger()

	rootCmd := &cobra.Command{
		Use:   "worldcheck",
		Short: "Validate and exercise dungeon world definitions",
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger() {
	level := slog.LevelInfo
	if os.Getenv("WORLDCHECK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
