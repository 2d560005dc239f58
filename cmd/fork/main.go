// Package main is the entry point for the Fork viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/TypeDummying/Fork/internal/app"
	"github.com/TypeDummying/Fork/internal/config"
	"github.com/TypeDummying/Fork/internal/logger"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup unwinds before
// main exits.
func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// Write the effective config and quit when asked to
	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", config.DefaultPath())
		return 0
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Fork ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the application
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create application", zap.Error(err))
		return 1
	}
	defer a.Close()

	// Run the main loop
	if err := a.Run(); err != nil {
		logger.Error("application error", zap.Error(err))
		return 1
	}

	logger.Info("application closed normally")
	return 0
}
