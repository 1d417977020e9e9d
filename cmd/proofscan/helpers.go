package main

import (
	"fmt"
	"os"

	"proofscan/internal/config"
	"proofscan/internal/logging"
)

// mustLoadConfig loads and validates the configuration under root, exiting
// on failure.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.LoadConfig(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the logger for one command invocation from config.
// PROOFSCAN_LOG_LEVEL overrides the configured level.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if env := os.Getenv("PROOFSCAN_LOG_LEVEL"); env != "" {
		level = env
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.LogLevel(level),
	})
}

// rootArg returns the project root from positional args, defaulting to ".".
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
