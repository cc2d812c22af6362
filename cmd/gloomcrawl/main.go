// Package main is the entry point for gloomcrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gloomcrawl/internal/game"
	"github.com/samdwyer/gloomcrawl/internal/logger"
	"github.com/samdwyer/gloomcrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := game.LoadConfig(os.Getenv(game.EnvConfig))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	seed := cfg.ResolveSeed()

	// The terminal owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger.Init(logFile)

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, seed)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint was given explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_GLOOMCRAWL_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_GLOOMCRAWL_DATASET")
	if dataset == "" {
		dataset = "gloomcrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
