// Package main implements the entry point for the SpeakCoach API server,
// which records speaking-practice sessions, scores them, serves a daily
// speaking prompt, and dispatches daily reminder emails.
package main

import (
	"context"
	"log"

	"github.com/speakcoach/speakcoach-api/internal/config"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, assembles the application, and serves until a
// shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"scheduler_interval_seconds", cfg.Scheduler.IntervalSeconds)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.start(ctx)
}
