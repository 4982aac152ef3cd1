package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"resume-builder/internal/app"
	"resume-builder/internal/config"
	"resume-builder/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("RESUME_CONFIG"))
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	if err := a.Serve(ctx); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
