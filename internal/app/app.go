// Package app wires configuration into the renderer, session store,
// exporter and HTTP service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/config"
	"resume-builder/internal/preview"
	"resume-builder/internal/render"
	"resume-builder/internal/session"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Composer *preview.Composer
	Exporter *usecase.Exporter
	Store    *session.Store
	HTTP     *fiber.App
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	composer := preview.NewComposer(renderer)

	chrome := infra.NewChromedpRenderer(infra.ChromedpOptions{
		ExecPath:    cfg.Export.ChromePath,
		Timeout:     cfg.Export.Timeout,
		PaperWidth:  cfg.Export.PaperWidth,
		PaperHeight: cfg.Export.PaperHeight,
	})
	exporter := usecase.NewExporter(chrome, usecase.ExporterOptions{
		Attempts: cfg.Export.Attempts,
		Backoff:  cfg.Export.Backoff,
		Logger:   log,
	})

	store := session.NewStore(session.Options{
		TTL:             cfg.Session.TTL,
		MaxSessions:     cfg.Session.Max,
		DefaultTemplate: render.TemplateID(cfg.Render.DefaultTemplate),
		Composer:        composer,
		Logger:          log,
	})

	return &App{
		Config:   cfg,
		Log:      log,
		Composer: composer,
		Exporter: exporter,
		Store:    store,
		HTTP: httpadapter.NewApp(httpadapter.Deps{
			Store:       store,
			Exporter:    exporter,
			Logger:      log,
			CookieName:  cfg.Session.Cookie,
			ReadTimeout: cfg.Server.ReadTimeout,
		}),
	}, nil
}

// Serve runs the HTTP service and the session janitor until ctx is done,
// then shuts the listener down gracefully.
func (a *App) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.Store.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server listening", "port", a.Config.Server.Port)
		errCh <- a.HTTP.Listen(":" + a.Config.Server.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.Log.Info("shutting down")
	if err := a.HTTP.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
