package http

import (
	"context"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/preview"
	"resume-builder/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Exporter interface {
	Export(ctx context.Context, sessionID string, doc preview.Document) (*domain.Export, error)
}

type Deps struct {
	Store       *session.Store
	Exporter    Exporter
	Logger      *slog.Logger
	CookieName  string
	ReadTimeout time.Duration
}

// NewApp wires the editor pages, the JSON API and the export endpoint.
func NewApp(d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.CookieName == "" {
		d.CookieName = "resume_session"
	}

	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		DisableStartupMessage: true,
		ReadTimeout:           d.ReadTimeout,
		ErrorHandler:          errorHandler(d.Logger),
	})

	app.Use(requestid.New())
	app.Use(requestLogger(d.Logger))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	h := NewHandler(d)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(sessions(d.Store, d.CookieName))

	app.Get("/", h.EditorPage)
	app.Get("/preview", h.Preview)
	app.Get("/export.pdf", h.ExportPDF)

	form := app.Group("/form")
	form.Post("/template", h.FormTemplate)
	form.Post("/personal", h.FormPersonal)
	form.Post("/reset", h.FormReset)
	form.Post("/:section/add", h.FormAdd)
	form.Post("/:section/:id/remove", h.FormRemove)
	form.Post("/:section/:id", h.FormUpdate)

	api := app.Group("/api")
	api.Get("/resume", h.GetResume)
	api.Put("/resume", h.PutResume)
	api.Put("/resume/personal", h.PutPersonal)
	api.Post("/resume/:section", h.AddEntry)
	api.Patch("/resume/:section/:id", h.UpdateEntry)
	api.Delete("/resume/:section/:id", h.RemoveEntry)
	api.Get("/templates", h.ListTemplates)
	api.Get("/template", h.GetTemplate)
	api.Put("/template", h.PutTemplate)

	return app
}
