package http

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/session"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	store    *session.Store
	exporter Exporter
	log      *slog.Logger
	cookie   string
}

func NewHandler(d Deps) *Handler {
	return &Handler{store: d.Store, exporter: d.Exporter, log: d.Logger, cookie: d.CookieName}
}

// Preview serves the live preview document shown in the editor's iframe.
func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := sessionFrom(c).Preview()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(doc.HTML)
}

// ExportPDF prints the current preview and returns it as an attachment.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	if h.exporter == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "export is not configured")
	}
	sess := sessionFrom(c)
	doc, err := sess.Preview()
	if err != nil {
		return err
	}
	job, err := h.exporter.Export(c.UserContext(), sess.ID, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", errExport, err)
	}
	h.log.Info("pdf exported", "export_id", job.ID.String(), "session_id", sess.ID, "file", job.FileName, "attempts", job.Attempts)
	c.Attachment(job.FileName)
	return c.Send(job.PDF)
}

// dispatchAll applies cmds in order and stops at the first error.
func dispatchAll(sess *session.Session, cmds []editor.Command) error {
	for _, cmd := range cmds {
		if _, err := sess.Dispatch(cmd); err != nil {
			return err
		}
	}
	return nil
}

// fieldValue turns a JSON value into the string form the editors accept.
func fieldValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, it := range x {
			s, ok := it.(string)
			if !ok {
				return "", fmt.Errorf("%w: list values must be strings", model.ErrInvalidRecord)
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}
	return "", fmt.Errorf("%w: unsupported value %T", model.ErrInvalidRecord, v)
}

// fieldCommands validates the keys of a JSON patch against allowed and
// builds commands in allowed order, so "current" is applied before
// "endDate" regardless of key order in the body.
func fieldCommands(body map[string]any, allowed []string, build func(field, value string) editor.Command, unknown func(field string) error) ([]editor.Command, error) {
	for k := range body {
		if !slices.Contains(allowed, k) {
			return nil, unknown(k)
		}
	}
	cmds := make([]editor.Command, 0, len(body))
	for _, f := range allowed {
		v, ok := body[f]
		if !ok {
			continue
		}
		s, err := fieldValue(v)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, build(f, s))
	}
	return cmds, nil
}

func unknownField(scope string) func(string) error {
	return func(field string) error {
		return fmt.Errorf("%w: %s.%s", editor.ErrUnknownField, scope, field)
	}
}

func sectionParam(c *fiber.Ctx) (editor.Section, error) {
	return editor.ParseSection(c.Params("section"))
}
