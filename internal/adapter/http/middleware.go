package http

import (
	"errors"
	"log/slog"
	"time"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/session"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// errExport marks failures of the PDF collaborator, reported as 502.
var errExport = errors.New("export failed")

// sessions resolves the session cookie, starting a new session when the
// cookie is missing or names an ended session.
func sessions(store *session.Store, cookie string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookie)
		sess := store.Acquire(id)
		if sess.ID != id {
			c.Cookie(&fiber.Cookie{
				Name:     cookie,
				Value:    sess.ID,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

func sessionFrom(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(sessionKey).(*session.Session)
	return sess
}

// requestLogger emits one structured line per request. Errors are resolved
// through the app's error handler first so the logged status is final.
func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		attrs := []any{
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
		}
		if sess := sessionFrom(c); sess != nil {
			attrs = append(attrs, "session_id", sess.ID)
		}
		log.Info("request.complete", attrs...)
		return nil
	}
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, editor.ErrUnknownSection),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, model.ErrInvalidRecord),
		errors.Is(err, model.ErrDuplicateID):
		return fiber.StatusBadRequest
	case errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errExport):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)
		level := slog.LevelWarn
		if code >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.UserContext(), level, "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
