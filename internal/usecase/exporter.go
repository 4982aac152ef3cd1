package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/preview"

	"github.com/google/uuid"
)

var ErrInvalidPDF = errors.New("invalid PDF output")

var pdfSignature = []byte("%PDF")

// maxBackoff bounds the wait between attempts however many are configured.
const maxBackoff = 30 * time.Second

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html []byte) ([]byte, error)
}

type ExporterOptions struct {
	Attempts int
	// Backoff is the wait after the first failed attempt; it doubles on
	// every further failure.
	Backoff time.Duration
	Logger  *slog.Logger
}

type Exporter struct {
	renderer Renderer
	attempts int
	backoff  time.Duration
	log      *slog.Logger
}

func NewExporter(r Renderer, opts ExporterOptions) *Exporter {
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.Backoff < 0 {
		opts.Backoff = 0
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Exporter{
		renderer: r,
		attempts: opts.Attempts,
		backoff:  opts.Backoff,
		log:      opts.Logger.With("component", "exporter"),
	}
}

// Export prints doc to PDF, retrying with exponential backoff until the
// renderer returns bytes carrying a PDF signature.
func (e *Exporter) Export(ctx context.Context, sessionID string, doc preview.Document) (*domain.Export, error) {
	now := time.Now()
	job := &domain.Export{
		ID:        uuid.New(),
		SessionID: sessionID,
		Template:  string(doc.Template),
		Title:     doc.Title,
		FileName:  doc.FileName,
		Status:    domain.ExportPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	log := e.log.With("export_id", job.ID.String(), "template", job.Template)

	var pdfBytes []byte
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		job.Attempts = i + 1
		pdfBytes, renderErr = e.renderer.RenderHTMLToPDF(ctx, doc.HTML)
		if renderErr == nil {
			if bytes.HasPrefix(pdfBytes, pdfSignature) {
				break
			}
			renderErr = fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(pdfBytes))
		}
		log.Warn("render attempt failed", "attempt", i+1, "error", renderErr)

		if i < e.attempts-1 {
			select {
			case <-time.After(e.wait(i)):
			case <-ctx.Done():
				return e.fail(job, ctx.Err()), ctx.Err()
			}
		}
	}

	if renderErr != nil {
		log.Error("export failed", "attempts", job.Attempts, "error", renderErr)
		err := fmt.Errorf("export after %d attempts: %w", job.Attempts, renderErr)
		return e.fail(job, err), err
	}

	job.PDF = pdfBytes
	job.Status = domain.ExportSucceeded
	job.UpdatedAt = time.Now()
	log.Info("export finished", "attempts", job.Attempts, "bytes", len(pdfBytes))
	return job, nil
}

// wait is the pause after the i-th failed attempt (zero based).
func (e *Exporter) wait(i int) time.Duration {
	d := e.backoff
	for ; i > 0 && d < maxBackoff; i-- {
		d *= 2
	}
	return min(d, maxBackoff)
}

func (e *Exporter) fail(job *domain.Export, err error) *domain.Export {
	job.Status = domain.ExportFailed
	job.Error = err.Error()
	job.UpdatedAt = time.Now()
	return job
}
