package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4: 210mm x 297mm -> inches
const (
	A4Width  = 8.27
	A4Height = 11.69
)

type ChromedpOptions struct {
	// ExecPath overrides the Chrome binary; empty means search PATH.
	ExecPath    string
	Timeout     time.Duration
	PaperWidth  float64
	PaperHeight float64
}

type ChromedpRenderer struct {
	opts ChromedpOptions
}

func NewChromedpRenderer(opts ChromedpOptions) *ChromedpRenderer {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.PaperWidth <= 0 {
		opts.PaperWidth = A4Width
	}
	if opts.PaperHeight <= 0 {
		opts.PaperHeight = A4Height
	}
	return &ChromedpRenderer{opts: opts}
}

// RenderHTMLToPDF prints a self-contained HTML document with headless Chrome.
// The document's @page rules win over the configured paper size.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.opts.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, r.opts.Timeout)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, fmt.Errorf("chromedp: temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return nil, fmt.Errorf("chromedp: write document: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("#resume-preview", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(r.opts.PaperWidth).
				WithPaperHeight(r.opts.PaperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp: print: %w", err)
	}
	return pdfBuf, nil
}
