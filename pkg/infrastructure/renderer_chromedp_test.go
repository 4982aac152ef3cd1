package infrastructure

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"
	"time"
)

func chromePath(t *testing.T) string {
	t.Helper()
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	t.Skip("no Chrome binary found; set CHROME_PATH to run")
	return ""
}

func TestRenderHTMLToPDF(t *testing.T) {
	r := NewChromedpRenderer(ChromedpOptions{ExecPath: chromePath(t), Timeout: 30 * time.Second})
	doc := []byte(`<!DOCTYPE html><html><head><style>@page{size:A4;margin:0}</style></head>` +
		`<body><div id="resume-preview"><h1>Jane Doe</h1></div></body></html>`)

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	pdf, err := r.RenderHTMLToPDF(ctx, doc)
	if err != nil {
		t.Fatalf("RenderHTMLToPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF signature: %q", pdf[:min(len(pdf), 8)])
	}
}

func TestNewChromedpRendererDefaults(t *testing.T) {
	r := NewChromedpRenderer(ChromedpOptions{})
	if r.opts.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v", r.opts.Timeout)
	}
	if r.opts.PaperWidth != A4Width || r.opts.PaperHeight != A4Height {
		t.Errorf("paper = %vx%v, want A4", r.opts.PaperWidth, r.opts.PaperHeight)
	}
}
