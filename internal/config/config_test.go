package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// chdirTemp isolates a test from config files and variables on the host.
// Empty variables count as unset.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("PORT", "")
	t.Setenv("CHROME_PATH", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		Server:  ServerConfig{Port: "3000", ReadTimeout: 15 * time.Second},
		Session: SessionConfig{TTL: 2 * time.Hour, Cookie: "resume_session", Max: 10000},
		Render:  RenderConfig{DefaultTemplate: "classic"},
		Export: ExportConfig{
			Timeout:     60 * time.Second,
			Attempts:    3,
			Backoff:     time.Second,
			PaperWidth:  8.27,
			PaperHeight: 11.69,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "8081")
	t.Setenv("CHROME_PATH", "/opt/chrome")
	t.Setenv("RESUME_RENDER_DEFAULT_TEMPLATE", "modern")
	t.Setenv("RESUME_SESSION_TTL", "30m")
	t.Setenv("RESUME_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8081" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Export.ChromePath != "/opt/chrome" {
		t.Errorf("chrome path = %q", cfg.Export.ChromePath)
	}
	if cfg.Render.DefaultTemplate != "modern" {
		t.Errorf("default template = %q", cfg.Render.DefaultTemplate)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("ttl = %v", cfg.Session.TTL)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log format = %q", cfg.Log.Format)
	}
}

func TestLoadFile(t *testing.T) {
	dir := chdirTemp(t)
	body := "server:\n  port: \"9000\"\nexport:\n  attempts: 5\n  backoff: 250ms\n"
	if err := os.WriteFile(filepath.Join(dir, "resume-builder.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" || cfg.Export.Attempts != 5 || cfg.Export.Backoff != 250*time.Millisecond {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Session.Cookie != "resume_session" {
		t.Errorf("defaults lost when a file is present: %+v", cfg.Session)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := chdirTemp(t)
	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero attempts", "RESUME_EXPORT_ATTEMPTS", "0"},
		{"too many attempts", "RESUME_EXPORT_ATTEMPTS", "64"},
		{"zero sessions", "RESUME_SESSION_MAX", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
