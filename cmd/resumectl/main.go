package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"resume-builder/internal/config"
	"resume-builder/internal/logging"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Render resumes from JSON records",
	Long:          "resumectl validates resume records, renders them with any of the built-in templates, exports PDFs and runs the editor service.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// setup loads the configuration and installs the configured logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}

func readRecord(path string) (model.Resume, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Resume{}, err
	}
	defer f.Close()
	rec, err := model.Decode(f)
	if err != nil {
		return model.Resume{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func templateFlag(cmd *cobra.Command) render.TemplateID {
	id, _ := cmd.Flags().GetString("template")
	return render.Resolve(id)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}
