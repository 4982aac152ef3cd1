package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/app"
	"resume-builder/internal/preview"
	"resume-builder/internal/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Templates"))
		for _, t := range render.Catalog() {
			marker := " "
			if t.ID == render.DefaultTemplate {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s %s\n", marker, labelStyle.Render(fmt.Sprintf("%-9s", t.ID)), mutedStyle.Render(t.Name+" / "+t.Description))
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:     "validate <file>",
	Short:   "Check a resume record against the schema",
	Args:    cobra.ExactArgs(1),
	Example: "  resumectl validate ./resume.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := readRecord(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Valid: "+args[0]))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Name:"), rec.PersonalInfo.FullName)
		counts := []string{
			fmt.Sprintf("experience=%d", len(rec.Experience)),
			fmt.Sprintf("education=%d", len(rec.Education)),
			fmt.Sprintf("skills=%d", len(rec.Skills)),
			fmt.Sprintf("projects=%d", len(rec.Projects)),
			fmt.Sprintf("certifications=%d", len(rec.Certifications)),
		}
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Entries:"), strings.Join(counts, " "))
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:     "render <file>",
	Short:   "Render a record to a standalone HTML page",
	Args:    cobra.ExactArgs(1),
	Example: "  resumectl render ./resume.json --template modern --out resume.html",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := readRecord(args[0])
		if err != nil {
			return err
		}
		r, err := render.New()
		if err != nil {
			return err
		}
		doc, err := preview.NewComposer(r).Compose(rec, templateFlag(cmd))
		if err != nil {
			return err
		}
		out := doc.HTML
		if asText, _ := cmd.Flags().GetBool("text"); asText {
			fragment, err := r.Render(rec, doc.Template)
			if err != nil {
				return err
			}
			out = []byte(render.PlainText(fragment) + "\n")
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" || outPath == "-" {
			_, err := cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s)\n", labelStyle.Render("Wrote"), outPath, doc.Template)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:     "export <file>",
	Short:   "Export a record to PDF with headless Chrome",
	Args:    cobra.ExactArgs(1),
	Example: "  resumectl export ./resume.json --template business",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		rec, err := readRecord(args[0])
		if err != nil {
			return err
		}
		a, err := app.New(cfg, log)
		if err != nil {
			return err
		}
		doc, err := a.Composer.Compose(rec, templateFlag(cmd))
		if err != nil {
			return err
		}
		job, err := a.Exporter.Export(cmd.Context(), "", doc)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			outPath = filepath.Base(job.FileName)
		}
		if err := os.WriteFile(outPath, job.PDF, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes, %d attempt(s))\n", labelStyle.Render("Exported"), outPath, len(job.PDF), job.Attempts)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resume editor web service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}
		a, err := app.New(cfg, log)
		if err != nil {
			return err
		}
		return a.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./resume-builder.yaml)")
	rootCmd.AddCommand(templatesCmd, validateCmd, renderCmd, exportCmd, serveCmd)

	for _, c := range []*cobra.Command{renderCmd, exportCmd} {
		c.Flags().StringP("template", "t", string(render.DefaultTemplate), "template id, see resumectl templates")
		c.Flags().StringP("out", "o", "", "output file")
	}
	renderCmd.Flags().Bool("text", false, "write the visible text instead of HTML")
	serveCmd.Flags().StringP("port", "p", "", "listen port (overrides config)")
}
