package http

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/render"

	"github.com/gofiber/fiber/v2"
)

//go:embed views/editor.tmpl
var views embed.FS

type monthInput struct {
	Name     string
	Value    string
	Min      string
	Max      string
	Disabled bool
}

type entryRef struct {
	Section editor.Section
	ID      string
}

var editorView = template.Must(template.New("editor.tmpl").Funcs(template.FuncMap{
	"join": strings.Join,
	// month builds a month input; min and max bound the range so an end
	// date cannot precede its start date in the picker.
	"month": func(name, value, lo, hi string, disabled bool) monthInput {
		return monthInput{Name: name, Value: value, Min: lo, Max: hi, Disabled: disabled}
	},
	"entry": func(section, id string) entryRef {
		return entryRef{Section: editor.Section(section), ID: id}
	},
}).ParseFS(views, "views/editor.tmpl"))

type editorPage struct {
	Templates []render.TemplateInfo
	Active    render.TemplateID
	Title     string
	Resume    model.Resume
}

func (h *Handler) EditorPage(c *fiber.Ctx) error {
	rec, active := sessionFrom(c).Snapshot()
	var buf bytes.Buffer
	err := editorView.Execute(&buf, editorPage{
		Templates: render.Catalog(),
		Active:    active,
		Title:     preview.DocumentTitle(rec.PersonalInfo.FullName),
		Resume:    rec,
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
