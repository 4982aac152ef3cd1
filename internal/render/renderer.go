// Package render projects a resume record onto one of seven HTML template
// variants. Rendering is pure: the same record and variant always produce
// the same fragment.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"resume-builder/internal/model"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed styles/*.css
var styleFiles embed.FS

const rootTemplate = "resume"

var funcs = template.FuncMap{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"href":  href,
}

// Renderer holds the parsed variants, keyed by id.
type Renderer struct {
	templates map[TemplateID]*template.Template
	styles    map[TemplateID]string
	base      string
}

// New parses every variant from the embedded template bundle.
func New() (*Renderer, error) {
	return NewFromFS(templateFiles, styleFiles)
}

// NewFromFS parses variants from alternate bundles laid out as
// templates/<id>.tmpl and styles/<id>.css.
func NewFromFS(tplFS, cssFS fs.FS) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[TemplateID]*template.Template, len(catalog)),
		styles:    make(map[TemplateID]string, len(catalog)),
	}

	base, err := fs.ReadFile(cssFS, "styles/base.css")
	if err != nil {
		return nil, fmt.Errorf("render: read base stylesheet: %w", err)
	}
	r.base = string(base)

	for _, id := range IDs() {
		tpl, err := template.New(string(id)).Funcs(funcs).ParseFS(tplFS,
			"templates/partials.tmpl",
			"templates/"+string(id)+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", id, err)
		}
		if tpl.Lookup(rootTemplate) == nil {
			return nil, fmt.Errorf("render: %s does not define %q", id, rootTemplate)
		}
		r.templates[id] = tpl

		css, err := fs.ReadFile(cssFS, "styles/"+string(id)+".css")
		if err != nil {
			return nil, fmt.Errorf("render: read %s stylesheet: %w", id, err)
		}
		r.styles[id] = string(css)
	}
	return r, nil
}

// MustNew is New for init-time wiring.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render projects rec onto the variant id. Unknown ids use classic.
func (r *Renderer) Render(rec model.Resume, id TemplateID) (template.HTML, error) {
	if !Known(id) {
		id = DefaultTemplate
	}
	tpl, ok := r.templates[id]
	if !ok {
		return "", fmt.Errorf("render: template %q not loaded", id)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, rootTemplate, newView(rec, id)); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", id, err)
	}
	return template.HTML(buf.String()), nil
}

// Stylesheet returns the shared page rules followed by the variant's rules.
func (r *Renderer) Stylesheet(id TemplateID) string {
	if !Known(id) {
		id = DefaultTemplate
	}
	return r.base + "\n" + r.styles[id]
}

// href turns a user-entered link into a URL, adding https:// when the
// scheme is missing. html/template still filters unsafe schemes.
func href(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	lower := strings.ToLower(link)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "mailto:") {
		return link
	}
	return "https://" + link
}
