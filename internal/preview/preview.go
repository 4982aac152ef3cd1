// Package preview wraps a rendered resume fragment into the standalone page
// used by the live preview and by the PDF export.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"unicode"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// ContainerID is the id of the element the exporter prints.
const ContainerID = "resume-preview"

const fallbackTitle = "Resume"

var whitespaceRun = regexp.MustCompile(`\s+`)

// DocumentTitle derives the document title from the person's name:
// "Jane Doe" becomes "Jane_Doe_Resume" and an empty name becomes "Resume".
// The title doubles as a file name, so path separators and other runes
// that are unsafe in file names become underscores too.
func DocumentTitle(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return fallbackTitle
	}
	name = strings.Map(fileSafe, whitespaceRun.ReplaceAllString(name, "_"))
	return name + "_" + fallbackTitle
}

func fileSafe(r rune) rune {
	if unicode.IsControl(r) || strings.ContainsRune(`/\:*?"<>|`, r) {
		return '_'
	}
	return r
}

// FileName is the download name of the exported document.
func FileName(fullName string) string {
	return DocumentTitle(fullName) + ".pdf"
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div id="{{.ContainerID}}" data-template="{{.Template}}">
{{.Body}}
</div>
</body>
</html>
`))

// Document is a complete preview page ready to be served or printed.
type Document struct {
	Title    string
	FileName string
	Template render.TemplateID
	HTML     []byte
}

// Composer renders records into full preview documents.
type Composer struct {
	renderer *render.Renderer
}

func NewComposer(r *render.Renderer) *Composer {
	return &Composer{renderer: r}
}

// Compose renders rec with the variant id and inlines the variant stylesheet
// so the page has no external dependencies.
func (c *Composer) Compose(rec model.Resume, id render.TemplateID) (Document, error) {
	if !render.Known(id) {
		id = render.DefaultTemplate
	}
	body, err := c.renderer.Render(rec, id)
	if err != nil {
		return Document{}, err
	}

	title := DocumentTitle(rec.PersonalInfo.FullName)
	var buf bytes.Buffer
	err = page.Execute(&buf, struct {
		Title       string
		CSS         template.CSS
		ContainerID string
		Template    render.TemplateID
		Body        template.HTML
	}{
		Title:       title,
		CSS:         template.CSS(c.renderer.Stylesheet(id)),
		ContainerID: ContainerID,
		Template:    id,
		Body:        body,
	})
	if err != nil {
		return Document{}, fmt.Errorf("preview: compose page: %w", err)
	}

	return Document{
		Title:    title,
		FileName: title + ".pdf",
		Template: id,
		HTML:     buf.Bytes(),
	}, nil
}
