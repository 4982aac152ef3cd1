package render

import "strings"

// TemplateID identifies one visual variant.
type TemplateID string

const (
	Classic  TemplateID = "classic"
	Modern   TemplateID = "modern"
	Elegant  TemplateID = "elegant"
	Minimal  TemplateID = "minimal"
	Colorful TemplateID = "colorful"
	Creative TemplateID = "creative"
	Business TemplateID = "business"

	DefaultTemplate = Classic
)

// TemplateInfo describes a variant for the template selector.
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

var catalog = []TemplateInfo{
	{ID: Classic, Name: "Classic", Description: "professional"},
	{ID: Modern, Name: "Modern", Description: "Clean and contemporary"},
	{ID: Elegant, Name: "Elegant", Description: "Sophisticated design"},
	{ID: Minimal, Name: "Minimal", Description: "Simple and focused"},
	{ID: Colorful, Name: "Colorful", Description: "Eye-catching accents"},
	{ID: Creative, Name: "Creative", Description: "Unique and artistic"},
	{ID: Business, Name: "Business", Description: "Corporate standard"},
}

// Catalog returns the available variants in selector order.
func Catalog() []TemplateInfo {
	out := make([]TemplateInfo, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns every known template id in selector order.
func IDs() []TemplateID {
	out := make([]TemplateID, len(catalog))
	for i, t := range catalog {
		out[i] = t.ID
	}
	return out
}

// Known reports whether id names a variant.
func Known(id TemplateID) bool {
	for _, t := range catalog {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Resolve normalises id and falls back to the classic variant when it is
// not known.
func Resolve(id string) TemplateID {
	t := TemplateID(strings.ToLower(strings.TrimSpace(id)))
	if Known(t) {
		return t
	}
	return DefaultTemplate
}
