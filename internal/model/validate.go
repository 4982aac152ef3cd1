package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

var (
	ErrInvalidRecord = errors.New("invalid resume record")
	ErrDuplicateID   = errors.New("duplicate entry id")
)

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidateJSON validates a raw document against resume.schema.json.
func ValidateJSON(doc []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema validation failed: %s", ErrInvalidRecord, strings.Join(msgs, "; "))
}

// Validate checks invariants the schema cannot express: entry ids are unique
// within each section.
func (r Resume) Validate() error {
	sections := map[string][]string{
		"experience":     make([]string, 0, len(r.Experience)),
		"education":      make([]string, 0, len(r.Education)),
		"skills":         make([]string, 0, len(r.Skills)),
		"projects":       make([]string, 0, len(r.Projects)),
		"certifications": make([]string, 0, len(r.Certifications)),
	}
	for _, e := range r.Experience {
		sections["experience"] = append(sections["experience"], e.ID)
	}
	for _, e := range r.Education {
		sections["education"] = append(sections["education"], e.ID)
	}
	for _, e := range r.Skills {
		sections["skills"] = append(sections["skills"], e.ID)
	}
	for _, e := range r.Projects {
		sections["projects"] = append(sections["projects"], e.ID)
	}
	for _, e := range r.Certifications {
		sections["certifications"] = append(sections["certifications"], e.ID)
	}

	for _, name := range []string{"experience", "education", "skills", "projects", "certifications"} {
		seen := make(map[string]struct{}, len(sections[name]))
		for i, id := range sections[name] {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%w: %s[%d].id is empty", ErrInvalidRecord, name, i)
			}
			if _, ok := seen[id]; ok {
				return fmt.Errorf("%w: %s[%d].id %q", ErrDuplicateID, name, i, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// Decode reads a JSON record, validating its shape and id uniqueness.
func Decode(r io.Reader) (Resume, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, fmt.Errorf("read record: %w", err)
	}
	return DecodeBytes(b)
}

func DecodeBytes(b []byte) (Resume, error) {
	if err := ValidateJSON(b); err != nil {
		return Resume{}, err
	}
	var rec Resume
	if err := json.Unmarshal(b, &rec); err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	rec = rec.Normalize()
	if err := rec.Validate(); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Encode writes the record as indented JSON.
func Encode(w io.Writer, rec Resume) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec.Normalize())
}
