// Package editor implements the section editors: pure operations that take
// the current resume record plus one user edit and return the next record.
package editor

import (
	"errors"
	"fmt"

	"resume-builder/internal/model"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownField   = errors.New("unknown field")
)

func unknownSection(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

func unknownField(section, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
}

// Editor applies edits to a record. Every successful operation invokes
// OnChange exactly once, synchronously, with the complete next record.
type Editor struct {
	newID    model.IDGenerator
	onChange func(model.Resume)
}

// New builds an Editor. A nil generator falls back to model.NewID and a nil
// callback is allowed.
func New(gen model.IDGenerator, onChange func(model.Resume)) *Editor {
	if gen == nil {
		gen = model.NewID
	}
	if onChange == nil {
		onChange = func(model.Resume) {}
	}
	return &Editor{newID: gen, onChange: onChange}
}

func (e *Editor) emit(next model.Resume) model.Resume {
	e.onChange(next)
	return next
}

// SetPersonal replaces one personal info field.
func (e *Editor) SetPersonal(rec model.Resume, field, value string) (model.Resume, error) {
	p, err := setPersonal(rec.PersonalInfo, field, value)
	if err != nil {
		return rec, err
	}
	rec.PersonalInfo = p
	return e.emit(rec), nil
}

// Add appends an empty entry with a fresh id to section and returns the id.
func (e *Editor) Add(rec model.Resume, section Section) (model.Resume, string, error) {
	id := e.newID()
	switch section {
	case Experience:
		rec.Experience = appendEntry(rec.Experience, model.Experience{ID: id})
	case Education:
		rec.Education = appendEntry(rec.Education, model.Education{ID: id})
	case Skills:
		rec.Skills = appendEntry(rec.Skills, model.SkillCategory{ID: id, Items: []string{}})
	case Projects:
		rec.Projects = appendEntry(rec.Projects, model.Project{ID: id})
	case Certifications:
		rec.Certifications = appendEntry(rec.Certifications, model.Certification{ID: id})
	default:
		return rec, "", unknownSection(string(section))
	}
	return e.emit(rec), id, nil
}

// Update sets field on the entry with the given id. Other entries pass
// through unchanged and order is preserved. An unknown id is a no-op.
func (e *Editor) Update(rec model.Resume, section Section, id, field, value string) (model.Resume, error) {
	var err error
	switch section {
	case Experience:
		rec.Experience, err = updateEntry(rec.Experience, experienceID, id, func(x model.Experience) (model.Experience, error) {
			return setExperience(x, field, value)
		})
	case Education:
		rec.Education, err = updateEntry(rec.Education, educationID, id, func(x model.Education) (model.Education, error) {
			return setEducation(x, field, value)
		})
	case Skills:
		rec.Skills, err = updateEntry(rec.Skills, skillID, id, func(x model.SkillCategory) (model.SkillCategory, error) {
			return setSkill(x, field, value)
		})
	case Projects:
		rec.Projects, err = updateEntry(rec.Projects, projectID, id, func(x model.Project) (model.Project, error) {
			return setProject(x, field, value)
		})
	case Certifications:
		rec.Certifications, err = updateEntry(rec.Certifications, certificationID, id, func(x model.Certification) (model.Certification, error) {
			return setCertification(x, field, value)
		})
	default:
		return rec, unknownSection(string(section))
	}
	if err != nil {
		return rec, err
	}
	return e.emit(rec), nil
}

// Remove drops the entry with the given id. An unknown id is a no-op.
func (e *Editor) Remove(rec model.Resume, section Section, id string) (model.Resume, error) {
	switch section {
	case Experience:
		rec.Experience = removeEntry(rec.Experience, experienceID, id)
	case Education:
		rec.Education = removeEntry(rec.Education, educationID, id)
	case Skills:
		rec.Skills = removeEntry(rec.Skills, skillID, id)
	case Projects:
		rec.Projects = removeEntry(rec.Projects, projectID, id)
	case Certifications:
		rec.Certifications = removeEntry(rec.Certifications, certificationID, id)
	default:
		return rec, unknownSection(string(section))
	}
	return e.emit(rec), nil
}

func experienceID(x model.Experience) string { return x.ID }
func educationID(x model.Education) string { return x.ID }
func skillID(x model.SkillCategory) string { return x.ID }
func projectID(x model.Project) string { return x.ID }
func certificationID(x model.Certification) string { return x.ID }

// appendEntry always allocates, so the previous record's slice is never
// written through.
func appendEntry[T any](list []T, entry T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, entry)
}

func updateEntry[T any](list []T, idOf func(T) string, id string, set func(T) (T, error)) ([]T, error) {
	out := make([]T, len(list))
	for i, entry := range list {
		if idOf(entry) != id {
			out[i] = entry
			continue
		}
		next, err := set(entry)
		if err != nil {
			return list, err
		}
		out[i] = next
	}
	// field names are checked even when no entry matches
	if !containsID(list, idOf, id) {
		var zero T
		if _, err := set(zero); err != nil {
			return list, err
		}
	}
	return out, nil
}

func removeEntry[T any](list []T, idOf func(T) string, id string) []T {
	out := make([]T, 0, len(list))
	for _, entry := range list {
		if idOf(entry) == id {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func containsID[T any](list []T, idOf func(T) string, id string) bool {
	for _, entry := range list {
		if idOf(entry) == id {
			return true
		}
	}
	return false
}
