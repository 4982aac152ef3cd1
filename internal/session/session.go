// Package session holds the per-visitor editing state: one record and one
// active template id, mutated only through Dispatch and SelectTemplate.
package session

import (
	"sync"
	"time"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/render"
)

// Session owns a record and its template id. All methods are safe for
// concurrent use; edits are applied one at a time.
type Session struct {
	ID string

	mu       sync.Mutex
	rec      model.Resume
	template render.TemplateID
	editor   *editor.Editor
	composer *preview.Composer
	lastSeen time.Time
	now      func() time.Time
}

func newSession(id string, tmpl render.TemplateID, gen model.IDGenerator, composer *preview.Composer, now func() time.Time) *Session {
	s := &Session{
		ID:       id,
		rec:      model.New(),
		template: tmpl,
		composer: composer,
		now:      now,
		lastSeen: now(),
	}
	// called with s.mu held from Dispatch
	s.editor = editor.New(gen, func(next model.Resume) { s.rec = next })
	return s
}

// Dispatch applies one edit to the record.
func (s *Session) Dispatch(cmd editor.Command) (editor.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.editor.Apply(s.rec, cmd)
}

// Replace swaps in a whole record, as when importing a saved JSON file.
func (s *Session) Replace(rec model.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.rec = rec.Normalize()
}

// SelectTemplate sets the active variant. Unknown ids select classic.
// The record is left untouched.
func (s *Session) SelectTemplate(id string) render.TemplateID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.template = render.Resolve(id)
	return s.template
}

// Record returns the current record.
func (s *Session) Record() model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

// TemplateID returns the active variant.
func (s *Session) TemplateID() render.TemplateID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Snapshot returns the record and template id as one consistent pair.
func (s *Session) Snapshot() (model.Resume, render.TemplateID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, s.template
}

// Preview composes the current state into a full document.
func (s *Session) Preview() (preview.Document, error) {
	rec, tmpl := s.Snapshot()
	return s.composer.Compose(rec, tmpl)
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}

func (s *Session) idleSince(t time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastSeen)
}
