package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func sequentialIDs() model.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(ttl time.Duration) (*Store, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewStore(Options{TTL: ttl, IDs: sequentialIDs(), Now: c.Now}), c
}

func TestDispatchUpdatesRecord(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")

	if _, err := sess.Dispatch(editor.SetPersonal("fullName", "Jane Doe")); err != nil {
		t.Fatalf("SetPersonal: %v", err)
	}
	res, err := sess.Dispatch(editor.AddEntry(editor.Experience))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if res.NewID != "id-1" {
		t.Fatalf("NewID = %q, want id-1", res.NewID)
	}
	if _, err := sess.Dispatch(editor.UpdateEntry(editor.Experience, res.NewID, "company", "Acme")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rec := sess.Record()
	if rec.PersonalInfo.FullName != "Jane Doe" {
		t.Errorf("FullName = %q", rec.PersonalInfo.FullName)
	}
	if len(rec.Experience) != 1 || rec.Experience[0].Company != "Acme" {
		t.Errorf("Experience = %+v", rec.Experience)
	}
}

func TestDispatchErrorKeepsRecord(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")
	sess.Dispatch(editor.SetPersonal("fullName", "Jane"))

	_, err := sess.Dispatch(editor.SetPersonal("nickname", "JJ"))
	if !errors.Is(err, editor.ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
	if sess.Record().PersonalInfo.FullName != "Jane" {
		t.Error("failed edit changed the record")
	}
}

func TestSelectTemplateIsIdempotentAndKeepsData(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")
	sess.Dispatch(editor.SetPersonal("summary", "Engineer"))
	before := sess.Record()

	if got := sess.TemplateID(); got != render.Classic {
		t.Fatalf("default template = %s, want classic", got)
	}
	for i := 0; i < 2; i++ {
		if got := sess.SelectTemplate("creative"); got != render.Creative {
			t.Fatalf("SelectTemplate = %s", got)
		}
	}
	if sess.TemplateID() != render.Creative {
		t.Error("template not selected")
	}
	if sess.Record().PersonalInfo != before.PersonalInfo {
		t.Error("selecting a template changed the record")
	}
	if got := sess.SelectTemplate("holographic"); got != render.Classic {
		t.Errorf("unknown id selected %s, want classic", got)
	}
}

func TestPreviewUsesActiveTemplate(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")
	sess.Dispatch(editor.SetPersonal("fullName", "Jane Doe"))
	sess.SelectTemplate("business")

	doc, err := sess.Preview()
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if doc.Template != render.Business {
		t.Errorf("template = %s", doc.Template)
	}
	if !strings.Contains(string(doc.HTML), "resume--business") {
		t.Error("preview did not use the business variant")
	}
	if doc.FileName != "Jane_Doe_Resume.pdf" {
		t.Errorf("file name = %q", doc.FileName)
	}
}

func TestReplaceNormalizes(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")
	sess.Replace(model.Resume{PersonalInfo: model.PersonalInfo{FullName: "Imported"}})
	rec := sess.Record()
	if rec.Experience == nil || rec.Skills == nil {
		t.Error("imported record kept nil sections")
	}
	if rec.PersonalInfo.FullName != "Imported" {
		t.Errorf("FullName = %q", rec.PersonalInfo.FullName)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Dispatch(editor.AddEntry(editor.Skills))
		}()
	}
	wg.Wait()
	if got := len(sess.Record().Skills); got != n {
		t.Errorf("skills = %d, want %d", got, n)
	}
}

func TestStoreAcquire(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	a := store.Acquire("")
	if a.ID == "" {
		t.Fatal("session id is empty")
	}
	if b := store.Acquire(a.ID); b != a {
		t.Error("Acquire with a live id returned a different session")
	}
	if c := store.Acquire("not-a-session"); c == a || c.ID == "not-a-session" {
		t.Error("Acquire with an unknown id should start a fresh session with its own id")
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
}

func TestStoreDropsLeastRecentlyUsedAtLimit(t *testing.T) {
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(Options{TTL: time.Hour, MaxSessions: 2, IDs: sequentialIDs(), Now: clk.Now})

	first := store.Acquire("")
	clk.Advance(time.Minute)
	second := store.Acquire("")
	clk.Advance(time.Minute)
	first.SelectTemplate("modern")
	clk.Advance(time.Minute)

	third := store.Acquire("")
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}
	if _, err := store.Get(second.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("least recently used session survived the limit")
	}
	for _, sess := range []*Session{first, third} {
		if _, err := store.Get(sess.ID); err != nil {
			t.Errorf("session %s was dropped: %v", sess.ID, err)
		}
	}

	if got := store.Acquire(first.ID); got != first || store.Len() != 2 {
		t.Error("acquiring a live session at the limit should not drop anything")
	}
}

func TestStoreEnd(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Acquire("")
	store.End(sess.ID)
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after End: err = %v", err)
	}
	store.End(sess.ID)
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	store, clk := newTestStore(time.Hour)
	idle := store.Acquire("")
	clk.Advance(45 * time.Minute)
	active := store.Acquire("")
	clk.Advance(30 * time.Minute)

	if n := store.Evict(); n != 1 {
		t.Fatalf("Evict = %d, want 1", n)
	}
	if _, err := store.Get(idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("idle session survived eviction")
	}
	if _, err := store.Get(active.ID); err != nil {
		t.Error("active session was evicted")
	}
}

func TestActivityKeepsSessionAlive(t *testing.T) {
	store, clk := newTestStore(time.Hour)
	sess := store.Acquire("")
	clk.Advance(50 * time.Minute)
	sess.SelectTemplate("modern")
	clk.Advance(50 * time.Minute)

	if n := store.Evict(); n != 0 {
		t.Errorf("Evict = %d, want 0", n)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
