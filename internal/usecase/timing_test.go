package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"career-studio/internal/domain"
	"career-studio/internal/model"
	"career-studio/internal/store"
)

// Three quick edits inside one debounce window produce exactly one render
// round trip, carrying the content as of the last edit.
func TestDebounceCoalescesEdits(t *testing.T) {
	backend := &fakeBackend{nextID: "42"}
	opts := testOptions(backend)
	opts.Debounce = 120 * time.Millisecond
	sess, err := CreateDocument(context.Background(), domain.KindCV, domain.TemplateClassic, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	names := []string{"J", "Ja", "Jane"}
	for _, n := range names {
		name := n
		sess.Edit(func(c model.Content) model.Content {
			p := c.PersonalInfo
			p.FullName = name
			return c.WithPersonalInfo(p)
		})
		time.Sleep(25 * time.Millisecond) // well inside the window
	}

	if !waitFor(2*time.Second, func() bool { return backend.renderCount() == 1 }) {
		t.Fatalf("expected exactly 1 render, got %d", backend.renderCount())
	}
	// no trailing second render
	time.Sleep(250 * time.Millisecond)
	if n := backend.renderCount(); n != 1 {
		t.Fatalf("late renders fired: %d", n)
	}

	last, _ := backend.lastRender()
	if last.Content.PersonalInfo.FullName != "Jane" {
		t.Fatalf("render carried stale content: %q", last.Content.PersonalInfo.FullName)
	}
	if sess.PreviewHTML() != "<html>preview</html>" {
		t.Fatalf("preview html not applied: %q", sess.PreviewHTML())
	}
}

// Switching templates renders immediately instead of waiting out the
// debounce window.
func TestTemplateSwitchBypassesDebounce(t *testing.T) {
	backend := &fakeBackend{nextID: "42"}
	opts := testOptions(backend)
	opts.Debounce = time.Hour
	sess, err := CreateDocument(context.Background(), domain.KindCV, domain.TemplateClassic, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	if err := sess.SetTemplate(domain.TemplateModern); err != nil {
		t.Fatal(err)
	}
	if !waitFor(2*time.Second, func() bool { return backend.renderCount() == 1 }) {
		t.Fatal("template switch did not trigger an immediate render")
	}
	last, _ := backend.lastRender()
	if last.Template != "modern" {
		t.Fatalf("rendered with template %q", last.Template)
	}

	if err := sess.SetTemplate("sparkly"); err == nil {
		t.Fatal("unknown template accepted")
	}
}

// countingStore wraps MemStore to count writes.
type countingStore struct {
	*store.MemStore
	mu   sync.Mutex
	sets int
}

func (s *countingStore) Set(key, value string) error {
	s.mu.Lock()
	s.sets++
	s.mu.Unlock()
	return s.MemStore.Set(key, value)
}

func (s *countingStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

// Opening starts the autosave interval; closing stops it for good.
func TestAutosaveLifecycle(t *testing.T) {
	backend := &fakeBackend{nextID: "42"}
	st := &countingStore{MemStore: store.NewMemStore()}
	opts := testOptions(backend)
	opts.Store = st
	opts.Autosave = 30 * time.Millisecond

	sess, err := CreateDocument(context.Background(), domain.KindCV, domain.TemplateClassic, opts)
	if err != nil {
		t.Fatal(err)
	}
	sess.Edit(func(c model.Content) model.Content {
		p := c.PersonalInfo
		p.FullName = "Jane Doe"
		return c.WithPersonalInfo(p)
	})

	sess.Open()
	if !waitFor(2*time.Second, func() bool { return st.setCount() >= 2 }) {
		t.Fatalf("autosave never ticked, sets=%d", st.setCount())
	}

	doc, ok := RestoreDraft(st, "42")
	if !ok {
		t.Fatal("no mirrored draft under cv_draft_42")
	}
	if doc.Content.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("draft content = %q", doc.Content.PersonalInfo.FullName)
	}

	sess.Close()
	after := st.setCount()
	time.Sleep(120 * time.Millisecond) // several would-be intervals
	if st.setCount() != after {
		t.Fatalf("autosave ticked after close: %d -> %d", after, st.setCount())
	}
}

// A render already in flight when the session closes completes without
// disturbing anything; the revision guard decides whether its HTML applies.
func TestInFlightRenderSurvivesClose(t *testing.T) {
	backend := &fakeBackend{
		nextID:        "42",
		renderBlock:   make(chan struct{}),
		renderEntered: make(chan struct{}, 1),
	}
	opts := testOptions(backend)
	opts.Debounce = 10 * time.Millisecond
	sess, err := CreateDocument(context.Background(), domain.KindCV, domain.TemplateClassic, opts)
	if err != nil {
		t.Fatal(err)
	}

	sess.Edit(func(c model.Content) model.Content {
		p := c.PersonalInfo
		p.FullName = "Jane Doe"
		return c.WithPersonalInfo(p)
	})

	select {
	case <-backend.renderEntered:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced render never reached the backend")
	}

	sess.Close()
	close(backend.renderBlock)

	if !waitFor(2*time.Second, func() bool { return backend.renderCount() == 1 }) {
		t.Fatal("in-flight render did not complete")
	}
	// the late response may still apply; reading it must stay safe
	if html := sess.PreviewHTML(); html != "" && html != "<html>preview</html>" {
		t.Fatalf("unexpected preview content: %q", html)
	}
}

// A draft for a never-persisted document lands under the "new" key.
func TestDraftKeyForUnsavedDocument(t *testing.T) {
	st := store.NewMemStore()
	opts := testOptions(&fakeBackend{})
	opts.Store = st
	opts.Autosave = 20 * time.Millisecond

	sess := NewSession(domain.Document{Kind: domain.KindCV, Template: domain.TemplateClassic}, opts)
	sess.Open()
	defer sess.Close()

	if !waitFor(2*time.Second, func() bool {
		_, ok := st.Get("cv_draft_new")
		return ok
	}) {
		t.Fatal("draft for unsaved document not mirrored under cv_draft_new")
	}
}
