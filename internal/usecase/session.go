package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"career-studio/internal/adapter/api"
	"career-studio/internal/adapter/wire"
	"career-studio/internal/domain"
	"career-studio/internal/model"
	"career-studio/internal/store"
	"career-studio/internal/typeset"
)

// Backend is the slice of the backend client the session depends on.
// *api.Client satisfies it; tests substitute fakes.
type Backend interface {
	CreateCV(ctx context.Context, kind, template string) (string, error)
	GetCV(ctx context.Context, id string) (*api.CVRecord, error)
	SaveCV(ctx context.Context, id, pdfURL string, content wire.Content) error
	RenderCV(ctx context.Context, id string, content wire.Content, template string) (string, error)
	GenerateCV(ctx context.Context, id string, content wire.Content, forceRegenerate bool) (string, error)
	DeleteCV(ctx context.Context, id string) error
}

// Options configures a session. Zero values fall back to the documented
// defaults.
type Options struct {
	Backend     Backend
	Store       store.Store
	Notifier    Notifier
	SchemaPath  string // wire payload schema; empty skips validation
	Autosave    time.Duration
	Debounce    time.Duration
	CallTimeout time.Duration
}

func (o *Options) fill() {
	if o.Notifier == nil {
		o.Notifier = LogNotifier{}
	}
	if o.Store == nil {
		o.Store = store.NewMemStore()
	}
	if o.Autosave <= 0 {
		o.Autosave = 10 * time.Second
	}
	if o.Debounce <= 0 {
		o.Debounce = 500 * time.Millisecond
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = 30 * time.Second
	}
}

// Session owns one open document. It is the single writer of the in-memory
// state: edits are applied in call order under the session lock, while the
// async save and render paths work on snapshots tagged with the revision
// they were taken at.
type Session struct {
	opts Options

	mu          sync.Mutex
	doc         domain.Document
	rev         domain.Revision
	lastSavedAt time.Time
	savedRev    domain.Revision // newest revision a save response applied to
	renderRev   domain.Revision // newest revision a render response applied to
	previewHTML string
	pdfURL      string

	saveMu   sync.Mutex // guards the explicit save path against overlap
	autosave *Autosaver
	debounce *Debouncer
}

// NewSession wraps an already loaded document. Call Open to start the
// autosave and preview machinery, and Close when the editor goes away.
func NewSession(doc domain.Document, opts Options) *Session {
	opts.fill()
	s := &Session{opts: opts, doc: doc}
	s.autosave = NewAutosaver(opts.Autosave, s.mirrorDraft, opts.Notifier)
	s.debounce = NewDebouncer(opts.Debounce, s.refreshPreview)
	return s
}

// CreateDocument asks the backend for a fresh document id and returns a
// session around the empty document.
func CreateDocument(ctx context.Context, kind domain.DocumentKind, template domain.Template, opts Options) (*Session, error) {
	if !template.Valid() {
		return nil, fmt.Errorf("unknown template %q", template)
	}
	id, err := opts.Backend.CreateCV(ctx, string(kind), string(template))
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	now := time.Now()
	doc := domain.Document{
		ID:        &id,
		Kind:      kind,
		Template:  template,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return NewSession(doc, opts), nil
}

// OpenDocument loads a persisted document from the backend.
func OpenDocument(ctx context.Context, id string, opts Options) (*Session, error) {
	rec, err := opts.Backend.GetCV(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", id, err)
	}
	recID := rec.ID.String()
	doc := domain.Document{
		ID:        &recID,
		Kind:      domain.KindCV,
		Title:     rec.Title,
		Template:  domain.Template(rec.Template),
		Published: rec.IsPublic,
		Content:   wire.ToContent(rec.Content),
	}
	s := NewSession(doc, opts)
	s.pdfURL = rec.PDFURL
	return s, nil
}

// Open starts the autosave interval. The preview debouncer needs no start;
// it arms on the first edit.
func (s *Session) Open() { s.autosave.Start() }

// Close stops the autosave interval and cancels any pending preview
// refresh. No timer survives Close. A refresh already executing when Close
// is called still finishes its round trip and may write previewHTML
// afterwards; the revision guard keeps it from clobbering newer state.
func (s *Session) Close() {
	s.autosave.Stop()
	s.debounce.Close()
}

// Edit applies a pure content transformation, bumps the revision and
// schedules a debounced preview refresh.
func (s *Session) Edit(f func(model.Content) model.Content) {
	s.mu.Lock()
	s.doc.Content = f(s.doc.Content)
	s.doc.UpdatedAt = time.Now()
	s.rev++
	s.mu.Unlock()
	s.debounce.Trigger()
}

// SetTitle renames the document without touching content sections.
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	s.doc.Title = title
	s.doc.UpdatedAt = time.Now()
	s.rev++
	s.mu.Unlock()
}

// SetTemplate switches the layout and refreshes the server preview
// immediately, bypassing the debounce window.
func (s *Session) SetTemplate(t domain.Template) error {
	if !t.Valid() {
		return fmt.Errorf("unknown template %q", t)
	}
	s.mu.Lock()
	s.doc.Template = t
	s.doc.UpdatedAt = time.Now()
	s.rev++
	s.mu.Unlock()
	go s.debounce.Fire()
	return nil
}

// Document returns a snapshot of the current document and its revision.
// Section slices are never mutated in place, so sharing them is safe.
func (s *Session) Document() (domain.Document, domain.Revision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.rev
}

// PreviewHTML returns the newest server-rendered preview applied so far.
func (s *Session) PreviewHTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewHTML
}

// LastSavedAt reports when the last successful explicit save was applied.
func (s *Session) LastSavedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSavedAt, !s.lastSavedAt.IsZero()
}

// PDFURL returns the newest generated PDF location, if any.
func (s *Session) PDFURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pdfURL
}

// mirrorDraft writes the editor-shape JSON of the document into the local
// store. Crash recovery only; the backend save path is the real
// persistence.
func (s *Session) mirrorDraft() error {
	s.mu.Lock()
	doc := s.doc
	s.mu.Unlock()
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	key := "cv_draft_new"
	if doc.Persisted() {
		key = "cv_draft_" + *doc.ID
	}
	return s.opts.Store.Set(key, string(b))
}

// RestoreDraft loads a previously mirrored draft from the local store.
func RestoreDraft(st store.Store, id string) (domain.Document, bool) {
	key := "cv_draft_new"
	if id != "" {
		key = "cv_draft_" + id
	}
	raw, ok := st.Get(key)
	if !ok {
		return domain.Document{}, false
	}
	var doc domain.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.Document{}, false
	}
	return doc, true
}

// refreshPreview performs the debounced server render round trip. Responses
// for a revision older than one already applied are dropped; a slow render
// must not overwrite a newer one.
func (s *Session) refreshPreview() {
	s.mu.Lock()
	doc := s.doc
	rev := s.rev
	s.mu.Unlock()

	if s.opts.Backend == nil || !doc.Persisted() {
		return
	}

	payload := wire.FromContent(typeset.SanitizeContent(doc.Content))
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.CallTimeout)
	defer cancel()

	html, err := s.opts.Backend.RenderCV(ctx, *doc.ID, payload, string(doc.Template))
	if err != nil {
		s.opts.Notifier.Notify(LevelError, "preview render failed: "+err.Error())
		return
	}

	s.mu.Lock()
	if rev >= s.renderRev {
		s.renderRev = rev
		s.previewHTML = html
	}
	s.mu.Unlock()
}
