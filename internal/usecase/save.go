package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-studio/internal/adapter/wire"
	"career-studio/internal/domain"
	"career-studio/internal/model"
	"career-studio/internal/typeset"
)

// ErrSaveInFlight is returned when an explicit save is requested while a
// previous one has not finished. The caller keeps its state and retries.
var ErrSaveInFlight = errors.New("a save is already in flight")

// ErrNotPersisted is returned for operations needing a backend-assigned id.
var ErrNotPersisted = errors.New("document has not been created on the backend")

// Save sanitizes, adapts and transmits the current content, preserving
// entry ids. On failure the in-memory document is untouched so the user can
// retry.
func (s *Session) Save(ctx context.Context) error {
	return s.save(ctx, false)
}

// SaveNewVersion saves a copy: every entry id is rewritten to null so the
// backend creates fresh rows instead of updating the originals.
func (s *Session) SaveNewVersion(ctx context.Context) error {
	return s.save(ctx, true)
}

func (s *Session) save(ctx context.Context, asNewVersion bool) error {
	if !s.saveMu.TryLock() {
		s.opts.Notifier.Notify(LevelInfo, "save skipped: one already running")
		return ErrSaveInFlight
	}
	defer s.saveMu.Unlock()

	s.mu.Lock()
	doc := s.doc
	rev := s.rev
	pdfURL := s.pdfURL
	s.mu.Unlock()

	if !doc.Persisted() {
		return ErrNotPersisted
	}

	content := doc.Content
	if asNewVersion {
		content = model.StripIDs(content)
	}
	payload := wire.FromContent(typeset.SanitizeContent(content))

	if s.opts.SchemaPath != "" {
		if err := wire.Validate(s.opts.SchemaPath, payload); err != nil {
			s.opts.Notifier.Notify(LevelError, err.Error())
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()

	if err := s.opts.Backend.SaveCV(ctx, *doc.ID, pdfURL, payload); err != nil {
		s.opts.Notifier.Notify(LevelError, "save failed: "+err.Error())
		return fmt.Errorf("save document %s: %w", *doc.ID, err)
	}

	s.applySave(rev)
	return nil
}

// Generate asks the backend for a fresh PDF of the current content.
func (s *Session) Generate(ctx context.Context, forceRegenerate bool) (string, error) {
	s.mu.Lock()
	doc := s.doc
	s.mu.Unlock()

	if !doc.Persisted() {
		return "", ErrNotPersisted
	}

	payload := wire.FromContent(typeset.SanitizeContent(doc.Content))
	ctx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()

	url, err := s.opts.Backend.GenerateCV(ctx, *doc.ID, payload, forceRegenerate)
	if err != nil {
		s.opts.Notifier.Notify(LevelError, "pdf generation failed: "+err.Error())
		return "", fmt.Errorf("generate pdf for %s: %w", *doc.ID, err)
	}

	s.mu.Lock()
	s.pdfURL = url
	s.mu.Unlock()
	return url, nil
}

// applySave records a completed save unless a newer one already landed.
// Saves can finish out of dispatch order; the revision tag decides.
func (s *Session) applySave(rev domain.Revision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rev < s.savedRev {
		return
	}
	s.savedRev = rev
	s.lastSavedAt = time.Now()
}
