package usecase

import (
	"context"
	"sync"
	"time"

	"career-studio/internal/adapter/api"
	"career-studio/internal/adapter/wire"
)

type savedPayload struct {
	ID      string
	PDFURL  string
	Content wire.Content
}

type renderedPayload struct {
	ID       string
	Content  wire.Content
	Template string
}

// fakeBackend records calls; SaveCV and RenderCV optionally park on their
// block channels to provoke overlap, signalling entered when they do.
type fakeBackend struct {
	mu            sync.Mutex
	nextID        string
	saves         []savedPayload
	renders       []renderedPayload
	block         chan struct{}
	entered       chan struct{}
	renderBlock   chan struct{}
	renderEntered chan struct{}
}

func (f *fakeBackend) CreateCV(ctx context.Context, kind, template string) (string, error) {
	if f.nextID == "" {
		return "1", nil
	}
	return f.nextID, nil
}

func (f *fakeBackend) GetCV(ctx context.Context, id string) (*api.CVRecord, error) {
	return &api.CVRecord{CVSummary: api.CVSummary{ID: api.ID(id), Template: "classic"}}, nil
}

func (f *fakeBackend) SaveCV(ctx context.Context, id, pdfURL string, content wire.Content) error {
	if f.block != nil {
		if f.entered != nil {
			f.entered <- struct{}{}
		}
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, savedPayload{ID: id, PDFURL: pdfURL, Content: content})
	return nil
}

func (f *fakeBackend) RenderCV(ctx context.Context, id string, content wire.Content, template string) (string, error) {
	if f.renderBlock != nil {
		if f.renderEntered != nil {
			f.renderEntered <- struct{}{}
		}
		<-f.renderBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renders = append(f.renders, renderedPayload{ID: id, Content: content, Template: template})
	return "<html>preview</html>", nil
}

func (f *fakeBackend) GenerateCV(ctx context.Context, id string, content wire.Content, forceRegenerate bool) (string, error) {
	return "https://cdn.example.com/" + id + ".pdf", nil
}

func (f *fakeBackend) DeleteCV(ctx context.Context, id string) error { return nil }

func (f *fakeBackend) renderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.renders)
}

func (f *fakeBackend) lastRender() (renderedPayload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.renders) == 0 {
		return renderedPayload{}, false
	}
	return f.renders[len(f.renders)-1], true
}

func (f *fakeBackend) savedPayloads() []savedPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]savedPayload, len(f.saves))
	copy(out, f.saves)
	return out
}

// silentNotifier keeps test logs quiet.
type silentNotifier struct{}

func (silentNotifier) Notify(level, message string) {}

func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
