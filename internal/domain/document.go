package domain

import (
	"time"

	"career-studio/internal/model"
)

// Template identifies one of the named layouts the render pipeline knows.
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateCompact Template = "compact"
)

// Valid reports whether t is one of the known template identifiers.
func (t Template) Valid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateCompact:
		return true
	}
	return false
}

// DocumentKind distinguishes the two document flavors sharing the content
// aggregate.
type DocumentKind string

const (
	KindCV        DocumentKind = "cv"
	KindPortfolio DocumentKind = "portfolio"
)

// Document is a CV or portfolio owned by one user. ID is nil until the
// backend has assigned one.
type Document struct {
	ID        *string       `json:"id"`
	Kind      DocumentKind  `json:"kind"`
	Title     string        `json:"title"`
	Template  Template      `json:"template"`
	Published bool          `json:"published"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Content   model.Content `json:"content"`
}

// Persisted reports whether the document has a backend identity.
func (d *Document) Persisted() bool { return d.ID != nil && *d.ID != "" }

// Revision is a per-session monotonic edit counter. Save and render requests
// carry the revision of the snapshot they were built from so that responses
// arriving out of order can be discarded instead of clobbering newer state.
type Revision uint64

// Identity is the signed-in user as seen by the client core: just enough to
// attribute documents and display who is editing.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
