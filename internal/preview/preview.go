// Package preview renders a document two ways: locally with html/template
// for instant feedback, and remotely through the backend's typesetting
// pipeline. The remote path is the system of record for exported output;
// the local path may diverge visually, which is accepted.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"career-studio/internal/adapter/wire"
	"career-studio/internal/domain"
	"career-studio/internal/model"
	"career-studio/internal/typeset"
)

// Preview is the single interface callers see; which path serves a given
// view is their choice, not the renderer's.
type Preview interface {
	RenderLocally(ctx context.Context, doc domain.Document) (string, error)
	RenderRemotely(ctx context.Context, doc domain.Document) (string, error)
}

// RemoteRenderer is the backend render call the remote path needs.
type RemoteRenderer interface {
	RenderCV(ctx context.Context, id string, content wire.Content, template string) (string, error)
}

type Renderer struct {
	tplDir string
	remote RemoteRenderer
}

func NewRenderer(tplDir string, remote RemoteRenderer) *Renderer {
	return &Renderer{tplDir: tplDir, remote: remote}
}

var tplFuncs = template.FuncMap{
	"groupSkills": model.GroupSkills,
	"dateRange": func(start, end string) string {
		if start == "" {
			return ""
		}
		if end == "" {
			return start + " – present"
		}
		return start + " – " + end
	},
	"join": strings.Join,
}

// RenderLocally renders the document with the named layout template. Pure
// function of the document: no network, deterministic.
func (r *Renderer) RenderLocally(_ context.Context, doc domain.Document) (string, error) {
	name := string(doc.Template)
	if name == "" {
		name = string(domain.TemplateClassic)
	}
	tplPath := filepath.Join(r.tplDir, name+".html")
	tpl, err := template.New(name + ".html").Funcs(tplFuncs).ParseFiles(tplPath)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", tplPath, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	html := buf.String()

	// Inline the local stylesheet so the preview is self-contained.
	if b, err := os.ReadFile(filepath.Join(r.tplDir, "style.css")); err == nil {
		cssBlock := "<style>\n" + string(b) + "\n</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}

// RenderRemotely sends the sanitized wire payload through the backend's
// typesetting pipeline and returns its HTML.
func (r *Renderer) RenderRemotely(ctx context.Context, doc domain.Document) (string, error) {
	if r.remote == nil {
		return "", fmt.Errorf("no remote renderer configured")
	}
	if !doc.Persisted() {
		return "", fmt.Errorf("document has no backend id")
	}
	payload := wire.FromContent(typeset.SanitizeContent(doc.Content))
	return r.remote.RenderCV(ctx, *doc.ID, payload, string(doc.Template))
}
