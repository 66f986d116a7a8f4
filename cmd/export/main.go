// Offline export: read a mirrored draft from the local store, render it with
// the local template path and print it to PDF with headless Chrome. Useful
// when the backend is unreachable and a copy of the CV is needed anyway.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"career-studio/internal/config"
	"career-studio/internal/preview"
	"career-studio/internal/store"
	"career-studio/internal/usecase"
	infra "career-studio/pkg/infrastructure"
)

func main() {
	var (
		cvID = flag.String("cv", "", "cv id of the mirrored draft (empty for the unsaved draft)")
		out  = flag.String("out", "cv.pdf", "output PDF path")
	)
	flag.Parse()

	cfg := config.Load()

	drafts, err := store.NewFileStore(cfg.DraftsFile)
	if err != nil {
		log.Fatalf("draft store: %v", err)
	}

	doc, ok := usecase.RestoreDraft(drafts, *cvID)
	if !ok {
		log.Fatalf("no mirrored draft for cv %q in %s", *cvID, cfg.DraftsFile)
	}

	renderer := preview.NewRenderer(cfg.TemplatesDir, nil)
	html, err := renderer.RenderLocally(context.Background(), doc)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	printer := infra.NewChromePrinter(cfg.ChromePath, cfg.TemplatesDir)
	pdf, err := printer.PrintHTML(context.Background(), html)
	if err != nil {
		log.Fatalf("print: %v", err)
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(pdf))
}
