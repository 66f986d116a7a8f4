package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"career-studio/internal/adapter/api"
	httpadapter "career-studio/internal/adapter/http"
	"career-studio/internal/auth"
	"career-studio/internal/config"
	"career-studio/internal/preview"
	"career-studio/internal/store"
	"career-studio/internal/usecase"
	infra "career-studio/pkg/infrastructure"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	authSvc := auth.NewService(cfg.FirebaseAPIKey, cfg.FirebaseAuthURL, cfg.FirebaseTokenURL, cfg.HTTPTimeout)
	client := api.NewClient(cfg.BackendBaseURL, authSvc, cfg.HTTPTimeout)

	// drafts mirror: Postgres when configured, a local file otherwise
	var drafts store.Store
	if cfg.DraftsDSN != "" {
		pg, err := store.NewPGStore(ctx, cfg.DraftsDSN)
		if err != nil {
			log.Printf("warning: drafts DB not available, falling back to file store: %v", err)
		} else {
			defer pg.Close()
			drafts = pg
		}
	}
	if drafts == nil {
		fs, err := store.NewFileStore(cfg.DraftsFile)
		if err != nil {
			log.Fatalf("draft store: %v", err)
		}
		drafts = fs
	}

	opts := usecase.Options{
		Backend:     client,
		Store:       drafts,
		Notifier:    usecase.LogNotifier{},
		SchemaPath:  cfg.TemplatesDir + "/cv.schema.json",
		Autosave:    cfg.AutosaveInterval,
		Debounce:    cfg.RenderDebounce,
		CallTimeout: cfg.HTTPTimeout,
	}

	renderer := preview.NewRenderer(cfg.TemplatesDir, client)
	printer := infra.NewChromePrinter(cfg.ChromePath, cfg.TemplatesDir)

	app := fiber.New(fiber.Config{DisableStartupMessage: !cfg.Debug})
	h := httpadapter.NewHandler(opts, client, authSvc, renderer, printer)
	h.Register(app)

	log.Printf("career studio listening on :%s (backend %s)", cfg.Port, cfg.BackendBaseURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
