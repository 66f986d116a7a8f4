package http

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"career-studio/internal/adapter/api"
	"career-studio/internal/auth"
	"career-studio/internal/domain"
	"career-studio/internal/preview"
	"career-studio/internal/usecase"
)

// Printer turns preview HTML into PDF bytes for the local download path.
type Printer interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

// Handler drives one editing session at a time; an editor works on one open
// document.
type Handler struct {
	opts    usecase.Options
	client  *api.Client
	auth    *auth.Service
	preview *preview.Renderer
	printer Printer

	mu      sync.Mutex
	session *usecase.Session
}

func NewHandler(opts usecase.Options, client *api.Client, authSvc *auth.Service, pv *preview.Renderer, printer Printer) *Handler {
	return &Handler{opts: opts, client: client, auth: authSvc, preview: pv, printer: printer}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/auth/signup", h.SignUp)
	app.Post("/auth/signin", h.SignIn)
	app.Post("/auth/social", h.SignInSocial)
	app.Post("/auth/signout", h.SignOut)
	app.Get("/auth/me", h.Me)

	app.Get("/cv/list", h.ListCVs)
	app.Delete("/cv/:id", h.DeleteCV)

	app.Patch("/users/me", h.UpdateProfile)
	app.Get("/education", h.ListEducation)
	app.Post("/education", h.CreateEducation)
	app.Patch("/education/:id", h.UpdateEducation)
	app.Delete("/education/:id", h.DeleteEducation)
	app.Get("/certificate", h.ListCertificates)
	app.Post("/certificate", h.CreateCertificate)
	app.Patch("/certificate/:id", h.UpdateCertificate)
	app.Delete("/certificate/:id", h.DeleteCertificate)
	app.Post("/portfolio", h.CreatePortfolio)
	app.Patch("/portfolio/:id", h.UpdatePortfolio)
	app.Put("/portfolio/publish/:id", h.PublishPortfolio)
	app.Get("/portfolio/public/:slug", h.PublicPortfolio)

	app.Post("/session/open", h.OpenSession)
	app.Post("/session/close", h.CloseSession)
	app.Get("/document", h.GetDocument)
	app.Patch("/document/title", h.SetTitle)
	app.Patch("/document/template", h.SetTemplate)

	app.Post("/sections/:section", h.AppendEntry)
	app.Patch("/sections/:section/:index", h.ReplaceEntry)
	app.Delete("/sections/:section/:index", h.RemoveEntry)
	app.Patch("/sections/personal-info", h.SetPersonalInfo)

	app.Post("/save", h.Save)
	app.Post("/save-version", h.SaveNewVersion)
	app.Post("/generate", h.Generate)

	app.Get("/preview/local", h.PreviewLocal)
	app.Get("/preview/remote", h.PreviewRemote)
	app.Get("/export/pdf", h.ExportPDF)
}

func (h *Handler) current() (*usecase.Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return nil, errors.New("no open session")
	}
	return h.session, nil
}

func httpStatusFor(err error) int {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, auth.ErrNotSignedIn):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrSaveInFlight):
		return fiber.StatusConflict
	case errors.As(err, &apiErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(httpStatusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// --- auth ---

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id, err := h.auth.SignUp(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(id)
}

func (h *Handler) SignIn(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id, err := h.auth.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(id)
}

// SignInSocial exchanges a provider credential (e.g. a Google ID token) for
// a session.
func (h *Handler) SignInSocial(c *fiber.Ctx) error {
	var req struct {
		ProviderID string `json:"provider_id"`
		Token      string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id, err := h.auth.SignInWithIDP(c.Context(), req.ProviderID, req.Token)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(id)
}

func (h *Handler) SignOut(c *fiber.Ctx) error {
	h.auth.SignOut()
	return c.JSON(fiber.Map{"status": "signed out"})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	id, ok := h.auth.CurrentUser()
	if !ok {
		return fail(c, auth.ErrNotSignedIn)
	}
	profile, err := h.client.Me(c.Context())
	if err != nil {
		// backend profile is best-effort; the identity alone still answers
		log.Printf("warning: profile fetch failed: %v", err)
		return c.JSON(fiber.Map{"identity": id})
	}
	return c.JSON(fiber.Map{"identity": id, "profile": profile})
}

// --- document list ---

func (h *Handler) ListCVs(c *fiber.Ctx) error {
	list, err := h.client.ListCVs(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *Handler) DeleteCV(c *fiber.Ctx) error {
	if err := h.client.DeleteCV(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// --- session lifecycle ---

type openSessionReq struct {
	CVID     string `json:"cv_id"`
	Type     string `json:"type"`
	Template string `json:"template"`
}

func (h *Handler) OpenSession(c *fiber.Ctx) error {
	var req openSessionReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	var (
		sess *usecase.Session
		err  error
	)
	if req.CVID != "" {
		sess, err = usecase.OpenDocument(c.Context(), req.CVID, h.opts)
	} else {
		kind := domain.DocumentKind(req.Type)
		if kind == "" {
			kind = domain.KindCV
		}
		tpl := domain.Template(req.Template)
		if tpl == "" {
			tpl = domain.TemplateClassic
		}
		sess, err = usecase.CreateDocument(c.Context(), kind, tpl, h.opts)
	}
	if err != nil {
		return fail(c, err)
	}

	h.mu.Lock()
	if h.session != nil {
		h.session.Close()
	}
	h.session = sess
	h.mu.Unlock()
	sess.Open()

	doc, rev := sess.Document()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"document": doc, "revision": rev})
}

func (h *Handler) CloseSession(c *fiber.Ctx) error {
	h.mu.Lock()
	sess := h.session
	h.session = nil
	h.mu.Unlock()
	if sess != nil {
		sess.Close()
	}
	return c.JSON(fiber.Map{"status": "closed"})
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	doc, rev := sess.Document()
	resp := fiber.Map{"document": doc, "revision": rev}
	if at, ok := sess.LastSavedAt(); ok {
		resp["last_saved_at"] = at
	}
	return c.JSON(resp)
}

func (h *Handler) SetTitle(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	var req struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sess.SetTitle(req.Title)
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	var req struct {
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := sess.SetTemplate(domain.Template(req.Template)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// --- save / generate ---

func (h *Handler) Save(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	if err := sess.Save(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func (h *Handler) SaveNewVersion(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	if err := sess.SaveNewVersion(c.Context()); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "saved as new version"})
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	var req struct {
		ForceRegenerate bool `json:"force_regenerate"`
	}
	// body is optional; an absent one means force_regenerate=false
	_ = c.BodyParser(&req)
	url, err := sess.Generate(c.Context(), req.ForceRegenerate)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"pdf_url": url})
}

// --- preview / export ---

func (h *Handler) PreviewLocal(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	doc, _ := sess.Document()
	html, err := h.preview.RenderLocally(c.Context(), doc)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// PreviewRemote serves the newest debounced server render; when none has
// landed yet it does one synchronous round trip.
func (h *Handler) PreviewRemote(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	html := sess.PreviewHTML()
	if html == "" {
		doc, _ := sess.Document()
		html, err = h.preview.RenderRemotely(c.Context(), doc)
		if err != nil {
			return fail(c, err)
		}
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportPDF prints the preview to PDF locally. The remote render is
// preferred since it matches the backend's export pipeline; the local
// render is the offline fallback.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	doc, _ := sess.Document()

	html, err := h.preview.RenderRemotely(c.Context(), doc)
	if err != nil {
		log.Printf("warning: remote render unavailable, printing local preview: %v", err)
		html, err = h.preview.RenderLocally(c.Context(), doc)
		if err != nil {
			return fail(c, err)
		}
	}

	pdf, err := h.printer.PrintHTML(c.Context(), html)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportName(doc)+`"`)
	return c.Send(pdf)
}

func exportName(doc domain.Document) string {
	if doc.Title != "" {
		return doc.Title + ".pdf"
	}
	return "career-studio.pdf"
}

func parseIndex(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("index"))
}
