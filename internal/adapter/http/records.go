package http

import (
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"

	"career-studio/internal/adapter/wire"
)

// Standalone record management: education and certificate rows live outside
// any document and are edited directly against the backend.

func (h *Handler) ListEducation(c *fiber.Ctx) error {
	out, err := h.client.ListEducation(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) CreateEducation(c *fiber.Ctx) error {
	var e wire.Education
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.client.CreateEducation(c.Context(), e)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var e wire.Education
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.client.UpdateEducation(c.Context(), c.Params("id"), e)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) DeleteEducation(c *fiber.Ctx) error {
	if err := h.client.DeleteEducation(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (h *Handler) ListCertificates(c *fiber.Ctx) error {
	out, err := h.client.ListCertificates(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) CreateCertificate(c *fiber.Ctx) error {
	var ct wire.Certificate
	if err := c.BodyParser(&ct); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.client.CreateCertificate(c.Context(), ct)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) UpdateCertificate(c *fiber.Ctx) error {
	var ct wire.Certificate
	if err := c.BodyParser(&ct); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.client.UpdateCertificate(c.Context(), c.Params("id"), ct)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) DeleteCertificate(c *fiber.Ctx) error {
	if err := h.client.DeleteCertificate(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.client.UpdateMe(c.Context(), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) CreatePortfolio(c *fiber.Ctx) error {
	var req struct {
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id, err := h.client.CreatePortfolio(c.Context(), req.Template)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"portfolio_id": id})
}

// UpdatePortfolio forwards the multipart form: a content field holding the
// wire JSON plus an optional avatar file.
func (h *Handler) UpdatePortfolio(c *fiber.Ctx) error {
	var content wire.Content
	if err := json.Unmarshal([]byte(c.FormValue("content")), &content); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid content field"})
	}

	var (
		avatarName string
		avatar     io.Reader
	)
	if fh, err := c.FormFile("avatar"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable avatar"})
		}
		defer f.Close()
		avatarName = fh.Filename
		avatar = f
	}

	if err := h.client.UpdatePortfolio(c.Context(), c.Params("id"), content, avatarName, avatar); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

func (h *Handler) PublishPortfolio(c *fiber.Ctx) error {
	url, err := h.client.PublishPortfolio(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"published_url": url})
}

// PublicPortfolio proxies a published page; no session or token needed.
func (h *Handler) PublicPortfolio(c *fiber.Ctx) error {
	content, err := h.client.PublicPortfolio(c.Context(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"content": content})
}
