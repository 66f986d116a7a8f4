package http

import (
	"github.com/gofiber/fiber/v2"

	"career-studio/internal/model"
)

// Section names as the routes expose them.
const (
	sectionExperiences  = "experiences"
	sectionEducation    = "education"
	sectionSkills       = "skills"
	sectionProjects     = "projects"
	sectionPublications = "publications"
	sectionCertificates = "certificates"
)

func (h *Handler) SetPersonalInfo(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	var p model.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sess.Edit(func(ct model.Content) model.Content { return ct.WithPersonalInfo(p) })
	return c.JSON(fiber.Map{"status": "ok"})
}

// AppendEntry adds a fresh, not-yet-persisted entry to a section.
func (h *Handler) AppendEntry(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	edit, err := appendEdit(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sess.Edit(edit)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok"})
}

func appendEdit(c *fiber.Ctx) (func(model.Content) model.Content, error) {
	switch c.Params("section") {
	case sectionExperiences:
		var e model.Experience
		if err := c.BodyParser(&e); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.AppendExperience(e) }, nil
	case sectionEducation:
		var e model.Education
		if err := c.BodyParser(&e); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.AppendEducation(e) }, nil
	case sectionSkills:
		var s model.Skill
		if err := c.BodyParser(&s); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.AppendSkill(s) }, nil
	case sectionProjects:
		var p model.Project
		if err := c.BodyParser(&p); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.AppendProject(p) }, nil
	case sectionPublications:
		var p model.Publication
		if err := c.BodyParser(&p); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.AppendPublication(p) }, nil
	case sectionCertificates:
		var ct model.Certificate
		if err := c.BodyParser(&ct); err != nil {
			return nil, errInvalidEntry
		}
		return func(cn model.Content) model.Content { return cn.AppendCertificate(ct) }, nil
	}
	return nil, errUnknownSection
}

// ReplaceEntry swaps one section entry by index.
func (h *Handler) ReplaceEntry(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	i, err := parseIndex(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	edit, err := replaceEdit(c, i)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sess.Edit(edit)
	return c.JSON(fiber.Map{"status": "ok"})
}

func replaceEdit(c *fiber.Ctx, i int) (func(model.Content) model.Content, error) {
	switch c.Params("section") {
	case sectionExperiences:
		var e model.Experience
		if err := c.BodyParser(&e); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.ReplaceExperience(i, e) }, nil
	case sectionEducation:
		var e model.Education
		if err := c.BodyParser(&e); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.ReplaceEducation(i, e) }, nil
	case sectionSkills:
		var s model.Skill
		if err := c.BodyParser(&s); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.ReplaceSkill(i, s) }, nil
	case sectionProjects:
		var p model.Project
		if err := c.BodyParser(&p); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.ReplaceProject(i, p) }, nil
	case sectionPublications:
		var p model.Publication
		if err := c.BodyParser(&p); err != nil {
			return nil, errInvalidEntry
		}
		return func(ct model.Content) model.Content { return ct.ReplacePublication(i, p) }, nil
	case sectionCertificates:
		var ct model.Certificate
		if err := c.BodyParser(&ct); err != nil {
			return nil, errInvalidEntry
		}
		return func(cn model.Content) model.Content { return cn.ReplaceCertificate(i, ct) }, nil
	}
	return nil, errUnknownSection
}

// RemoveEntry drops one section entry by index.
func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	sess, err := h.current()
	if err != nil {
		return fail(c, err)
	}
	i, err := parseIndex(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	var edit func(model.Content) model.Content
	switch c.Params("section") {
	case sectionExperiences:
		edit = func(ct model.Content) model.Content { return ct.RemoveExperience(i) }
	case sectionEducation:
		edit = func(ct model.Content) model.Content { return ct.RemoveEducation(i) }
	case sectionSkills:
		edit = func(ct model.Content) model.Content { return ct.RemoveSkill(i) }
	case sectionProjects:
		edit = func(ct model.Content) model.Content { return ct.RemoveProject(i) }
	case sectionPublications:
		edit = func(ct model.Content) model.Content { return ct.RemovePublication(i) }
	case sectionCertificates:
		edit = func(ct model.Content) model.Content { return ct.RemoveCertificate(i) }
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errUnknownSection.Error()})
	}
	sess.Edit(edit)
	return c.JSON(fiber.Map{"status": "ok"})
}
