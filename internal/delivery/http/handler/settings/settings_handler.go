package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/layarlegenda59/kasirku/internal/domain"
	settingsuc "github.com/layarlegenda59/kasirku/internal/usecase/settings"
)

// Defaults seeded by POST /setup when no settings row exists yet.
var defaultSettings = domain.StoreSettings{
	Name:    "Moikafood",
	LogoURL: "/publics/Logo.jpg",
}

type Handler struct {
	uc *settingsuc.Usecase
}

func New(uc *settingsuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if out == nil {
		// Never written: the frontend expects a JSON null.
		return c.JSON(nil)
	}
	return c.JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req domain.StoreSettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	if err := h.uc.Update(c.Context(), req); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Setup(c *fiber.Ctx) error {
	if err := h.uc.Setup(c.Context(), defaultSettings); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Defaults configured"})
}
