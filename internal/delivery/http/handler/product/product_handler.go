package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/layarlegenda59/kasirku/internal/domain"
	cataloguc "github.com/layarlegenda59/kasirku/internal/usecase/catalog"
)

type Handler struct {
	uc *cataloguc.Usecase
}

func New(uc *cataloguc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *Handler) Upsert(c *fiber.Ctx) error {
	var req domain.Product
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	if _, err := h.uc.Upsert(c.Context(), req); err != nil {
		if errors.Is(err, cataloguc.ErrInvalidProduct) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
