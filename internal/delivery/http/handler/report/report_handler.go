package report

import (
	"github.com/gofiber/fiber/v2"

	reportuc "github.com/layarlegenda59/kasirku/internal/usecase/report"
)

type Handler struct {
	uc *reportuc.Usecase
}

func New(uc *reportuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}
