package transaction

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/layarlegenda59/kasirku/internal/domain"
	checkoutuc "github.com/layarlegenda59/kasirku/internal/usecase/checkout"
)

// Store reads the transaction history for GET /transactions.
type Store interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type Handler struct {
	uc    *checkoutuc.Usecase
	store Store
}

func New(uc *checkoutuc.Usecase, store Store) *Handler {
	return &Handler{uc: uc, store: store}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.store.ListTransactions(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req checkoutuc.ProcessInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	if _, err := h.uc.Process(c.Context(), req); err != nil {
		if errors.Is(err, checkoutuc.ErrEmptyCart) ||
			errors.Is(err, checkoutuc.ErrInvalidItem) ||
			errors.Is(err, checkoutuc.ErrInvalidPayment) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
