package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Health reports service liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Summary reports the row counts held per entity and the freshness of
// every registered view.
func (h *Handler) Summary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"entities": h.store.Counts(),
		"views":    h.registry.Status(),
	})
}
