package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/registry"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
)

// Handler serves the derived views out of the registry.
type Handler struct {
	store    *store.EntityStore
	registry *registry.Registry
}

// New creates a handler bound to the given store and registry.
func New(st *store.EntityStore, reg *registry.Registry) *Handler {
	return &Handler{store: st, registry: reg}
}

// ListViews returns every registered view with its refresh status.
func (h *Handler) ListViews(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"views": h.registry.Status(),
	})
}

// GetView returns a view's rows, computing them on first access.
func (h *Handler) GetView(c *fiber.Ctx) error {
	result, err := h.registry.Get(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// RefreshView recomputes a single view from a fresh snapshot.
func (h *Handler) RefreshView(c *fiber.Ctx) error {
	result, err := h.registry.Refresh(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// RefreshAll recomputes every view from one shared snapshot, so the
// refreshed results are mutually consistent.
func (h *Handler) RefreshAll(c *fiber.Ctx) error {
	if err := h.registry.RefreshAll(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"refreshed": len(h.registry.Names()),
		"views":     h.registry.Status(),
	})
}
