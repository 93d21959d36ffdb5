package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahstack/shopchat/internal/service"
)

// HealthHandler reports liveness plus catalog reachability.
type HealthHandler struct {
	catalog service.CatalogClient
}

func NewHealthHandler(cat service.CatalogClient) *HealthHandler {
	return &HealthHandler{catalog: cat}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"catalog": h.checkCatalog(c.UserContext()),
	})
}

func (h *HealthHandler) checkCatalog(ctx context.Context) string {
	if h.catalog == nil {
		return "not_configured"
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := h.catalog.FetchAll(ctx); err != nil {
		return "error"
	}
	return "connected"
}
