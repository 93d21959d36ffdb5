package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ahstack/shopchat/internal/catalog"
	"github.com/ahstack/shopchat/internal/service"
)

// ProductHandler exposes the raw catalog pass-through.
type ProductHandler struct {
	catalog service.CatalogClient
}

// NewProductHandler returns a handler instance.
func NewProductHandler(cat service.CatalogClient) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// Register mounts GET /products on the given router group.
func (h *ProductHandler) Register(r fiber.Router) {
	r.Get("/products", h.products)
}

// products handles GET /api/products/. Unlike the chat endpoint, upstream
// failures here are the caller's problem and map to 502.
func (h *ProductHandler) products(c *fiber.Ctx) error {
	items, err := h.catalog.FetchAll(c.UserContext())
	if err != nil {
		code := "upstream_unavailable"
		if errors.Is(err, catalog.ErrMalformed) {
			code = "upstream_malformed"
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"code":  code,
			"error": "product catalog is unavailable",
		})
	}
	return c.JSON(items)
}
