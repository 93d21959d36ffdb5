package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahstack/shopchat/internal/service"
)

// RegisterRoutes mounts every endpoint on app.
func RegisterRoutes(app *fiber.App, chatSvc service.ChatService, cat service.CatalogClient) {
	api := app.Group("/api")
	NewChatHandler(chatSvc).Register(api)
	NewProductHandler(cat).Register(api)

	NewHealthHandler(cat).Register(app)
}
