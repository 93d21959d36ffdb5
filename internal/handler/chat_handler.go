package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahstack/shopchat/internal/models"
	"github.com/ahstack/shopchat/internal/service"
)

// ChatHandler wires HTTP → ChatService.
type ChatHandler struct {
	svc service.ChatService
}

// NewChatHandler returns a struct pointer so you can call Register on it.
func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Register mounts the /chat endpoint on the supplied router group.
func (h *ChatHandler) Register(r fiber.Router) {
	// Strict routing is off, so this also serves /api/chat/.
	r.Post("/chat", h.chat)
}

// chat handles POST /api/chat/  { "message": "..." }.
//
// An invalid request fails before any upstream call. Everything past that
// point answers 200: upstream failures surface as the canned apology with
// "degraded": true so operators can tell the two cases apart.
func (h *ChatHandler) chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "message is required")
	}

	res := h.svc.Answer(c.UserContext(), req.Message)
	return c.JSON(res)
}
