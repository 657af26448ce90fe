package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saahla-dz/saahla_be/internal/services/assistant"
)

type AssistantHandler struct {
	Assistant *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{Assistant: svc}
}

type AssistantChatReq struct {
	Message string `json:"message"`
}

// Chat proxies one prompt to the assistant. Any upstream failure is
// replaced by the fixed apology text; the widget always gets HTTP 200
// with a reply.
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req AssistantChatReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "الرسالة فارغة",
		})
	}

	reply, err := h.Assistant.Ask(c.Context(), message)
	if err != nil {
		log.Println("Assistant error:", err)
		reply = assistant.Apology
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"reply": reply,
		},
	})
}

// Greeting returns the canned opener for a fresh chat widget.
func (h *AssistantHandler) Greeting(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"reply": assistant.Greeting,
		},
	})
}
