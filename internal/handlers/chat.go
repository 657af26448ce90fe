package handlers

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/realtime"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
)

type ChatHandler struct {
	DB       *gorm.DB
	Hub      *realtime.Hub
	RDB      *redis.Client
	Identity *identity.Service
}

func NewChatHandler(db *gorm.DB, hub *realtime.Hub, rdb *redis.Client, ident *identity.Service) *ChatHandler {
	return &ChatHandler{DB: db, Hub: hub, RDB: rdb, Identity: ident}
}

// CreateOrGetConversation returns the existing conversation with the
// given freelancer, creating it when missing.
func (h *ChatHandler) CreateOrGetConversation(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	var req struct {
		FreelancerEmail string `json:"freelancer_email"`
		ProjectTitle    string `json:"project_title"`
	}
	if err := c.BodyParser(&req); err != nil || req.FreelancerEmail == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "freelancer_email required",
		})
	}

	other, found := h.Identity.Find(c.Context(), req.FreelancerEmail)
	if !found || other.Type != models.TypeFreelancer {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Freelancer not found",
		})
	}

	var conv models.Conversation
	err = h.DB.
		Where("client_email = ? AND freelancer_email = ?", email, other.Email).
		Order("updated_at DESC").
		First(&conv).Error

	created := false
	if err == gorm.ErrRecordNotFound {
		conv = models.Conversation{
			ClientEmail:     email,
			FreelancerEmail: other.Email,
			ProjectTitle:    req.ProjectTitle,
			LastMessageAt:   time.Now(),
		}
		if err := h.DB.Create(&conv).Error; err != nil {
			log.Println("Error creating conversation:", err)
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"message": "Failed to create conversation",
			})
		}
		created = true
	} else if err != nil {
		log.Println("Error fetching conversation:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch conversation",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"created": created,
		"data":    conv,
	})
}

type ConversationResponse struct {
	ID              uint            `json:"id"`
	ClientEmail     string          `json:"client_email"`
	FreelancerEmail string          `json:"freelancer_email"`
	ProjectTitle    string          `json:"project_title"`
	LastMessageAt   time.Time       `json:"last_message_at"`
	UnreadCount     int64           `json:"unread_count"`
	LastMessage     *models.Message `json:"last_message,omitempty"`
}

// GetConversations lists the caller's conversations, most recent
// activity first.
func (h *ChatHandler) GetConversations(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	var convs []models.Conversation
	if err := h.DB.
		Where("client_email = ? OR freelancer_email = ?", email, email).
		Order("last_message_at DESC").
		Find(&convs).Error; err != nil {
		log.Println("Error fetching conversations:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch conversations",
		})
	}

	out := make([]ConversationResponse, 0, len(convs))
	for _, conv := range convs {
		var unread int64
		if err := h.DB.Model(&models.Message{}).
			Where("conversation_id = ? AND sender_email != ? AND status != ?",
				conv.ID, email, models.MessageRead).
			Count(&unread).Error; err != nil {
			log.Println("Error counting unread messages:", err)
		}

		var last models.Message
		var lastPtr *models.Message
		if err := h.DB.
			Where("conversation_id = ?", conv.ID).
			Order("created_at DESC").
			First(&last).Error; err == nil {
			lastPtr = &last
		}

		out = append(out, ConversationResponse{
			ID:              conv.ID,
			ClientEmail:     conv.ClientEmail,
			FreelancerEmail: conv.FreelancerEmail,
			ProjectTitle:    conv.ProjectTitle,
			LastMessageAt:   conv.LastMessageAt,
			UnreadCount:     unread,
			LastMessage:     lastPtr,
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": out})
}

// conversationFor loads the conversation and checks the caller is one
// of its two participants.
func (h *ChatHandler) conversationFor(c *fiber.Ctx, email string) (models.Conversation, error) {
	convID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.Conversation{}, fiber.NewError(400, "Invalid conversation ID")
	}

	var conv models.Conversation
	if err := h.DB.First(&conv, "id = ?", convID).Error; err != nil {
		return models.Conversation{}, fiber.NewError(404, "Conversation not found")
	}

	if conv.ClientEmail != email && conv.FreelancerEmail != email {
		return models.Conversation{}, fiber.NewError(403, "Access denied")
	}
	return conv, nil
}

// GetMessages returns a conversation's messages oldest first, marking
// the other side's messages read on the way.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	conv, err := h.conversationFor(c, email)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	var messages []models.Message
	if err := h.DB.
		Where("conversation_id = ?", conv.ID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		log.Println("Error fetching messages:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch messages",
		})
	}

	if err := h.DB.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_email != ? AND status != ?",
			conv.ID, email, models.MessageRead).
		Update("status", models.MessageRead).Error; err != nil {
		// don't fail the read because of this
		log.Println("Error marking messages as read:", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
	})
}

// MarkAsRead marks the other participant's messages as read.
func (h *ChatHandler) MarkAsRead(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	conv, err := h.conversationFor(c, email)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	if err := h.DB.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_email != ? AND status != ?",
			conv.ID, email, models.MessageRead).
		Update("status", models.MessageRead).Error; err != nil {
		log.Println("Error marking messages as read:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to mark messages as read",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

type SendMessageReq struct {
	Text       string          `json:"text"`
	Attachment json.RawMessage `json:"attachment"` // {name, size}
}

// SendMessage stores a message and fans it out over the hub plus a
// Redis notification for the recipient.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	conv, err := h.conversationFor(c, email)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	var req SendMessageReq
	if err := c.BodyParser(&req); err != nil || (req.Text == "" && len(req.Attachment) == 0) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Text or attachment is required",
		})
	}

	msg := models.Message{
		ConversationID: conv.ID,
		SenderEmail:    email,
		Body:           req.Text,
		Attachment:     datatypes.JSON(req.Attachment),
		Status:         models.MessageSent,
	}

	if err := h.DB.Create(&msg).Error; err != nil {
		log.Println("Error creating message:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send message",
		})
	}

	_ = h.DB.Model(&models.Conversation{}).
		Where("id = ?", conv.ID).
		Update("last_message_at", msg.CreatedAt).Error

	h.Hub.SendToConversation(conv.ClientEmail, conv.FreelancerEmail, fiber.Map{
		"type":    "new_message",
		"message": msg,
	})

	recipient := conv.ClientEmail
	if email == conv.ClientEmail {
		recipient = conv.FreelancerEmail
	}

	notif := map[string]interface{}{
		"type":            "chat_message",
		"conversation_id": conv.ID,
		"sender_email":    email,
		"text":            req.Text,
	}
	payload, _ := json.Marshal(notif)
	h.RDB.Publish(context.Background(), "notifications:"+recipient, payload)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    msg,
	})
}

// WebSocketHandler keeps one socket per connected account and pumps
// hub payloads to it. Authentication is via query param, same as the
// frontend chat widget expects.
func (h *ChatHandler) WebSocketHandler(c *websocket.Conn) {
	email := c.Query("email")
	if email == "" {
		log.Println("WebSocket: email parameter missing")
		c.Close()
		return
	}

	log.Printf("WebSocket: user %s connected\n", email)

	client := &realtime.Client{
		ID:    uuid.New().String(),
		Email: email,
		Conn:  realtime.NewWebSocketConn(c),
		Send:  make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	defer func() {
		h.Hub.UnregisterClient(client)
		log.Printf("WebSocket: user %s disconnected\n", email)
	}()

	go func() {
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Println("WebSocket write error:", err)
				return
			}
		}
	}()

	for {
		var payload map[string]interface{}
		if err := c.ReadJSON(&payload); err != nil {
			log.Printf("WebSocket read error for user %s: %v\n", email, err)
			break
		}

		if msgType, ok := payload["type"].(string); ok && msgType == "pong" {
			continue
		}
	}
}
