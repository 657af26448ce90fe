package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/portfolio"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

type FreelancerDashboardHandler struct {
	DB        *gorm.DB
	Portfolio *portfolio.Service
}

func NewFreelancerDashboardHandler(db *gorm.DB, pf *portfolio.Service) *FreelancerDashboardHandler {
	return &FreelancerDashboardHandler{DB: db, Portfolio: pf}
}

// GetStats returns the summary numbers for the dashboard overview.
func (h *FreelancerDashboardHandler) GetStats(c *fiber.Ctx) error {
	email, err := getEmail(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fid := utils.DeriveIDFromEmail(email)
	projectCount := len(h.Portfolio.Items(c.Context(), fid))

	var conversations int64
	if err := h.DB.Model(&models.Conversation{}).
		Where("freelancer_email = ?", email).
		Count(&conversations).Error; err != nil {
		log.Printf("[DashboardStats] Error counting conversations for %s: %v", email, err)
	}

	var unreadChats int64
	if err := h.DB.Model(&models.Message{}).
		Joins("JOIN conversations ON messages.conversation_id = conversations.id").
		Where("conversations.freelancer_email = ? AND messages.sender_email != ? AND messages.status != ?",
			email, email, models.MessageRead).
		Count(&unreadChats).Error; err != nil {
		log.Printf("[DashboardStats] Error counting unread chats for %s: %v", email, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"portfolio_projects": projectCount,
			"conversations":      conversations,
			"unread_chats":       unreadChats,
		},
	})
}
