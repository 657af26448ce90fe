package models

import (
	"time"

	"gorm.io/datatypes"
)

type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// Conversation links a client and a freelancer. Participants are keyed
// by email, the identity store's primary key.
type Conversation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClientEmail     string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_conv_pair" json:"client_email"`
	FreelancerEmail string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_conv_pair" json:"freelancer_email"`
	ProjectTitle    string    `gorm:"type:varchar(200)" json:"project_title"`
	LastMessageAt   time.Time `json:"last_message_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Message belongs to one conversation. Attachment carries the optional
// file payload ({name, size}) as raw JSON.
type Message struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ConversationID uint           `gorm:"not null;index" json:"conversation_id"`
	SenderEmail    string         `gorm:"type:varchar(150);not null" json:"sender_email"`
	Body           string         `gorm:"type:text" json:"body"`
	Attachment     datatypes.JSON `gorm:"type:jsonb" json:"attachment,omitempty"`
	Status         MessageStatus  `gorm:"type:varchar(20);not null;default:'sent'" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}
