package message

import (
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/user"
	"gorm.io/gorm"
)

// Conversation holds one thread per user pair. The pair is stored in
// canonical order (UserAID < UserBID) under a composite unique index, so the
// same two users can never end up with two threads.
type Conversation struct {
	gorm.Model
	UserAID uint      `gorm:"uniqueIndex:idx_conversation_pair;not null" json:"user_a_id"`
	UserA   user.User `gorm:"foreignKey:UserAID" json:"-"`
	UserBID uint      `gorm:"uniqueIndex:idx_conversation_pair;not null" json:"user_b_id"`
	UserB   user.User `gorm:"foreignKey:UserBID" json:"-"`

	// Denormalized preview for the conversation list.
	LastMessageText string     `json:"last_message_text,omitempty"`
	LastMessageAt   *time.Time `json:"last_message_at,omitempty"`
}

// NormalizePair orders two user IDs canonically.
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// Other returns the participant that is not userID.
func (c *Conversation) Other(userID uint) *user.User {
	if c.UserAID == userID {
		return &c.UserB
	}
	return &c.UserA
}

// HasParticipant reports whether userID belongs to the conversation.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Message is one entry in a conversation. IsRead flips when the recipient
// opens the thread; senders never mark their own messages.
type Message struct {
	gorm.Model
	ConversationID uint         `gorm:"index;not null" json:"conversation_id"`
	Conversation   Conversation `gorm:"foreignKey:ConversationID" json:"-"`
	SenderID       uint         `gorm:"index;not null" json:"sender_id"`
	Content        string       `gorm:"type:text;not null" json:"content"`
	IsRead         bool         `gorm:"not null;default:false" json:"is_read"`
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

type CreateConversationRequest struct {
	RecipientID uint `json:"recipient_id" binding:"required"`
}

// ParticipantSummary is the other user shown in the conversation list.
type ParticipantSummary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Role            user.Role `json:"role"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	ClubName        string    `json:"club_name,omitempty"`
	ClubLogoURL     string    `json:"club_logo_url,omitempty"`
}

// ConversationResponse is one row of the conversation list.
type ConversationResponse struct {
	ID              uint               `json:"id"`
	OtherUser       ParticipantSummary `json:"other_user"`
	LastMessageText string             `json:"last_message_text,omitempty"`
	LastMessageAt   *time.Time         `json:"last_message_at,omitempty"`
	UnreadCount     int64              `json:"unread_count"`
	CreatedAt       time.Time          `json:"created_at"`
}

// MessageResponse is the wire shape of one message.
type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func filterParticipant(u *user.User) ParticipantSummary {
	return ParticipantSummary{
		ID:              u.ID,
		Name:            u.Name,
		Role:            u.Role,
		ProfileImageURL: u.ProfileImageURL,
		ClubName:        u.ClubName,
		ClubLogoURL:     u.ClubLogoURL,
	}
}

func filterMessageRecord(m *Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}
