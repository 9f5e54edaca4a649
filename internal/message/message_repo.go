package message

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageRepository defines the interface for conversation and message data
// operations.
type MessageRepository interface {
	GetOrCreateConversation(userID, otherID uint) (*Conversation, error)
	GetConversationByID(id uint) (*Conversation, error)
	ListConversations(userID uint) ([]Conversation, error)
	UnreadCount(conversationID, readerID uint) (int64, error)
	CreateMessage(m *Message) error
	ListMessages(conversationID uint, page, limit int) ([]Message, int64, error)
	MarkRead(conversationID, readerID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// GetOrCreateConversation is idempotent: the canonical pair plus its unique
// index guarantee that concurrent first messages land in the same thread.
func (r *messageRepository) GetOrCreateConversation(userID, otherID uint) (*Conversation, error) {
	a, b := NormalizePair(userID, otherID)

	conv := Conversation{UserAID: a, UserBID: b}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&conv).Error; err != nil {
		return nil, err
	}

	var out Conversation
	err := r.db.Preload("UserA").Preload("UserB").
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *messageRepository) GetConversationByID(id uint) (*Conversation, error) {
	var conv Conversation
	if err := r.db.Preload("UserA").Preload("UserB").First(&conv, id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *messageRepository) ListConversations(userID uint) ([]Conversation, error) {
	var convs []Conversation
	err := r.db.Preload("UserA").Preload("UserB").
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("last_message_at desc NULLS LAST").
		Find(&convs).Error
	return convs, err
}

func (r *messageRepository) UnreadCount(conversationID, readerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = false", conversationID, readerID).
		Count(&count).Error
	return count, err
}

// CreateMessage inserts the message and refreshes the conversation's preview
// in one transaction.
func (r *messageRepository) CreateMessage(m *Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&Conversation{}).Where("id = ?", m.ConversationID).
			Updates(map[string]interface{}{
				"last_message_text": m.Content,
				"last_message_at":   now,
			}).Error
	})
}

// ListMessages pages newest-first; callers reverse the page for display.
func (r *messageRepository) ListMessages(conversationID uint, page, limit int) ([]Message, int64, error) {
	var msgs []Message
	var total int64

	query := r.db.Model(&Message{}).Where("conversation_id = ?", conversationID)
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&msgs).Error; err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

// MarkRead flips every unread message sent by the other participant.
func (r *messageRepository) MarkRead(conversationID, readerID uint) (int64, error) {
	res := r.db.Model(&Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = false", conversationID, readerID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
