package message

import (
	"errors"
	"net/http"

	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageController struct {
	repo     MessageRepository
	userRepo user.UserRepository
}

func NewMessageController(repo MessageRepository, userRepo user.UserRepository) *MessageController {
	return &MessageController{repo: repo, userRepo: userRepo}
}

// @Summary      List conversations
// @Description  The authenticated user's threads, most recent activity first, with unread counts.
// @Tags         Messages
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{} "conversations"
// @Router       /messages/conversations [get]
func (mc *MessageController) ListConversations(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	convs, err := mc.repo.ListConversations(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch conversations")
		return
	}

	results := make([]ConversationResponse, 0, len(convs))
	for i := range convs {
		conv := &convs[i]
		unread, err := mc.repo.UnreadCount(conv.ID, userID)
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch conversations")
			return
		}
		results = append(results, ConversationResponse{
			ID:              conv.ID,
			OtherUser:       filterParticipant(conv.Other(userID)),
			LastMessageText: conv.LastMessageText,
			LastMessageAt:   conv.LastMessageAt,
			UnreadCount:     unread,
			CreatedAt:       conv.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"conversations": results})
}

// @Summary      Open a conversation
// @Description  Returns the thread with the given user, creating it on first contact. Calling it again returns the same thread.
// @Tags         Messages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateConversationRequest true "The other participant"
// @Success      200 {object} map[string]interface{} "conversation"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /messages/conversations [post]
func (mc *MessageController) CreateConversation(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if req.RecipientID == userID {
		responses.BadRequest(c, "Cannot open a conversation with yourself")
		return
	}

	if _, err := mc.userRepo.GetUserByID(req.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Recipient")
			return
		}
		responses.InternalServerError(c, "Failed to fetch recipient")
		return
	}

	conv, err := mc.repo.GetOrCreateConversation(userID, req.RecipientID)
	if err != nil {
		responses.InternalServerError(c, "Could not open conversation")
		return
	}

	unread, err := mc.repo.UnreadCount(conv.ID, userID)
	if err != nil {
		responses.InternalServerError(c, "Could not open conversation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": ConversationResponse{
		ID:              conv.ID,
		OtherUser:       filterParticipant(conv.Other(userID)),
		LastMessageText: conv.LastMessageText,
		LastMessageAt:   conv.LastMessageAt,
		UnreadCount:     unread,
		CreatedAt:       conv.CreatedAt,
	}})
}

// @Summary      Send a message
// @Description  Creates the conversation on first contact, then appends to it.
// @Tags         Messages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body SendMessageRequest true "Recipient and content"
// @Success      201 {object} map[string]interface{} "message"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /messages [post]
func (mc *MessageController) SendMessage(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if req.RecipientID == userID {
		responses.BadRequest(c, "Cannot message yourself")
		return
	}

	if _, err := mc.userRepo.GetUserByID(req.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Recipient")
			return
		}
		responses.InternalServerError(c, "Failed to fetch recipient")
		return
	}

	conv, err := mc.repo.GetOrCreateConversation(userID, req.RecipientID)
	if err != nil {
		responses.InternalServerError(c, "Could not open conversation")
		return
	}

	m := &Message{
		ConversationID: conv.ID,
		SenderID:       userID,
		Content:        req.Content,
	}
	if err := mc.repo.CreateMessage(m); err != nil {
		responses.InternalServerError(c, "Could not send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      filterMessageRecord(m),
		"conversation": gin.H{"id": conv.ID},
	})
}

// @Summary      List messages
// @Description  One page of a conversation, oldest first within the page. Participants only. Fetching marks the other side's messages read.
// @Tags         Messages
// @Security     BearerAuth
// @Produce      json
// @Param        id    path  int true  "Conversation ID"
// @Param        page  query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} map[string]interface{} "messages, pagination"
// @Failure      403 {object} responses.ErrorResponse
// @Router       /messages/conversations/{id} [get]
func (mc *MessageController) ListMessages(c *gin.Context) {
	convID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	conv, err := mc.repo.GetConversationByID(convID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Conversation")
			return
		}
		responses.InternalServerError(c, "Failed to fetch conversation")
		return
	}
	if !conv.HasParticipant(userID) {
		responses.Forbidden(c, "Not a participant of this conversation")
		return
	}

	page, limit := utils.ParsePagination(c, 50)
	msgs, total, err := mc.repo.ListMessages(convID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch messages")
		return
	}

	// Opening a thread reads it.
	if _, err := mc.repo.MarkRead(convID, userID); err != nil {
		responses.InternalServerError(c, "Failed to fetch messages")
		return
	}

	// Repo pages newest-first; flip so each page reads chronologically.
	results := make([]MessageResponse, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		results = append(results, filterMessageRecord(&msgs[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   results,
		"pagination": responses.NewPagination(page, limit, total),
	})
}

// @Summary      Mark conversation read
// @Description  Marks every message from the other participant as read.
// @Tags         Messages
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Success      200 {object} map[string]interface{} "updated"
// @Failure      403 {object} responses.ErrorResponse
// @Router       /messages/conversations/{id}/read [put]
func (mc *MessageController) MarkRead(c *gin.Context) {
	convID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	conv, err := mc.repo.GetConversationByID(convID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Conversation")
			return
		}
		responses.InternalServerError(c, "Failed to fetch conversation")
		return
	}
	if !conv.HasParticipant(userID) {
		responses.Forbidden(c, "Not a participant of this conversation")
		return
	}

	updated, err := mc.repo.MarkRead(convID, userID)
	if err != nil {
		responses.InternalServerError(c, "Could not mark conversation read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
