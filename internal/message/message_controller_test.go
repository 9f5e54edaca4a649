package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(7, 3)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(7), b)

	a, b = NormalizePair(3, 7)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(7), b)
}

type fakeUserRepo struct{ users map[uint]*user.User }

func (f *fakeUserRepo) GetUserByID(id uint) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) UpdateUser(u *user.User) error { return nil }
func (f *fakeUserRepo) Search(filters user.SearchFilters, page, limit int) ([]user.User, int64, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) UpdatePerformanceCV(userID uint, sport user.Sport, summary user.PerformanceSummary) (user.PerformanceCV, error) {
	return nil, nil
}

type fakeMessageRepo struct {
	users  *fakeUserRepo
	convs  map[uint]*Conversation
	msgs   map[uint]*Message
	nextID uint
}

func newFakeMessageRepo(users *fakeUserRepo) *fakeMessageRepo {
	return &fakeMessageRepo{users: users, convs: map[uint]*Conversation{}, msgs: map[uint]*Message{}, nextID: 1}
}

func (f *fakeMessageRepo) GetOrCreateConversation(userID, otherID uint) (*Conversation, error) {
	a, b := NormalizePair(userID, otherID)
	for _, c := range f.convs {
		if c.UserAID == a && c.UserBID == b {
			return c, nil
		}
	}
	c := &Conversation{UserAID: a, UserBID: b}
	if u, ok := f.users.users[a]; ok {
		c.UserA = *u
	}
	if u, ok := f.users.users[b]; ok {
		c.UserB = *u
	}
	c.ID = f.nextID
	f.nextID++
	f.convs[c.ID] = c
	return c, nil
}

func (f *fakeMessageRepo) GetConversationByID(id uint) (*Conversation, error) {
	c, ok := f.convs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeMessageRepo) ListConversations(userID uint) ([]Conversation, error) {
	var out []Conversation
	for _, c := range f.convs {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) UnreadCount(conversationID, readerID uint) (int64, error) {
	var n int64
	for _, m := range f.msgs {
		if m.ConversationID == conversationID && m.SenderID != readerID && !m.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeMessageRepo) CreateMessage(m *Message) error {
	m.ID = f.nextID
	f.nextID++
	m.CreatedAt = time.Now().Add(time.Duration(m.ID) * time.Second)
	f.msgs[m.ID] = m
	conv := f.convs[m.ConversationID]
	conv.LastMessageText = m.Content
	at := m.CreatedAt
	conv.LastMessageAt = &at
	return nil
}

func (f *fakeMessageRepo) ListMessages(conversationID uint, page, limit int) ([]Message, int64, error) {
	var all []Message
	for _, m := range f.msgs {
		if m.ConversationID == conversationID {
			all = append(all, *m)
		}
	}
	// Newest first, like the real repository.
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeMessageRepo) MarkRead(conversationID, readerID uint) (int64, error) {
	var n int64
	for _, m := range f.msgs {
		if m.ConversationID == conversationID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n, nil
}

func newMessageTestRouter(repo MessageRepository, users *fakeUserRepo, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMessageController(repo, users)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
		c.Set(middleware.AuthUserRoleKey, "player")
		c.Next()
	})
	r.POST("/messages", controller.SendMessage)
	r.POST("/messages/conversations", controller.CreateConversation)
	r.GET("/messages/conversations", controller.ListConversations)
	r.GET("/messages/conversations/:id", controller.ListMessages)
	r.PUT("/messages/conversations/:id/read", controller.MarkRead)
	return r
}

func twoUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{
		1: {Model: gorm.Model{ID: 1}, Name: "Ana", Role: user.RolePlayer},
		2: {Model: gorm.Model{ID: 2}, Name: "FC Test", Role: user.RoleClub},
	}}
}

func send(t *testing.T, r *gin.Engine, recipient uint, content string) *httptest.ResponseRecorder {
	t.Helper()
	payload := bytes.NewBufferString(fmt.Sprintf(`{"recipient_id":%d,"content":%q}`, recipient, content))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessageCreatesOneConversationPerPair(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)

	asAna := newMessageTestRouter(repo, users, 1)
	asClub := newMessageTestRouter(repo, users, 2)

	require.Equal(t, http.StatusCreated, send(t, asAna, 2, "hello").Code)
	require.Equal(t, http.StatusCreated, send(t, asClub, 1, "hi back").Code)

	// Both directions land in the same canonical-pair thread.
	assert.Len(t, repo.convs, 1)
	assert.Len(t, repo.msgs, 2)
}

func openConversation(t *testing.T, r *gin.Engine, recipientID uint) *httptest.ResponseRecorder {
	t.Helper()
	payload := bytes.NewBufferString(fmt.Sprintf(`{"recipient_id":%d}`, recipientID))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages/conversations", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateConversationIsIdempotent(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)
	r := newMessageTestRouter(repo, users, 1)

	first := openConversation(t, r, 2)
	require.Equal(t, http.StatusOK, first.Code)
	var body struct {
		Conversation ConversationResponse `json:"conversation"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &body))
	assert.Equal(t, uint(2), body.Conversation.OtherUser.ID)
	firstID := body.Conversation.ID

	second := openConversation(t, r, 2)
	require.Equal(t, http.StatusOK, second.Code)
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, firstID, body.Conversation.ID)

	// Opening from the other side lands on the same thread too.
	other := openConversation(t, newMessageTestRouter(repo, users, 2), 1)
	require.Equal(t, http.StatusOK, other.Code)
	require.NoError(t, json.Unmarshal(other.Body.Bytes(), &body))
	assert.Equal(t, firstID, body.Conversation.ID)
	assert.Equal(t, uint(1), body.Conversation.OtherUser.ID)
}

func TestCreateConversationWithSelfRejected(t *testing.T) {
	users := twoUsers()
	r := newMessageTestRouter(newFakeMessageRepo(users), users, 1)
	w := openConversation(t, r, 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateConversationUnknownRecipient(t *testing.T) {
	users := twoUsers()
	r := newMessageTestRouter(newFakeMessageRepo(users), users, 1)
	w := openConversation(t, r, 99)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessageToSelfRejected(t *testing.T) {
	users := twoUsers()
	r := newMessageTestRouter(newFakeMessageRepo(users), users, 1)
	w := send(t, r, 1, "talking to myself")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessageUnknownRecipient(t *testing.T) {
	users := twoUsers()
	r := newMessageTestRouter(newFakeMessageRepo(users), users, 1)
	w := send(t, r, 99, "anyone there?")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMessagesChronologicalWithinPage(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)
	r := newMessageTestRouter(repo, users, 1)

	for _, content := range []string{"first", "second", "third"} {
		require.Equal(t, http.StatusCreated, send(t, r, 2, content).Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages/conversations/1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Messages []MessageResponse `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Messages, 3)
	assert.Equal(t, "first", body.Messages[0].Content)
	assert.Equal(t, "third", body.Messages[2].Content)
}

func TestListMessagesMarksThreadRead(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)
	asAna := newMessageTestRouter(repo, users, 1)
	asClub := newMessageTestRouter(repo, users, 2)

	require.Equal(t, http.StatusCreated, send(t, asAna, 2, "ping").Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages/conversations/1", nil)
	asClub.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	unread, err := repo.UnreadCount(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestListMessagesParticipantsOnly(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)
	users.users[3] = &user.User{Model: gorm.Model{ID: 3}, Name: "Eve", Role: user.RolePlayer}

	require.Equal(t, http.StatusCreated, send(t, newMessageTestRouter(repo, users, 1), 2, "private").Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages/conversations/1", nil)
	newMessageTestRouter(repo, users, 3).ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMarkReadOnlyFlipsOtherSendersMessages(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)
	asAna := newMessageTestRouter(repo, users, 1)
	asClub := newMessageTestRouter(repo, users, 2)

	require.Equal(t, http.StatusCreated, send(t, asAna, 2, "one").Code)
	require.Equal(t, http.StatusCreated, send(t, asAna, 2, "two").Code)
	require.Equal(t, http.StatusCreated, send(t, asClub, 1, "reply").Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/messages/conversations/1/read", nil)
	asClub.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Updated int64 `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Updated)

	// Ana still has the club's reply unread.
	unread, err := repo.UnreadCount(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestListConversationsShowsPreviewAndUnread(t *testing.T) {
	users := twoUsers()
	repo := newFakeMessageRepo(users)
	asAna := newMessageTestRouter(repo, users, 1)

	require.Equal(t, http.StatusCreated, send(t, asAna, 2, "latest news").Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages/conversations", nil)
	newMessageTestRouter(repo, users, 2).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Conversations []ConversationResponse `json:"conversations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Conversations, 1)
	conv := body.Conversations[0]
	assert.Equal(t, "latest news", conv.LastMessageText)
	assert.Equal(t, int64(1), conv.UnreadCount)
	assert.Equal(t, uint(1), conv.OtherUser.ID)
	assert.Equal(t, "Ana", conv.OtherUser.Name)
}
