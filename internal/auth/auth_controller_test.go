package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/enzogallo/sportsmatch-api/pkg/token"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	byEmail map[string]*user.User
	nextID  uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: map[string]*user.User{}, nextID: 1}
}

func (f *fakeAuthRepo) CreateUser(u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeAuthRepo) GetUserByEmail(email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeAuthRepo) GetUserByID(id uint) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryDays = 7
	return cfg
}

func newAuthTestRouter(repo AuthRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(repo, testConfig())

	r := gin.New()
	r.POST("/auth/register", controller.Register)
	r.POST("/auth/login", controller.Login)
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, uint(1))
		c.Set(middleware.AuthUserRoleKey, "player")
		controller.Me(c)
	})
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsUserAndToken(t *testing.T) {
	repo := newFakeAuthRepo()
	r := newAuthTestRouter(repo)

	w := postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret1","name":"Ana","role":"player"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, user.RolePlayer, resp.User.Role)

	claims, err := token.ValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// Password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), repo.byEmail["ana@example.com"].Password)
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthTestRouter(newFakeAuthRepo())

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"email":"a@b.c","password":"12345","name":"A","role":"player"}`},
		{"missing email", `{"password":"123456","name":"A","role":"player"}`},
		{"bad email", `{"email":"nope","password":"123456","name":"A","role":"player"}`},
		{"missing name", `{"email":"a@b.c","password":"123456","role":"player"}`},
		{"unknown role", `{"email":"a@b.c","password":"123456","name":"A","role":"admin"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation_error")
		})
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r := newAuthTestRouter(newFakeAuthRepo())

	first := postJSON(r, "/auth/register", `{"email":"dup@example.com","password":"secret1","name":"A","role":"player"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(r, "/auth/register", `{"email":"dup@example.com","password":"other66","name":"B","role":"club"}`)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "conflict")
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	repo := newFakeAuthRepo()
	hashed, err := utils.HashPassword("correct-pass")
	require.NoError(t, err)
	require.NoError(t, repo.CreateUser(&user.User{Email: "bob@example.com", Password: hashed, Name: "Bob", Role: user.RolePlayer}))

	r := newAuthTestRouter(repo)

	unknown := postJSON(r, "/auth/login", `{"email":"ghost@example.com","password":"whatever"}`)
	wrong := postJSON(r, "/auth/login", `{"email":"bob@example.com","password":"wrong-pass"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	// Same body either way: no account probing.
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeAuthRepo()
	hashed, _ := utils.HashPassword("correct-pass")
	require.NoError(t, repo.CreateUser(&user.User{Email: "bob@example.com", Password: hashed, Name: "Bob", Role: user.RoleClub}))

	r := newAuthTestRouter(repo)
	w := postJSON(r, "/auth/login", `{"email":"bob@example.com","password":"correct-pass"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.RoleClub, resp.User.Role)
}

func TestMeReturnsProfile(t *testing.T) {
	repo := newFakeAuthRepo()
	require.NoError(t, repo.CreateUser(&user.User{Email: "me@example.com", Password: "x", Name: "Me", Role: user.RolePlayer}))

	r := newAuthTestRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "me@example.com")
}
