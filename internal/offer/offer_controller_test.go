package offer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeOfferRepo implements OfferRepository in memory.
type fakeOfferRepo struct {
	offers map[uint]*Offer
	nextID uint
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[uint]*Offer{}, nextID: 1}
}

func (f *fakeOfferRepo) List(filters ListFilters, page, limit int) ([]Offer, int64, error) {
	var out []Offer
	for _, o := range f.offers {
		if filters.Status != "" && string(o.Status) != filters.Status {
			continue
		}
		if filters.Sport != "" && string(o.Sport) != filters.Sport {
			continue
		}
		if filters.ClubID != 0 && o.ClubID != filters.ClubID {
			continue
		}
		if filters.City != "" && !strings.Contains(strings.ToLower(o.City), strings.ToLower(filters.City)) {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOfferRepo) GetByID(id uint) (*Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOfferRepo) Create(o *Offer) error {
	o.ID = f.nextID
	f.nextID++
	o.Status = StatusActive
	f.offers[o.ID] = o
	return nil
}

func (f *fakeOfferRepo) Update(o *Offer) error {
	f.offers[o.ID] = o
	return nil
}

func (f *fakeOfferRepo) Delete(id uint) error {
	delete(f.offers, id)
	return nil
}

func authAs(id uint, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, id)
		c.Set(middleware.AuthUserRoleKey, string(role))
		c.Next()
	}
}

func newOfferTestRouter(repo OfferRepository, userID uint, role user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewOfferController(repo, nil)

	r := gin.New()
	r.GET("/offers", controller.ListOffers)
	r.GET("/offers/:id", controller.GetOffer)
	r.GET("/users/:id/offers", controller.ListClubOffers)

	authed := r.Group("", authAs(userID, role))
	authed.POST("/offers", middleware.RequireRole(string(user.RoleClub)), controller.CreateOffer)
	authed.PUT("/offers/:id", controller.UpdateOffer)
	authed.DELETE("/offers/:id", controller.DeleteOffer)
	return r
}

func seedOffer(repo *fakeOfferRepo, clubID uint, status OfferStatus) *Offer {
	o := &Offer{
		ClubID: clubID,
		Title:  "Seeded offer",
		Sport:  user.SportFootball,
		City:   "Lyon",
		Type:   TypeRecruitment,
	}
	_ = repo.Create(o)
	o.Status = status
	return o
}

func TestListOffersDefaultsToActive(t *testing.T) {
	repo := newFakeOfferRepo()
	seedOffer(repo, 1, StatusActive)
	seedOffer(repo, 1, StatusClosed)

	r := newOfferTestRouter(repo, 0, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Offers []OfferResponse `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Offers, 1)
	assert.Equal(t, StatusActive, body.Offers[0].Status)
}

func TestListOffersStatusAll(t *testing.T) {
	repo := newFakeOfferRepo()
	seedOffer(repo, 1, StatusActive)
	seedOffer(repo, 1, StatusClosed)

	r := newOfferTestRouter(repo, 0, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/offers?status=all", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Offers []OfferResponse `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Offers, 2)
}

func TestListOffersFiltersByCitySubstring(t *testing.T) {
	repo := newFakeOfferRepo()
	paris := seedOffer(repo, 1, StatusActive)
	paris.City = "Paris"
	seedOffer(repo, 1, StatusActive).City = "Marseille"

	r := newOfferTestRouter(repo, 0, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/offers?city=par", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Offers []OfferResponse `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Offers, 1)
	assert.Equal(t, paris.ID, body.Offers[0].ID)
	assert.Equal(t, "Paris", body.Offers[0].City)
}

func TestCreateOfferRequiresCity(t *testing.T) {
	repo := newFakeOfferRepo()
	r := newOfferTestRouter(repo, 5, user.RoleClub)

	payload := bytes.NewBufferString(`{"title":"T","description":"D","sport":"football","location":"Stade de Gerland","type":"recruitment"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offers", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.offers)
}

func TestGetOfferNotFound(t *testing.T) {
	r := newOfferTestRouter(newFakeOfferRepo(), 0, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/offers/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestCreateOfferRequiresClubRole(t *testing.T) {
	repo := newFakeOfferRepo()
	r := newOfferTestRouter(repo, 5, user.RolePlayer)

	payload := bytes.NewBufferString(`{"title":"T","description":"D","sport":"football","location":"Stade de Gerland","city":"Lyon","type":"recruitment"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offers", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.offers)
}

func TestCreateOfferStartsActive(t *testing.T) {
	repo := newFakeOfferRepo()
	r := newOfferTestRouter(repo, 5, user.RoleClub)

	payload := bytes.NewBufferString(`{"title":"Goalkeeper wanted","description":"U19 squad","sport":"football","location":"Stade de Gerland","city":"Lyon","type":"recruitment","max_applications":3}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offers", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.offers, 1)
	for _, o := range repo.offers {
		assert.Equal(t, StatusActive, o.Status)
		assert.Equal(t, uint(5), o.ClubID)
		assert.Equal(t, 0, o.CurrentApplications)
	}
}

func TestCreateOfferRejectsBadAgeRange(t *testing.T) {
	r := newOfferTestRouter(newFakeOfferRepo(), 5, user.RoleClub)

	payload := bytes.NewBufferString(`{"title":"T","description":"D","sport":"football","location":"Stade de Gerland","city":"Lyon","type":"recruitment","min_age":30,"max_age":20}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offers", payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOfferOwnershipEnforced(t *testing.T) {
	repo := newFakeOfferRepo()
	o := seedOffer(repo, 1, StatusActive)

	r := newOfferTestRouter(repo, 2, user.RoleClub)
	payload := bytes.NewBufferString(`{"title":"Hijacked"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/offers/%d", o.ID), payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Seeded offer", repo.offers[o.ID].Title)
}

func TestUpdateOfferRejectsIllegalTransition(t *testing.T) {
	repo := newFakeOfferRepo()
	o := seedOffer(repo, 1, StatusClosed)

	r := newOfferTestRouter(repo, 1, user.RoleClub)
	payload := bytes.NewBufferString(`{"status":"active"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/offers/%d", o.ID), payload)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
	assert.Equal(t, StatusClosed, repo.offers[o.ID].Status)
}

func TestUpdateOfferAllowsPauseAndResume(t *testing.T) {
	repo := newFakeOfferRepo()
	o := seedOffer(repo, 1, StatusActive)
	r := newOfferTestRouter(repo, 1, user.RoleClub)

	for _, status := range []string{"paused", "active"} {
		payload := bytes.NewBufferString(fmt.Sprintf(`{"status":%q}`, status))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/offers/%d", o.ID), payload)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, StatusActive, repo.offers[o.ID].Status)
}

func TestDeleteOfferOwnerOnly(t *testing.T) {
	repo := newFakeOfferRepo()
	o := seedOffer(repo, 1, StatusActive)

	r := newOfferTestRouter(repo, 2, user.RoleClub)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/offers/%d", o.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = newOfferTestRouter(repo, 1, user.RoleClub)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/offers/%d", o.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.offers)
}
