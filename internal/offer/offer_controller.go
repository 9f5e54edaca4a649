package offer

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/cache"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const offerCacheTTL = 5 * time.Minute

type OfferController struct {
	repo  OfferRepository
	cache *cache.Cache
}

func NewOfferController(repo OfferRepository, c *cache.Cache) *OfferController {
	return &OfferController{repo: repo, cache: c}
}

// @Summary      List offers
// @Description  Paginated offer feed. Defaults to active offers; pass status=all for everything.
// @Tags         Offers
// @Produce      json
// @Param        sport     query string false "Sport key"
// @Param        type      query string false "Offer type"
// @Param        location  query string false "Location substring"
// @Param        city      query string false "City substring (case-insensitive)"
// @Param        level     query string false "Level"
// @Param        position  query string false "Position substring"
// @Param        status    query string false "Status filter, or 'all'"
// @Param        is_urgent query bool   false "Urgent offers only"
// @Param        club_id   query int    false "Offers from one club"
// @Param        page      query int    false "Page"
// @Param        limit     query int    false "Page size"
// @Success      200 {object} map[string]interface{} "offers, pagination"
// @Router       /offers [get]
func (oc *OfferController) ListOffers(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 20)

	status := c.DefaultQuery("status", string(StatusActive))
	if status == "all" {
		status = ""
	}

	filters := ListFilters{
		Sport:    c.Query("sport"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
		City:     c.Query("city"),
		Level:    c.Query("level"),
		Position: c.Query("position"),
		Status:   status,
	}
	if raw := c.Query("is_urgent"); raw != "" {
		urgent := raw == "true" || raw == "1"
		filters.IsUrgent = &urgent
	}
	if raw := c.Query("club_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			responses.BadRequest(c, "invalid club_id")
			return
		}
		filters.ClubID = uint(id)
	}

	offers, total, err := oc.repo.List(filters, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch offers")
		return
	}

	results := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		results = append(results, FilterOfferRecord(&offers[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"offers":     results,
		"pagination": responses.NewPagination(page, limit, total),
	})
}

// @Summary      Get offer
// @Description  Offer detail including club contact. Served from cache when warm.
// @Tags         Offers
// @Produce      json
// @Param        id path int true "Offer ID"
// @Success      200 {object} map[string]interface{} "offer"
// @Failure      404 {object} responses.ErrorResponse
// @Router       /offers/{id} [get]
func (oc *OfferController) GetOffer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	var detail OfferDetailResponse
	err = oc.cache.GetOrLoadJSON(c.Request.Context(), cache.OfferKey(id), offerCacheTTL, &detail, func() (interface{}, error) {
		o, err := oc.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		return filterOfferDetail(o), nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Offer")
			return
		}
		responses.InternalServerError(c, "Failed to fetch offer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"offer": detail})
}

// @Summary      List a club's offers
// @Description  All offers published by one club, regardless of status.
// @Tags         Offers
// @Produce      json
// @Param        id     path  int    true  "Club user ID"
// @Param        status query string false "Status filter"
// @Param        page   query int    false "Page"
// @Param        limit  query int    false "Page size"
// @Success      200 {object} map[string]interface{} "offers, pagination"
// @Router       /users/{id}/offers [get]
func (oc *OfferController) ListClubOffers(c *gin.Context) {
	clubID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	page, limit := utils.ParsePagination(c, 20)

	filters := ListFilters{ClubID: clubID, Status: c.Query("status")}
	offers, total, err := oc.repo.List(filters, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch offers")
		return
	}

	results := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		results = append(results, FilterOfferRecord(&offers[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"offers":     results,
		"pagination": responses.NewPagination(page, limit, total),
	})
}

// @Summary      Create offer
// @Description  Clubs only. New offers start active with zero applications.
// @Tags         Offers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        offer body CreateOfferRequest true "Offer details"
// @Success      201 {object} map[string]interface{} "offer"
// @Failure      403 {object} responses.ErrorResponse
// @Router       /offers [post]
func (oc *OfferController) CreateOffer(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if !req.Sport.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown sport %q", req.Sport))
		return
	}
	if !req.Type.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown offer type %q", req.Type))
		return
	}
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		responses.BadRequest(c, "min_age cannot exceed max_age")
		return
	}

	o := &Offer{
		ClubID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Sport:           req.Sport,
		Position:        req.Position,
		Level:           req.Level,
		Location:        req.Location,
		City:            req.City,
		Type:            req.Type,
		Status:          StatusActive,
		Salary:          req.Salary,
		MinAge:          req.MinAge,
		MaxAge:          req.MaxAge,
		IsUrgent:        req.IsUrgent,
		MaxApplications: req.MaxApplications,
		ExpiresAt:       req.ExpiresAt,
	}

	if err := oc.repo.Create(o); err != nil {
		responses.InternalServerError(c, "Could not create offer")
		return
	}

	created, err := oc.repo.GetByID(o.ID)
	if err != nil {
		responses.InternalServerError(c, "Could not load created offer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Offer created successfully",
		"offer":   filterOfferDetail(created),
	})
}

// @Summary      Update offer
// @Description  Owner only. Status changes must follow the offer lifecycle.
// @Tags         Offers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path int               true "Offer ID"
// @Param        offer body UpdateOfferRequest true "Fields to update"
// @Success      200 {object} map[string]interface{} "offer"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      403 {object} responses.ErrorResponse
// @Router       /offers/{id} [put]
func (oc *OfferController) UpdateOffer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	o, err := oc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Offer")
			return
		}
		responses.InternalServerError(c, "Failed to fetch offer")
		return
	}
	if o.ClubID != userID {
		responses.Forbidden(c, "Not authorized to update this offer")
		return
	}

	if req.Status != nil && *req.Status != o.Status {
		if !req.Status.Valid() {
			responses.BadRequest(c, fmt.Sprintf("unknown status %q", *req.Status))
			return
		}
		if !CanTransition(o.Status, *req.Status) {
			responses.InvalidState(c, fmt.Sprintf("cannot move offer from %s to %s", o.Status, *req.Status))
			return
		}
		o.Status = *req.Status
	}

	if req.Title != nil {
		o.Title = *req.Title
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.Sport != nil {
		if !req.Sport.Valid() {
			responses.BadRequest(c, fmt.Sprintf("unknown sport %q", *req.Sport))
			return
		}
		o.Sport = *req.Sport
	}
	if req.Position != nil {
		o.Position = *req.Position
	}
	if req.Level != nil {
		o.Level = *req.Level
	}
	if req.Location != nil {
		o.Location = *req.Location
	}
	if req.City != nil {
		o.City = *req.City
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			responses.BadRequest(c, fmt.Sprintf("unknown offer type %q", *req.Type))
			return
		}
		o.Type = *req.Type
	}
	if req.Salary != nil {
		o.Salary = *req.Salary
	}
	if req.MinAge != nil {
		o.MinAge = req.MinAge
	}
	if req.MaxAge != nil {
		o.MaxAge = req.MaxAge
	}
	if o.MinAge != nil && o.MaxAge != nil && *o.MinAge > *o.MaxAge {
		responses.BadRequest(c, "min_age cannot exceed max_age")
		return
	}
	if req.IsUrgent != nil {
		o.IsUrgent = *req.IsUrgent
	}
	if req.MaxApplications != nil {
		o.MaxApplications = req.MaxApplications
	}
	if req.ExpiresAt != nil {
		o.ExpiresAt = req.ExpiresAt
	}

	if err := oc.repo.Update(o); err != nil {
		responses.InternalServerError(c, "Could not update offer")
		return
	}
	oc.cache.Invalidate(c.Request.Context(), cache.OfferKey(id))

	c.JSON(http.StatusOK, gin.H{
		"message": "Offer updated successfully",
		"offer":   filterOfferDetail(o),
	})
}

// @Summary      Delete offer
// @Description  Owner only. Applications to the offer are removed with it.
// @Tags         Offers
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Offer ID"
// @Success      200 {object} map[string]interface{} "message"
// @Failure      403 {object} responses.ErrorResponse
// @Router       /offers/{id} [delete]
func (oc *OfferController) DeleteOffer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	o, err := oc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Offer")
			return
		}
		responses.InternalServerError(c, "Failed to fetch offer")
		return
	}
	if o.ClubID != userID {
		responses.Forbidden(c, "Not authorized to delete this offer")
		return
	}

	if err := oc.repo.Delete(id); err != nil {
		responses.InternalServerError(c, "Could not delete offer")
		return
	}
	oc.cache.Invalidate(c.Request.Context(), cache.OfferKey(id))

	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
}
