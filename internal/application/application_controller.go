package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/enzogallo/sportsmatch-api/internal/cache"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ApplicationController struct {
	repo      ApplicationRepository
	offerRepo offer.OfferRepository
	cache     *cache.Cache
}

func NewApplicationController(repo ApplicationRepository, offerRepo offer.OfferRepository, c *cache.Cache) *ApplicationController {
	return &ApplicationController{repo: repo, offerRepo: offerRepo, cache: c}
}

// @Summary      Apply to an offer
// @Description  Players only. One application per (offer, player); applying bumps the offer's counter atomically.
// @Tags         Applications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body ApplyRequest true "Offer and optional message"
// @Success      201 {object} map[string]interface{} "application"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /applications [post]
func (ac *ApplicationController) Apply(c *gin.Context) {
	playerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	a := &Application{
		OfferID:  req.OfferID,
		PlayerID: playerID,
		Status:   StatusPending,
		Message:  req.Message,
	}

	if err := ac.repo.CreateAndIncrement(a); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			responses.NotFound(c, "Offer")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			responses.Conflict(c, "You have already applied to this offer")
		case errors.Is(err, ErrOfferNotActive):
			responses.InvalidState(c, err.Error())
		case errors.Is(err, ErrOfferFull):
			responses.InvalidState(c, err.Error())
		default:
			responses.InternalServerError(c, "Could not submit application")
		}
		return
	}
	ac.cache.Invalidate(c.Request.Context(), cache.OfferKey(req.OfferID))

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": filterApplicationRecord(a),
	})
}

// @Summary      My applications
// @Description  All of the authenticated player's applications, newest first.
// @Tags         Applications
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{} "applications"
// @Router       /applications/my [get]
func (ac *ApplicationController) MyApplications(c *gin.Context) {
	playerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	apps, err := ac.repo.ListByPlayer(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch applications")
		return
	}

	results := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		results = append(results, filterApplicationRecord(&apps[i]))
	}

	c.JSON(http.StatusOK, gin.H{"applications": results})
}

// @Summary      Applications to an offer
// @Description  Offer owner only. Applicant profiles exclude email and contact details.
// @Tags         Applications
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Offer ID"
// @Success      200 {object} map[string]interface{} "applications"
// @Failure      403 {object} responses.ErrorResponse
// @Router       /applications/offer/{id} [get]
// @Router       /offers/{id}/applications [get]
func (ac *ApplicationController) OfferApplications(c *gin.Context) {
	offerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	o, err := ac.offerRepo.GetByID(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Offer")
			return
		}
		responses.InternalServerError(c, "Failed to fetch offer")
		return
	}
	if o.ClubID != userID {
		responses.Forbidden(c, "Not authorized to view these applications")
		return
	}

	apps, err := ac.repo.ListByOffer(offerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch applications")
		return
	}

	results := make([]OfferApplicationResponse, 0, len(apps))
	for i := range apps {
		results = append(results, filterOfferApplicationRecord(&apps[i]))
	}

	c.JSON(http.StatusOK, gin.H{"applications": results})
}

// @Summary      Accept or reject an application
// @Description  Offer owner only. Only pending applications can move, and only to accepted or rejected.
// @Tags         Applications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                 true "Application ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} map[string]interface{} "application"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      403 {object} responses.ErrorResponse
// @Router       /applications/{id}/status [put]
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
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

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if req.Status != StatusAccepted && req.Status != StatusRejected {
		responses.BadRequest(c, "Status must be 'accepted' or 'rejected'")
		return
	}

	a, err := ac.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Application")
			return
		}
		responses.InternalServerError(c, "Failed to fetch application")
		return
	}
	if a.Offer.ClubID != userID {
		responses.Forbidden(c, "Not authorized to decide this application")
		return
	}
	if !CanTransition(a.Status, req.Status) {
		responses.InvalidState(c, fmt.Sprintf("cannot move application from %s to %s", a.Status, req.Status))
		return
	}

	if err := ac.repo.UpdateStatus(id, req.Status); err != nil {
		responses.InternalServerError(c, "Could not update application")
		return
	}
	a.Status = req.Status

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application updated successfully",
		"application": filterApplicationRecord(a),
	})
}

// @Summary      Withdraw an application
// @Description  Applicant only, pending only. Releases the offer's application slot.
// @Tags         Applications
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object} map[string]interface{} "message"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      403 {object} responses.ErrorResponse
// @Router       /applications/{id}/withdraw [put]
// @Router       /applications/{id} [delete]
func (ac *ApplicationController) Withdraw(c *gin.Context) {
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

	a, err := ac.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Application")
			return
		}
		responses.InternalServerError(c, "Failed to fetch application")
		return
	}
	if a.PlayerID != userID {
		responses.Forbidden(c, "Not authorized to withdraw this application")
		return
	}
	if a.Status != StatusPending {
		responses.InvalidState(c, fmt.Sprintf("cannot withdraw a %s application", a.Status))
		return
	}

	if err := ac.repo.WithdrawAndDecrement(a); err != nil {
		responses.InternalServerError(c, "Could not withdraw application")
		return
	}
	ac.cache.Invalidate(c.Request.Context(), cache.OfferKey(a.OfferID))

	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn successfully"})
}
