package subscription

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscriptionController struct {
	repo SubscriptionRepository
}

func NewSubscriptionController(repo SubscriptionRepository) *SubscriptionController {
	return &SubscriptionController{repo: repo}
}

// @Summary      My subscription
// @Description  The authenticated user's plan. Users without a row are on the free plan.
// @Tags         Subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{} "subscription"
// @Router       /subscriptions/me [get]
func (sc *SubscriptionController) MySubscription(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	s, err := sc.repo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"subscription": SubscriptionResponse{Plan: PlanFree}})
			return
		}
		responses.InternalServerError(c, "Failed to fetch subscription")
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": SubscriptionResponse{
		Plan:      s.Plan,
		RenewsAt:  s.RenewsAt,
		UpdatedAt: s.UpdatedAt,
	}})
}

// @Summary      Change plan
// @Description  Switches the user's plan. Paid plans renew monthly; moving to free cancels.
// @Tags         Subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body ChangePlanRequest true "Target plan"
// @Success      200 {object} map[string]interface{} "subscription"
// @Failure      400 {object} responses.ErrorResponse
// @Router       /subscriptions/me [put]
func (sc *SubscriptionController) ChangePlan(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if !req.Plan.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown plan %q", req.Plan))
		return
	}

	s := &Subscription{UserID: userID, Plan: req.Plan}
	now := time.Now()
	if req.Plan == PlanFree {
		s.CanceledAt = &now
	} else {
		renews := now.AddDate(0, 1, 0)
		s.RenewsAt = &renews
	}

	if err := sc.repo.Upsert(s); err != nil {
		responses.InternalServerError(c, "Could not update subscription")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription updated",
		"subscription": SubscriptionResponse{
			Plan:      s.Plan,
			RenewsAt:  s.RenewsAt,
			UpdatedAt: now,
		},
	})
}
