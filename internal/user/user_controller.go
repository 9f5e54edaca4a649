package user

import (
	"errors"
	"net/http"

	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	repo UserRepository
}

func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// @Summary      Get user profile
// @Description  Public, sanitized profile of a player or club.
// @Tags         Users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]interface{} "user"
// @Failure      404 {object} responses.ErrorResponse
// @Router       /users/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	u, err := uc.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": FilterUserRecord(u)})
}

// @Summary      Search users
// @Description  Filter players and clubs by role, sport, city, level, position.
// @Tags         Users
// @Produce      json
// @Param        role     query string false "player or club"
// @Param        sport    query string false "Sport key"
// @Param        city     query string false "City substring (case-insensitive)"
// @Param        level    query string false "Level"
// @Param        position query string false "Position substring"
// @Param        page     query int    false "Page"
// @Param        limit    query int    false "Page size"
// @Success      200 {object} map[string]interface{} "users, pagination"
// @Router       /users [get]
func (uc *UserController) SearchUsers(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 20)
	filters := SearchFilters{
		Role:     c.Query("role"),
		Sport:    c.Query("sport"),
		City:     c.Query("city"),
		Level:    c.Query("level"),
		Position: c.Query("position"),
	}

	users, total, err := uc.repo.Search(filters, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to search users")
		return
	}

	results := make([]PublicUserResponse, 0, len(users))
	for i := range users {
		results = append(results, FilterPublicUserRecord(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      results,
		"pagination": responses.NewPagination(page, limit, total),
	})
}

// @Summary      Update user profile
// @Description  Self-service profile update. Email, password and role are immutable here.
// @Tags         Users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        profile body UpdateProfileRequest true "Fields to update"
// @Success      200 {object} map[string]interface{} "user"
// @Failure      403 {object} responses.ErrorResponse
// @Router       /users/{id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
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
	if userID != id {
		responses.Forbidden(c, "Not authorized to update this profile")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	u, err := uc.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Age != nil {
		u.Age = req.Age
	}
	if req.City != nil {
		u.City = *req.City
	}
	if req.Sports != nil {
		u.Sports = req.Sports
	}
	if req.Position != nil {
		u.Position = *req.Position
	}
	if req.Level != nil {
		u.Level = *req.Level
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.ProfileImageURL != nil {
		u.ProfileImageURL = *req.ProfileImageURL
	}
	if req.Status != nil {
		u.Status = *req.Status
	}
	if req.ClubName != nil {
		u.ClubName = *req.ClubName
	}
	if req.ClubLogoURL != nil {
		u.ClubLogoURL = *req.ClubLogoURL
	}
	if req.ClubDescription != nil {
		u.ClubDescription = *req.ClubDescription
	}
	if req.ContactEmail != nil {
		u.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		u.ContactPhone = *req.ContactPhone
	}
	if req.SportsOffered != nil {
		u.SportsOffered = req.SportsOffered
	}
	if req.Location != nil {
		u.Location = *req.Location
	}

	if err := uc.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Could not update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    FilterUserRecord(u),
	})
}

// @Summary      Get performance CV
// @Description  Whole CV, or a single sport's snapshot when ?sport= is given.
// @Tags         Performance
// @Produce      json
// @Param        id    path  int    true  "User ID"
// @Param        sport query string false "Sport key"
// @Success      200 {object} map[string]interface{} "performance"
// @Failure      404 {object} responses.ErrorResponse
// @Router       /users/{id}/performance [get]
func (uc *UserController) GetPerformance(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	u, err := uc.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to fetch user")
		return
	}

	if sport := c.Query("sport"); sport != "" {
		if summary, ok := u.PerformanceCV[Sport(sport)]; ok {
			c.JSON(http.StatusOK, gin.H{"performance": summary})
			return
		}
		c.JSON(http.StatusOK, gin.H{"performance": nil})
		return
	}

	if u.PerformanceCV == nil {
		c.JSON(http.StatusOK, gin.H{"performance": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"performance": u.PerformanceCV})
}

// @Summary      Update performance CV
// @Description  Replaces one sport's snapshot; other sports are preserved. Self only.
// @Tags         Performance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body UpdatePerformanceRequest true "Sport and snapshot"
// @Success      200 {object} map[string]interface{} "performance"
// @Failure      400 {object} responses.ErrorResponse
// @Failure      403 {object} responses.ErrorResponse
// @Router       /users/{id}/performance [put]
func (uc *UserController) UpdatePerformance(c *gin.Context) {
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
	if userID != id {
		responses.Forbidden(c, "Not authorized to update this profile")
		return
	}

	var req UpdatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if err := req.Performance.Validate(req.Sport); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	merged, err := uc.repo.UpdatePerformanceCV(id, req.Sport, *req.Performance)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to update performance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Performance updated",
		"performance": merged[req.Sport],
	})
}
