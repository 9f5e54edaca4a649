package auth

import (
	"errors"
	"net/http"

	"github.com/enzogallo/sportsmatch-api/config"
	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/models"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/token"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

// @Summary      Register a new account
// @Description  Creates a player or club account and returns the user plus a JWT.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account details"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if !req.Role.Valid() {
		responses.BadRequest(c, "Role must be 'player' or 'club'")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Could not process password")
		return
	}

	u := &user.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Role:     req.Role,
		Age:      req.Age,
		City:     req.City,
		Sports:   models.StringSlice(req.Sports),
		Position: req.Position,
		Level:    req.Level,
		ClubName: req.ClubName,
		Location: req.Location,
	}

	// The unique index on email is the source of truth; a concurrent
	// register with the same address surfaces as ErrDuplicatedKey.
	if err := ac.repo.CreateUser(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			responses.Conflict(c, "Email already registered")
			return
		}
		config.Logger.Error("register failed", zap.Error(err))
		responses.InternalServerError(c, "Could not create account")
		return
	}

	jwt, err := token.GenerateJWT(u.ID, string(u.Role), ac.appConfig.JWT.Secret, ac.appConfig.JWT.ExpiryDays)
	if err != nil {
		responses.InternalServerError(c, "Could not generate token")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: user.FilterUserRecord(u), Token: jwt})
}

// @Summary      Log in
// @Description  Verifies credentials and returns the user plus a JWT.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	// Unknown email and wrong password return the same message so the
	// endpoint cannot be used to reveal which addresses have accounts.
	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	jwt, err := token.GenerateJWT(u.ID, string(u.Role), ac.appConfig.JWT.Secret, ac.appConfig.JWT.ExpiryDays)
	if err != nil {
		responses.InternalServerError(c, "Could not generate token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user.FilterUserRecord(u), Token: jwt})
}

// @Summary      Current user
// @Description  Returns the authenticated user's full profile.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{} "user"
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.NotFound(c, "User")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.FilterUserRecord(u)})
}

// @Summary      Log out
// @Description  Stateless logout; clients discard the token.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{} "message"
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
