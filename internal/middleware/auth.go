package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserIDKey   = "auth_user_id"
	AuthUserRoleKey = "auth_user_role"
)

type authRow struct {
	ID   uint
	Role string
}

// AuthMiddleware resolves the bearer token to a live user record. The role
// stored in context comes from the database, not from the token claim.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		var row authRow
		if err := db.Table("users").Select("id, role").
			Where("id = ? AND deleted_at IS NULL", claims.UserID).
			Take(&row).Error; err != nil {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		c.Set(AuthUserIDKey, row.ID)
		c.Set(AuthUserRoleKey, row.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the bearer token when one is present but
// never rejects the request. Offer listing/detail use it.
func OptionalAuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.Next()
			return
		}
		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.Next()
			return
		}
		var row authRow
		if err := db.Table("users").Select("id, role").
			Where("id = ? AND deleted_at IS NULL", claims.UserID).
			Take(&row).Error; err == nil {
			c.Set(AuthUserIDKey, row.ID)
			c.Set(AuthUserRoleKey, row.Role)
		}
		c.Next()
	}
}

// RequireRole rejects authenticated users whose role is not in the list.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}
		for _, r := range roles {
			if strings.EqualFold(role, r) {
				c.Next()
				return
			}
		}
		responses.Forbidden(c, "You don't have permission to access this resource")
	}
}

// GetUserIDFromContext extracts the authenticated user's ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}

// GetUserRoleFromContext extracts the authenticated user's role from the context.
func GetUserRoleFromContext(c *gin.Context) (string, error) {
	role, exists := c.Get(AuthUserRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	r, ok := role.(string)
	if !ok {
		return "", fmt.Errorf("user role has unexpected type: %T", role)
	}
	return r, nil
}
