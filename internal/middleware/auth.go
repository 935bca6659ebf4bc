package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bccpune/crickclub/pkg/responses"
	"github.com/bccpune/crickclub/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthPlayerIDKey = "auth_player_id"
	AuthRoleKey     = "auth_role"
)

// AuthMiddleware validates the bearer token and confirms the player still
// exists before letting the request through.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(parts[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		var exists bool
		err = db.Table("players").
			Select("count(*) > 0").
			Where("id = ? AND deleted_at IS NULL", claims.PlayerID).
			Find(&exists).Error
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Could not verify player")
			return
		}
		if !exists {
			responses.Unauthorized(c, "Player not found or inactive")
			return
		}

		c.Set(AuthPlayerIDKey, claims.PlayerID)
		c.Set(AuthRoleKey, claims.Role)
		c.Next()
	}
}

// GetPlayerIDFromContext extracts the authenticated player's id.
func GetPlayerIDFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(AuthPlayerIDKey)
	if !exists {
		return "", errors.New("player ID not found in context")
	}
	id, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("player ID has unexpected type: %T", v)
	}
	return id, nil
}
