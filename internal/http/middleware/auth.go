package middleware

import (
	"context"
	"net/http"
	"strings"

	"drivent/internal/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// SessionChecker is implemented by repositories.SessionRepository.
type SessionChecker interface {
	Exists(ctx context.Context, userID int64, token string) (bool, error)
}

// Auth requires "Authorization: Bearer <jwt>" whose session is still stored.
// Anything else is answered with 401 before the handler runs.
func Auth(secret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			unauthorized(c)
			return
		}

		userID, err := auth.Parse(secret, token)
		if err != nil {
			unauthorized(c)
			return
		}

		found, err := sessions.Exists(c.Request.Context(), userID, token)
		if err != nil || !found {
			unauthorized(c)
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}

// SetUserID records the authenticated caller on the request.
func SetUserID(c *gin.Context, userID int64) {
	c.Set(userIDKey, userID)
}

// UserID returns the authenticated caller, or 0 outside Auth.
func UserID(c *gin.Context) int64 {
	if c == nil {
		return 0
	}
	return c.GetInt64(userIDKey)
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      "unauthorized",
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
