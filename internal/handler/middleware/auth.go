package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"member-rewards/internal/usecase"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxMemberIDKey     = "member_id"
	ctxMobileNumberKey = "mobile_number"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		memberID, mobileNumber, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxMemberIDKey, memberID)
		c.Set(ctxMobileNumberKey, mobileNumber)
		c.Next()
	}
}

func GetMemberID(c *gin.Context) (int64, bool) {
	memberID, exists := c.Get(ctxMemberIDKey)
	if !exists {
		return 0, false
	}

	id, ok := memberID.(int64)
	return id, ok
}

func GetMobileNumber(c *gin.Context) (string, bool) {
	mobile, exists := c.Get(ctxMobileNumberKey)
	if !exists {
		return "", false
	}

	s, ok := mobile.(string)
	return s, ok
}
