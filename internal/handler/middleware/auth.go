package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/pkg/cookie"
	"github.com/atomospherebrand-bot/relese/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxUsernameKey = "admin_username"

	BotKeyHeader = "X-Bot-Key"
)

var (
	errMissingToken = errors.New("access token required")
	errBadBotKey    = errors.New("invalid bot key")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the token from the access_token cookie or a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUsernameKey, username)
		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// BotKey guards the bot-facing routes with a shared key. An empty key
// leaves the routes open.
func BotKey(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)
	return func(c *gin.Context) {
		if len(expected) == 0 {
			c.Next()
			return
		}
		got := []byte(c.GetHeader(BotKeyHeader))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadBotKey, "Invalid bot key", nil)
			return
		}
		c.Next()
	}
}

// NoStore keeps API responses out of browser and proxy caches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
