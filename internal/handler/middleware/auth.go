package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"interview-scheduler/internal/pkg/cookie"
	"interview-scheduler/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator abstracts token verification so handler tests can
// substitute their own issuer.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

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
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxIdentityKey, claims.Identity)
		c.Set("jwt_claims", map[string]any{
			"identity": claims.Identity,
			"role":     claims.Role,
		})
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return "", false
	}

	identity, ok := v.(string)
	return identity, ok
}
