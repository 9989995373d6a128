package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/handler/httperr"
	"dropdeck/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "shop_session"

// TokenValidator is satisfied by the jwt service.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession authenticates the request and stashes the shop session in the
// request context. Tokens ride the Authorization header or, for event-stream
// clients that cannot set headers, the token query parameter.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required")
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxSessionKey, session.Session{
			Shop:        claims.Shop,
			AccessToken: claims.AccessToken,
		})
		c.Next()
	}
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}

	sess, ok := v.(session.Session)
	return sess, ok && !sess.IsZero()
}
