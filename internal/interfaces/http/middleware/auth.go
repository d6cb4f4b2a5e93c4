package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"warsztat/internal/infrastructure/auth"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/logger"
	"warsztat/internal/shared/utils"
)

type AuthMiddleware struct {
	tokenService *auth.SessionTokenService
	logger       logger.Interface
}

func NewAuthMiddleware(tokenService *auth.SessionTokenService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       logger,
	}
}

// RequireAuth rejects requests without a valid session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyLogin, claims.Login)
		c.Set(constants.ContextKeyRole, claims.Role.String())

		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid session is present and
// passes the request through otherwise. Admin routes pair it with the
// permission middleware so unauthenticated and unauthorized callers receive
// the same answer.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenService.Verify(token)
		if err == nil {
			c.Set(constants.ContextKeyLogin, claims.Login)
			c.Set(constants.ContextKeyRole, claims.Role.String())
		}

		c.Next()
	}
}

// extractToken reads the session cookie with an Authorization header fallback.
func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.SessionCookie); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
