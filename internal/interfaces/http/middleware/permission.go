package middleware

import (
	"github.com/gin-gonic/gin"

	accountusecases "warsztat/internal/application/account/usecases"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
	"warsztat/internal/shared/utils"
)

// PermissionEnforcer decides whether a role may perform an action on a resource.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PermissionEnforcer
	getRole  *accountusecases.GetRoleUseCase
	logger   logger.Interface
}

func NewPermissionMiddleware(
	enforcer PermissionEnforcer,
	getRole *accountusecases.GetRoleUseCase,
	logger logger.Interface,
) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		getRole:  getRole,
		logger:   logger,
	}
}

// Require gates a route on a (resource, action) pair. The role is looked up
// fresh from storage rather than trusted from the token, and every denial
// gets the same message whether the caller is anonymous, unknown, or simply
// not an admin.
func (m *PermissionMiddleware) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		login, exists := c.Get(constants.ContextKeyLogin)
		if !exists {
			m.deny(c)
			return
		}

		loginStr, ok := login.(string)
		if !ok || loginStr == "" {
			m.deny(c)
			return
		}

		role, err := m.getRole.Execute(c.Request.Context(), loginStr)
		if err != nil {
			m.logger.Warnw("failed to resolve role for permission check",
				"login", loginStr, "error", err)
			m.deny(c)
			return
		}

		allowed, err := m.enforcer.Enforce(role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission enforcement failed",
				"login", loginStr, "resource", resource, "action", action, "error", err)
			m.deny(c)
			return
		}

		if !allowed {
			m.deny(c)
			return
		}

		c.Set(constants.ContextKeyRole, role.String())
		c.Next()
	}
}

func (m *PermissionMiddleware) deny(c *gin.Context) {
	utils.ErrorResponseWithError(c, errors.NewForbiddenError("Brak uprawnień."))
	c.Abort()
}
