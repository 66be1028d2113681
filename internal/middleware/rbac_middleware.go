package middleware

import (
	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Enforcer decides whether a role may perform action on resource.
type Enforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(enforcer Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		allowed, err := enforcer.Enforce(actor.Role, resource, action)
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			abortWith(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			abortWith(c, autherrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
