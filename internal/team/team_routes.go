package team

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts team endpoints on the authenticated /users group.
func RegisterRoutes(users *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	teams := users.Group("/teams")
	{
		teams.GET("",
			middleware.RBACAuthorize(enforcer, rbac.ResourceTeam, rbac.ActionRead),
			h.GetAll,
		)

		teams.POST("",
			middleware.RBACAuthorize(enforcer, rbac.ResourceTeam, rbac.ActionCreate),
			h.Create,
		)
	}
}
