package rbac

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /rbac on an authenticated group.
func RegisterRoutes(api *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	r := api.Group("/rbac", middleware.RBACAuthorize(enforcer, ResourceRBAC, ActionRead))
	{
		r.GET("/permissions", h.MyPermissions)
		r.POST("/enforce", h.Enforce)
	}
}
