package notification

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	n := r.Group("/notifications")
	{
		n.GET("", middleware.RBACAuthorize(enforcer, rbac.ResourceNotification, rbac.ActionRead), h.List)
		n.PUT("/:id/read", middleware.RBACAuthorize(enforcer, rbac.ResourceNotification, rbac.ActionUpdate), h.MarkRead)
	}
}
