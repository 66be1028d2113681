package dashboard

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	r.GET("/dashboard", middleware.RBACAuthorize(enforcer, rbac.ResourceDashboard, rbac.ActionRead), h.Get)
}
