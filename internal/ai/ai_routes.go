package ai

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	a := r.Group("/ai")
	{
		a.POST("/chat", middleware.RBACAuthorize(enforcer, rbac.ResourceAI, rbac.ActionChat), h.Chat)
		a.POST("/autofill", middleware.RBACAuthorize(enforcer, rbac.ResourceAI, rbac.ActionAutofill), h.Autofill)
		a.GET("/recommend/:leaveId", middleware.RBACAuthorize(enforcer, rbac.ResourceAI, rbac.ActionRecommend), h.Recommend)
		a.POST("/conflicts", middleware.RBACAuthorize(enforcer, rbac.ResourceAI, rbac.ActionConflicts), h.Conflicts)
	}
}
