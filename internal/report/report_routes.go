package report

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	rep := r.Group("/reports")
	{
		rep.GET("/leaves.xlsx", middleware.RBACAuthorize(enforcer, rbac.ResourceReport, rbac.ActionExport), h.ExportLeaves)
		rep.GET("/calendar.ics", middleware.RBACAuthorize(enforcer, rbac.ResourceReport, rbac.ActionCalendar), h.Calendar)
	}
}
