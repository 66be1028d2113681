package user

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts user endpoints on an authenticated /users group.
// Static paths (/profile, /teams) are registered before /:id.
func RegisterRoutes(users *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	users.GET("/profile",
		middleware.RBACAuthorize(enforcer, rbac.ResourceProfile, rbac.ActionRead),
		handler.GetProfile,
	)
	users.PUT("/profile",
		middleware.RBACAuthorize(enforcer, rbac.ResourceProfile, rbac.ActionUpdate),
		handler.UpdateProfile,
	)

	users.GET("",
		middleware.RBACAuthorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
		handler.GetAll,
	)
	users.POST("",
		middleware.RBACAuthorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
		handler.Create,
	)
	users.GET("/:id",
		middleware.RBACAuthorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
		handler.GetByID,
	)
	users.PUT("/:id",
		middleware.RBACAuthorize(enforcer, rbac.ResourceUser, rbac.ActionUpdate),
		handler.Update,
	)
	users.DELETE("/:id",
		middleware.RBACAuthorize(enforcer, rbac.ResourceUser, rbac.ActionManage),
		handler.Delete,
	)
}
