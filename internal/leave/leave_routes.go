package leave

import (
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts /leaves on an authenticated group. rdb may be nil,
// which turns Idempotency-Key handling off.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer middleware.Enforcer,
	rdb redis.Cmdable,
) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("",
			middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Apply,
		)
		leaves.GET("/my", middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionRead), handler.GetMine)
		leaves.GET("/team", middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionReadTeam), handler.GetTeam)
		leaves.GET("/all", middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionReadAll), handler.GetAll)
		leaves.PUT("/:id/approve", middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionDecide), handler.Approve)
		leaves.PUT("/:id/reject", middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionDecide), handler.Reject)
		leaves.GET("/:id", middleware.RBACAuthorize(enforcer, rbac.ResourceLeave, rbac.ActionRead), handler.GetByID)
	}
}
