package middleware

import (
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/gin-gonic/gin"
)

const (
	ContextActor  = "actor"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// SetActor stores the authenticated caller on the gin context.
func SetActor(c *gin.Context, actor identity.Actor) {
	c.Set(ContextActor, actor)
	c.Set(ContextUserID, actor.ID.String())
	c.Set(ContextRole, actor.Role)
}

func CurrentActor(c *gin.Context) (identity.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return identity.Actor{}, false
	}
	actor, ok := v.(identity.Actor)
	return actor, ok
}
