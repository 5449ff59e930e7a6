package middleware

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorKey is the key used to store the authenticated actor in the request context.
// Using a custom type prevents collisions.
const actorKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx retrieves the actor stored by the auth middleware.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// GetActorFromContext retrieves the authenticated actor from the Gin request.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	if v, exists := c.Get(string(actorKey)); exists {
		if actor, ok := v.(domain.Actor); ok {
			return actor, true
		}
	}
	return ActorFromCtx(c.Request.Context())
}
