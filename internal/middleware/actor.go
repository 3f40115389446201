package middleware

import (
	"context"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"
)

const (
	ActorIDHeader   = "X-Actor-ID"
	ActorRoleHeader = "X-Actor-Role"
)

type actorKey struct{}

// Actor reads the caller identity set by the gateway. Authentication
// happens upstream, requests without an id pass through anonymous.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(ActorIDHeader)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}

		role := entities.Role(r.Header.Get(ActorRoleHeader))
		switch role {
		case "":
			role = entities.RoleCustomer
		case entities.RoleCustomer, entities.RoleAdmin, entities.RoleSystem:
		default:
			utils.WriteError(w, "unknown actor role", http.StatusUnauthorized)
			return
		}

		ctx := WithActor(r.Context(), entities.Actor{ID: id, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}
