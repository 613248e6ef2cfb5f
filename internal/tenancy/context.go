package tenancy

import (
	"context"

	"github.com/munigo/civic-portal-api/internal/domain"
)

// Source tags how the active city was determined for a request.
type Source string

const (
	SourceHeader          Source = "header"
	SourcePath            Source = "path"
	SourceDomain          Source = "domain"
	SourceSessionOverride Source = "session_override"
	SourceFallback        Source = "fallback"
	SourceRoleLock        Source = "role_lock"
)

// Context is the per-request tenant binding: the resolved city and how it
// was resolved. It is created fresh by the resolution middleware and carried
// through context.Context; there is no process-wide binding.
type Context struct {
	City   *domain.City
	Source Source
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext binds a tenant context to ctx.
func WithContext(ctx context.Context, tc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext returns the tenant binding, or nil when none is bound
// (console and queue-worker execution).
func FromContext(ctx context.Context) *Context {
	tc, _ := ctx.Value(contextKey{}).(*Context)
	return tc
}

// Bound reports whether ctx carries a tenant with a resolved city.
func Bound(ctx context.Context) bool {
	tc := FromContext(ctx)
	return tc != nil && tc.City != nil
}

// CityID returns the bound city id, or empty string when no tenant is bound.
func CityID(ctx context.Context) string {
	if tc := FromContext(ctx); tc != nil && tc.City != nil {
		return tc.City.ID
	}
	return ""
}

// Actor is the tenancy-relevant view of the authenticated user, extracted
// from JWT claims by the auth middleware.
type Actor struct {
	ID         string
	Roles      []string
	HomeCityID string
}

func (a *Actor) IsAdmin() bool {
	return a != nil && domain.HasRole(a.Roles, domain.RoleAdmin)
}

func (a *Actor) IsModerator() bool {
	return a != nil && domain.HasRole(a.Roles, domain.RoleModerator)
}

type actorKey struct{}

// WithActor binds the authenticated actor to ctx.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor, or nil for unauthenticated requests.
func ActorFromContext(ctx context.Context) *Actor {
	actor, _ := ctx.Value(actorKey{}).(*Actor)
	return actor
}

// ActorID returns the actor id or empty string, for log fields.
func ActorID(ctx context.Context) string {
	if actor := ActorFromContext(ctx); actor != nil {
		return actor.ID
	}
	return ""
}
