package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	ActorKey  ContextKey = "actor"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrInvalidClaimsType = errors.New("invalid claims type")
	ErrNoUserIDInClaims  = errors.New("no user_id found in claims")
	ErrInvalidUserIDType = errors.New("user_id must be a string")
)

// ActorFromClaims builds the authenticated actor from parsed JWT claims.
// Roles and home_city_id are optional; user_id is required.
func ActorFromClaims(claims jwt.MapClaims) (*tenancy.Actor, error) {
	userID, exists := claims["user_id"]
	if !exists {
		return nil, ErrNoUserIDInClaims
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return nil, ErrInvalidUserIDType
	}

	actor := &tenancy.Actor{ID: userIDStr}

	if rolesClaim, ok := claims["roles"].([]any); ok {
		for _, role := range rolesClaim {
			if roleStr, ok := role.(string); ok {
				actor.Roles = append(actor.Roles, roleStr)
			}
		}
	}

	if homeCityID, ok := claims["home_city_id"].(string); ok {
		actor.HomeCityID = homeCityID
	}

	return actor, nil
}
