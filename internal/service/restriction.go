package service

import (
	"context"
	"time"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/repository"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type RestrictionService struct {
	repo repository.Repository
}

func NewRestrictionService(repo repository.Repository) *RestrictionService {
	return &RestrictionService{repo: repo}
}

// Create places a restriction on a user. Unless the request marks it
// global, the restriction is pinned to the city bound to the request, which
// for moderators is always their home city.
func (s *RestrictionService) Create(ctx context.Context, req dto.CreateRestrictionRequest) (*dto.RestrictionResponse, error) {
	if !domain.IsValidRestrictionType(req.Type) {
		return nil, ErrInvalidRestrictionType
	}

	restriction := &domain.Restriction{
		UserID:         req.UserID,
		Type:           domain.RestrictionType(req.Type),
		ScopeModuleKey: req.ScopeModuleKey,
		Reason:         req.Reason,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		CreatedBy:      tenancy.ActorID(ctx),
	}
	if restriction.StartsAt.IsZero() {
		restriction.StartsAt = time.Now()
	}

	if !req.Global {
		cityID := tenancy.CityID(ctx)
		if cityID == "" {
			return nil, tenancy.ErrCityRequired
		}
		restriction.ScopeCityID = &cityID
	}

	if err := s.repo.Restriction().Create(ctx, restriction); err != nil {
		return nil, err
	}

	return dto.FromRestriction(restriction), nil
}

func (s *RestrictionService) ListForUser(ctx context.Context, userID string) ([]dto.RestrictionResponse, error) {
	restrictions, err := s.repo.Restriction().ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromRestrictions(restrictions), nil
}

func (s *RestrictionService) Revoke(ctx context.Context, id string) error {
	return s.repo.Restriction().Revoke(ctx, id, time.Now())
}

// FirstBlocking returns the restriction currently blocking the user for the
// module, considering global restrictions and those scoped to the bound
// city. Returns nil when the user is unrestricted.
func (s *RestrictionService) FirstBlocking(ctx context.Context, userID, moduleKey string, types []domain.RestrictionType) (*dto.RestrictionResponse, error) {
	recognized := make([]domain.RestrictionType, 0, len(types))
	for _, t := range types {
		if domain.IsValidRestrictionType(string(t)) {
			recognized = append(recognized, t)
		}
	}
	if len(recognized) == 0 {
		return nil, nil
	}

	var cityID *string
	if id := tenancy.CityID(ctx); id != "" {
		cityID = &id
	}

	restriction, err := s.repo.Restriction().FirstBlocking(ctx, userID, moduleKey, recognized, cityID, time.Now())
	if err != nil {
		return nil, err
	}
	if restriction == nil {
		return nil, nil
	}
	return dto.FromRestriction(restriction), nil
}
