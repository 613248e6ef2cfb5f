package service

import (
	"context"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/repository"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type CityService struct {
	repo repository.Repository
}

func NewCityService(repo repository.Repository) *CityService {
	return &CityService{repo: repo}
}

func (s *CityService) ListActive(ctx context.Context) ([]dto.CityResponse, error) {
	cities, err := s.repo.City().ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCities(cities), nil
}

// Current reports the effective city binding for the request, including how
// it was resolved, so clients can surface silent fallbacks.
func (s *CityService) Current(ctx context.Context) (*dto.CurrentCityResponse, error) {
	tc := tenancy.FromContext(ctx)
	if tc == nil || tc.City == nil {
		return nil, tenancy.ErrCityRequired
	}
	return &dto.CurrentCityResponse{
		City:   *dto.FromCity(tc.City),
		Source: string(tc.Source),
	}, nil
}

// ListBairros lists the bairros of the bound city.
func (s *CityService) ListBairros(ctx context.Context) ([]dto.BairroResponse, error) {
	cityID := tenancy.CityID(ctx)
	if cityID == "" {
		return nil, tenancy.ErrCityRequired
	}

	bairros, err := s.repo.Bairro().ListByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return dto.FromBairros(bairros), nil
}
