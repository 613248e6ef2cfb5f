package repository

import (
	"context"
	"time"

	"github.com/munigo/civic-portal-api/internal/domain"
)

//go:generate mockery --name CityRepository --output ../mocks
type CityRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.City, error)
	GetByDomain(ctx context.Context, host string) (*domain.City, error)
	GetByID(ctx context.Context, id string) (*domain.City, error)
	FirstActiveByName(ctx context.Context) (*domain.City, error)
	ListActive(ctx context.Context) ([]domain.City, error)
}

//go:generate mockery --name BairroRepository --output ../mocks
type BairroRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Bairro, error)
	ListByCity(ctx context.Context, cityID string) ([]domain.Bairro, error)
}

//go:generate mockery --name ReportRepository --output ../mocks
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	ListAllCities(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
}

//go:generate mockery --name RestrictionRepository --output ../mocks
type RestrictionRepository interface {
	Create(ctx context.Context, restriction *domain.Restriction) error
	// FirstBlocking returns the most recent active restriction for the user
	// matching the module key and types; cityID restricts city-scoped
	// restrictions, nil means only global restrictions are visible.
	FirstBlocking(ctx context.Context, userID, moduleKey string, types []domain.RestrictionType, cityID *string, now time.Time) (*domain.Restriction, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Restriction, error)
	Revoke(ctx context.Context, id string, revokedAt time.Time) error
}

//go:generate mockery --name IncidentRepository --output ../mocks
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.TenancyIncident) error
	List(ctx context.Context, filter domain.TenancyIncidentFilter) ([]domain.TenancyIncident, error)
	ListForCity(ctx context.Context, cityID string, before time.Time) ([]domain.TenancyIncident, error)
	DeleteBeforeDate(ctx context.Context, cityID string, beforeDate time.Time) (int64, error)
}

//go:generate mockery --name OpenSearchRepository --output ../mocks
type OpenSearchRepository interface {
	Index(ctx context.Context, incident *domain.TenancyIncident) error
	BulkIndex(ctx context.Context, incidents []domain.TenancyIncident) error
	Search(ctx context.Context, filter *domain.TenancyIncidentFilter) ([]domain.TenancyIncident, error)
	CreateIndex(ctx context.Context, cityID string, t time.Time) error
	DeleteIndex(ctx context.Context, cityID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	City() CityRepository
	Bairro() BairroRepository
	Report() ReportRepository
	Restriction() RestrictionRepository
	Incident() IncidentRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	OpenSearch() OpenSearchRepository
}
