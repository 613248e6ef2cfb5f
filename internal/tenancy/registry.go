package tenancy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

const cityCachePrefix = "city:slug:"

// CityStore is the persistence half of the registry, implemented by the
// postgres city repository.
type CityStore interface {
	GetBySlug(ctx context.Context, slug string) (*domain.City, error)
	GetByDomain(ctx context.Context, host string) (*domain.City, error)
	GetByID(ctx context.Context, id string) (*domain.City, error)
	FirstActiveByName(ctx context.Context) (*domain.City, error)
}

// Registry looks up active cities. Inactive or unknown cities are never
// resolvable as a tenant.
type Registry interface {
	ActiveBySlug(ctx context.Context, slug string) (*domain.City, error)
	ActiveByDomain(ctx context.Context, host string) (*domain.City, error)
	ActiveByID(ctx context.Context, id string) (*domain.City, error)
	FirstActiveByName(ctx context.Context) (*domain.City, error)
}

type cachedRegistry struct {
	store    CityStore
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewRegistry wraps a CityStore with a redis slug cache. redisClient may be
// nil, in which case every lookup goes to the store.
func NewRegistry(store CityStore, redisClient *redis.Client, cacheTTL time.Duration, logger *logger.Logger) Registry {
	return &cachedRegistry{
		store:    store,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (r *cachedRegistry) ActiveBySlug(ctx context.Context, slug string) (*domain.City, error) {
	if slug == "" {
		return nil, ErrCityNotAvailable
	}

	if city := r.cachedCity(ctx, slug); city != nil {
		return city, nil
	}

	city, err := r.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotAvailable
		}
		return nil, fmt.Errorf("failed to look up city by slug: %w", err)
	}
	if !city.Active {
		return nil, ErrCityNotAvailable
	}

	r.cacheCity(ctx, city)
	return city, nil
}

func (r *cachedRegistry) ActiveByDomain(ctx context.Context, host string) (*domain.City, error) {
	if host == "" {
		return nil, ErrCityNotAvailable
	}

	city, err := r.store.GetByDomain(ctx, host)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotAvailable
		}
		return nil, fmt.Errorf("failed to look up city by domain: %w", err)
	}
	if !city.Active {
		return nil, ErrCityNotAvailable
	}
	return city, nil
}

func (r *cachedRegistry) ActiveByID(ctx context.Context, id string) (*domain.City, error) {
	if id == "" {
		return nil, ErrCityNotAvailable
	}

	city, err := r.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotAvailable
		}
		return nil, fmt.Errorf("failed to look up city by id: %w", err)
	}
	if !city.Active {
		return nil, ErrCityNotAvailable
	}
	return city, nil
}

func (r *cachedRegistry) FirstActiveByName(ctx context.Context) (*domain.City, error) {
	city, err := r.store.FirstActiveByName(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotAvailable
		}
		return nil, fmt.Errorf("failed to look up first active city: %w", err)
	}
	return city, nil
}

// cachedCity returns an active cached city or nil. Cache errors fail open.
func (r *cachedRegistry) cachedCity(ctx context.Context, slug string) *domain.City {
	if r.redis == nil {
		return nil
	}

	data, err := r.redis.Get(ctx, cityCachePrefix+slug).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warnf("city cache read failed for %s: %v", slug, err)
		}
		return nil
	}

	var city domain.City
	if err := json.Unmarshal(data, &city); err != nil {
		r.logger.Warnf("city cache entry corrupt for %s: %v", slug, err)
		return nil
	}
	if !city.Active {
		return nil
	}
	return &city
}

func (r *cachedRegistry) cacheCity(ctx context.Context, city *domain.City) {
	if r.redis == nil {
		return
	}

	data, err := json.Marshal(city)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, cityCachePrefix+city.Slug, data, r.cacheTTL).Err(); err != nil {
		r.logger.Warnf("city cache write failed for %s: %v", city.Slug, err)
	}
}
