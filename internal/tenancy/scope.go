package tenancy

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

// Owned is implemented by every tenant-owned record (anything carrying a
// city_id column). Implementing it opts the type into scope enforcement.
type Owned interface {
	GetCityID() string
	SetCityID(cityID string)
}

// BairroScoped is implemented by records that additionally reference a
// bairro; the scope verifies the bairro belongs to the record's city.
type BairroScoped interface {
	GetBairroID() string
}

// BairroStore looks up bairros for the bairro/city consistency check.
type BairroStore interface {
	GetByID(ctx context.Context, id string) (*domain.Bairro, error)
}

// Scope filters reads and guards writes of tenant-owned records against the
// bound tenant context. Repositories construct queries through it explicitly
// rather than relying on implicit model hooks, so every bypass is visible at
// the call site.
type Scope struct {
	bairros BairroStore
	logger  *logger.Logger
}

func NewScope(bairros BairroStore, logger *logger.Logger) *Scope {
	return &Scope{
		bairros: bairros,
		logger:  logger,
	}
}

// Scoped restricts the query to the bound city. When no tenant is bound
// (console and queue workers) the query passes through unfiltered.
func (s *Scope) Scoped(ctx context.Context, db *gorm.DB) *gorm.DB {
	cityID := CityID(ctx)
	if cityID == "" {
		return db
	}
	return db.Where("city_id = ?", cityID)
}

// ForCity restricts the query to an explicitly named city, for jobs and CLI
// tools that must act on one city without an ambient tenant binding.
func (s *Scope) ForCity(db *gorm.DB, cityID string) *gorm.DB {
	return db.Where("city_id = ?", cityID)
}

// AllTenants deliberately crosses the isolation boundary for admin and
// reporting paths. Every use is audited: caller, actor, and tenant context
// are logged so cross-tenant reads stay traceable.
func (s *Scope) AllTenants(ctx context.Context, db *gorm.DB, caller string) *gorm.DB {
	s.logger.Warn("tenant filter bypassed",
		zap.String("caller", caller),
		zap.String("actor_id", ActorID(ctx)),
		zap.String("bound_city_id", CityID(ctx)))
	return db
}

// PrepareCreate stamps the bound city onto a record whose city id is empty.
// A tenant-owned record may never be created without a city: if no city can
// be stamped, creation is rejected.
func (s *Scope) PrepareCreate(ctx context.Context, record Owned) error {
	if record.GetCityID() == "" {
		if cityID := CityID(ctx); cityID != "" {
			record.SetCityID(cityID)
		}
	}
	if record.GetCityID() == "" {
		return ErrCityRequired
	}
	return s.checkBairro(ctx, record)
}

// GuardSave rejects saves whose city id disagrees with the bound tenant.
// The check applies only when a tenant is bound (HTTP request path); console
// and queue contexts carry no binding and pass through. The bairro/city
// consistency check applies everywhere.
func (s *Scope) GuardSave(ctx context.Context, record Owned) error {
	boundCityID := CityID(ctx)
	recordCityID := record.GetCityID()

	if boundCityID != "" && recordCityID != "" && recordCityID != boundCityID {
		s.logger.Warn("cross-tenant write rejected",
			zap.String("actor_id", ActorID(ctx)),
			zap.String("model", fmt.Sprintf("%T", record)),
			zap.String("record_city_id", recordCityID),
			zap.String("bound_city_id", boundCityID))
		return ErrCrossTenantWrite
	}

	return s.checkBairro(ctx, record)
}

func (s *Scope) checkBairro(ctx context.Context, record Owned) error {
	scoped, ok := record.(BairroScoped)
	if !ok || scoped.GetBairroID() == "" {
		return nil
	}

	bairro, err := s.bairros.GetByID(ctx, scoped.GetBairroID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBairroCityMismatch
		}
		return fmt.Errorf("failed to verify bairro: %w", err)
	}
	if bairro.CityID != record.GetCityID() {
		s.logger.Warn("bairro/city mismatch rejected",
			zap.String("actor_id", ActorID(ctx)),
			zap.String("model", fmt.Sprintf("%T", record)),
			zap.String("record_city_id", record.GetCityID()),
			zap.String("bairro_city_id", bairro.CityID))
		return ErrBairroCityMismatch
	}
	return nil
}
