package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type IncidentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	scope    *tenancy.Scope
}

func NewIncidentRepository(writerDB, readerDB *gorm.DB, scope *tenancy.Scope) *IncidentRepository {
	return &IncidentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
		scope:    scope,
	}
}

func (r *IncidentRepository) Create(ctx context.Context, incident *domain.TenancyIncident) error {
	if incident.ID == "" {
		incident.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(incident).Error
}

func (r *IncidentRepository) List(ctx context.Context, filter domain.TenancyIncidentFilter) ([]domain.TenancyIncident, error) {
	db := r.readerDB.WithContext(ctx)

	if filter.CityID != "" {
		db = db.Where("city_id = ?", filter.CityID)
	}
	if filter.Kind != "" {
		db = db.Where("kind = ?", filter.Kind)
	}
	if filter.Severity != "" {
		db = db.Where("severity = ?", filter.Severity)
	}
	if filter.ActorID != "" {
		db = db.Where("actor_id = ?", filter.ActorID)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("occurred_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("occurred_at <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var incidents []domain.TenancyIncident
	if err := db.Order("occurred_at DESC").Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

// ListForCity runs in worker context with no tenant bound, so the city is
// named explicitly through the scope.
func (r *IncidentRepository) ListForCity(ctx context.Context, cityID string, before time.Time) ([]domain.TenancyIncident, error) {
	var incidents []domain.TenancyIncident
	db := r.scope.ForCity(r.readerDB.WithContext(ctx), cityID)
	if err := db.
		Where("occurred_at < ?", before).
		Order("occurred_at ASC").
		Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *IncidentRepository) DeleteBeforeDate(ctx context.Context, cityID string, beforeDate time.Time) (int64, error) {
	result := r.scope.ForCity(r.writerDB.WithContext(ctx), cityID).
		Where("occurred_at < ?", beforeDate).
		Delete(&domain.TenancyIncident{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
