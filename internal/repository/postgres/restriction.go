package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
)

type RestrictionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRestrictionRepository(writerDB, readerDB *gorm.DB) *RestrictionRepository {
	return &RestrictionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RestrictionRepository) Create(ctx context.Context, restriction *domain.Restriction) error {
	if restriction.ID == "" {
		restriction.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(restriction).Error
}

func (r *RestrictionRepository) FirstBlocking(
	ctx context.Context,
	userID, moduleKey string,
	types []domain.RestrictionType,
	cityID *string,
	now time.Time,
) (*domain.Restriction, error) {
	if len(types) == 0 {
		return nil, nil
	}

	db := r.readerDB.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("type IN ?", types).
		Where("(scope_module_key IS NULL OR scope_module_key = '' OR scope_module_key = ?)", moduleKey).
		Where("starts_at <= ?", now).
		Where("(ends_at IS NULL OR ends_at > ?)", now).
		Where("(revoked_at IS NULL OR revoked_at > ?)", now)

	if cityID != nil {
		db = db.Where("(scope_city_id IS NULL OR scope_city_id = ?)", *cityID)
	} else {
		db = db.Where("scope_city_id IS NULL")
	}

	var restriction domain.Restriction
	err := db.Order("created_at DESC").First(&restriction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restriction, nil
}

func (r *RestrictionRepository) ListForUser(ctx context.Context, userID string) ([]domain.Restriction, error) {
	var restrictions []domain.Restriction
	if err := r.readerDB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&restrictions).Error; err != nil {
		return nil, err
	}
	return restrictions, nil
}

func (r *RestrictionRepository) Revoke(ctx context.Context, id string, revokedAt time.Time) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Restriction{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", revokedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
