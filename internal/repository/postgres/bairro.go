package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
)

type BairroRepository struct {
	readerDB *gorm.DB
}

func NewBairroRepository(readerDB *gorm.DB) *BairroRepository {
	return &BairroRepository{readerDB: readerDB}
}

func (r *BairroRepository) GetByID(ctx context.Context, id string) (*domain.Bairro, error) {
	var bairro domain.Bairro
	if err := r.readerDB.WithContext(ctx).First(&bairro, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bairro, nil
}

func (r *BairroRepository) ListByCity(ctx context.Context, cityID string) ([]domain.Bairro, error) {
	var bairros []domain.Bairro
	if err := r.readerDB.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("name ASC").
		Find(&bairros).Error; err != nil {
		return nil, err
	}
	return bairros, nil
}
