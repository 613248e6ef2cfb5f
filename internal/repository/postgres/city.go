package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
)

type CityRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCityRepository(writerDB, readerDB *gorm.DB) *CityRepository {
	return &CityRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CityRepository) GetBySlug(ctx context.Context, slug string) (*domain.City, error) {
	var city domain.City
	if err := r.readerDB.WithContext(ctx).First(&city, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) GetByDomain(ctx context.Context, host string) (*domain.City, error) {
	var city domain.City
	if err := r.readerDB.WithContext(ctx).First(&city, "domain = ?", host).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	var city domain.City
	if err := r.readerDB.WithContext(ctx).First(&city, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) FirstActiveByName(ctx context.Context) (*domain.City, error) {
	var city domain.City
	if err := r.readerDB.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) ListActive(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	if err := r.readerDB.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}
