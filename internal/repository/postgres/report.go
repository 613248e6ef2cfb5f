package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type ReportRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	scope    *tenancy.Scope
}

func NewReportRepository(writerDB, readerDB *gorm.DB, scope *tenancy.Scope) *ReportRepository {
	return &ReportRepository{
		writerDB: writerDB,
		readerDB: readerDB,
		scope:    scope,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	var report domain.Report
	db := r.scope.Scoped(ctx, r.readerDB.WithContext(ctx))
	if err := db.First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	db := r.scope.Scoped(ctx, r.readerDB.WithContext(ctx))
	return listReports(db, filter)
}

// ListAllCities deliberately reads across tenants, for admin reporting.
func (r *ReportRepository) ListAllCities(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	db := r.scope.AllTenants(ctx, r.readerDB.WithContext(ctx), "ReportRepository.ListAllCities")
	return listReports(db, filter)
}

func (r *ReportRepository) Update(ctx context.Context, report *domain.Report) error {
	return r.writerDB.WithContext(ctx).Save(report).Error
}

func listReports(db *gorm.DB, filter domain.ReportFilter) ([]domain.Report, error) {
	if filter.BairroID != "" {
		db = db.Where("bairro_id = ?", filter.BairroID)
	}
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("created_at DESC")

	var reports []domain.Report
	if err := db.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
