package postgres

import (
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/config"
	"github.com/munigo/civic-portal-api/internal/repository"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type postgresRepository struct {
	writerDB        *gorm.DB
	readerDB        *gorm.DB
	cityRepo        repository.CityRepository
	bairroRepo      repository.BairroRepository
	reportRepo      repository.ReportRepository
	restrictionRepo repository.RestrictionRepository
	incidentRepo    repository.IncidentRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections, scope *tenancy.Scope) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:        dbConnections.Writer,
		readerDB:        dbConnections.Reader,
		cityRepo:        NewCityRepository(dbConnections.Writer, dbConnections.Reader),
		bairroRepo:      NewBairroRepository(dbConnections.Reader),
		reportRepo:      NewReportRepository(dbConnections.Writer, dbConnections.Reader, scope),
		restrictionRepo: NewRestrictionRepository(dbConnections.Writer, dbConnections.Reader),
		incidentRepo:    NewIncidentRepository(dbConnections.Writer, dbConnections.Reader, scope),
	}
}

func (r *postgresRepository) City() repository.CityRepository {
	return r.cityRepo
}

func (r *postgresRepository) Bairro() repository.BairroRepository {
	return r.bairroRepo
}

func (r *postgresRepository) Report() repository.ReportRepository {
	return r.reportRepo
}

func (r *postgresRepository) Restriction() repository.RestrictionRepository {
	return r.restrictionRepo
}

func (r *postgresRepository) Incident() repository.IncidentRepository {
	return r.incidentRepo
}
