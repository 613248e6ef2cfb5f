package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/munigo/civic-portal-api/internal/config"
	"github.com/munigo/civic-portal-api/internal/repository"
	"github.com/munigo/civic-portal-api/internal/repository/opensearch"
	"github.com/munigo/civic-portal-api/internal/repository/postgres"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	osRepo       repository.OpenSearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, scope *tenancy.Scope, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections, scope),
		osRepo:       opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) City() repository.CityRepository {
	return r.postgresRepo.City()
}

func (r *compositeRepository) Bairro() repository.BairroRepository {
	return r.postgresRepo.Bairro()
}

func (r *compositeRepository) Report() repository.ReportRepository {
	return r.postgresRepo.Report()
}

func (r *compositeRepository) Restriction() repository.RestrictionRepository {
	return r.postgresRepo.Restriction()
}

func (r *compositeRepository) Incident() repository.IncidentRepository {
	return r.postgresRepo.Incident()
}

func (r *compositeRepository) OpenSearch() repository.OpenSearchRepository {
	return r.osRepo
}
