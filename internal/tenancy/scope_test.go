package tenancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
)

type ScopeTestSuite struct {
	suite.Suite
	bairros *fakeBairroStore
	scope   *Scope
	tijucas *domain.City
	itapema *domain.City
}

func (s *ScopeTestSuite) SetupTest() {
	s.tijucas = &domain.City{ID: "city-tijucas", Slug: "tijucas-sc", Active: true}
	s.itapema = &domain.City{ID: "city-itapema", Slug: "itapema-sc", Active: true}
	s.bairros = &fakeBairroStore{bairros: map[string]*domain.Bairro{
		"bairro-centro": {ID: "bairro-centro", CityID: "city-tijucas", Name: "Centro"},
		"bairro-meia":   {ID: "bairro-meia", CityID: "city-itapema", Name: "Meia Praia"},
	}}
	s.scope = NewScope(s.bairros, testLogger())
}

func TestScope(t *testing.T) {
	suite.Run(t, new(ScopeTestSuite))
}

func (s *ScopeTestSuite) boundCtx(city *domain.City) context.Context {
	return WithContext(context.Background(), &Context{City: city, Source: SourceHeader})
}

// dryRunDB builds statements without touching a database, so the generated
// WHERE clauses can be asserted directly.
func (s *ScopeTestSuite) dryRunDB() *gorm.DB {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	s.Require().NoError(err)
	return db
}

func (s *ScopeTestSuite) TestScoped_FiltersBoundCity() {
	var reports []domain.Report
	stmt := s.scope.Scoped(s.boundCtx(s.tijucas), s.dryRunDB()).Find(&reports).Statement

	s.Contains(stmt.SQL.String(), "city_id")
	s.Contains(stmt.Vars, "city-tijucas")
}

func (s *ScopeTestSuite) TestScoped_UnboundPassesThrough() {
	var reports []domain.Report
	stmt := s.scope.Scoped(context.Background(), s.dryRunDB()).Find(&reports).Statement

	s.NotContains(stmt.SQL.String(), "city_id")
	s.Empty(stmt.Vars)
}

func (s *ScopeTestSuite) TestForCity_FiltersNamedCity() {
	var incidents []domain.TenancyIncident
	stmt := s.scope.ForCity(s.dryRunDB(), "city-itapema").Find(&incidents).Statement

	s.Contains(stmt.SQL.String(), "city_id")
	s.Contains(stmt.Vars, "city-itapema")
}

func (s *ScopeTestSuite) TestPrepareCreate_StampsBoundCity() {
	report := &domain.Report{Title: "Buraco na rua"}

	err := s.scope.PrepareCreate(s.boundCtx(s.tijucas), report)

	s.NoError(err)
	s.Equal("city-tijucas", report.CityID)
}

func (s *ScopeTestSuite) TestPrepareCreate_KeepsExplicitCity() {
	report := &domain.Report{CityID: "city-tijucas"}

	err := s.scope.PrepareCreate(s.boundCtx(s.tijucas), report)

	s.NoError(err)
	s.Equal("city-tijucas", report.CityID)
}

func (s *ScopeTestSuite) TestPrepareCreate_RejectsWithoutCity() {
	report := &domain.Report{Title: "sem cidade"}

	err := s.scope.PrepareCreate(context.Background(), report)

	s.ErrorIs(err, ErrCityRequired)
}

func (s *ScopeTestSuite) TestPrepareCreate_BairroMismatchRejected() {
	report := &domain.Report{BairroID: "bairro-meia"}

	err := s.scope.PrepareCreate(s.boundCtx(s.tijucas), report)

	s.ErrorIs(err, ErrBairroCityMismatch)
}

func (s *ScopeTestSuite) TestGuardSave_MatchingCityPasses() {
	report := &domain.Report{CityID: "city-tijucas"}

	s.NoError(s.scope.GuardSave(s.boundCtx(s.tijucas), report))
}

func (s *ScopeTestSuite) TestGuardSave_CrossTenantRejected() {
	report := &domain.Report{CityID: "city-tijucas"}

	err := s.scope.GuardSave(s.boundCtx(s.itapema), report)

	s.ErrorIs(err, ErrCrossTenantWrite)
}

func (s *ScopeTestSuite) TestGuardSave_ConsoleContextPasses() {
	// No tenant bound: queue workers and CLI tools act on explicit cities.
	report := &domain.Report{CityID: "city-tijucas"}

	s.NoError(s.scope.GuardSave(context.Background(), report))
}

func (s *ScopeTestSuite) TestGuardSave_BairroChecks() {
	ok := &domain.Report{CityID: "city-tijucas", BairroID: "bairro-centro"}
	s.NoError(s.scope.GuardSave(s.boundCtx(s.tijucas), ok))

	wrongCity := &domain.Report{CityID: "city-tijucas", BairroID: "bairro-meia"}
	s.ErrorIs(s.scope.GuardSave(s.boundCtx(s.tijucas), wrongCity), ErrBairroCityMismatch)

	missing := &domain.Report{CityID: "city-tijucas", BairroID: "bairro-ghost"}
	s.ErrorIs(s.scope.GuardSave(s.boundCtx(s.tijucas), missing), ErrBairroCityMismatch)
}

func (s *ScopeTestSuite) TestGuardSave_BairroCheckAppliesUnbound() {
	report := &domain.Report{CityID: "city-tijucas", BairroID: "bairro-meia"}

	s.ErrorIs(s.scope.GuardSave(context.Background(), report), ErrBairroCityMismatch)
}
