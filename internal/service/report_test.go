package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/mocks"
	"github.com/munigo/civic-portal-api/internal/tenancy"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockReport      *mocks.ReportRepository
	mockRestriction *mocks.RestrictionRepository
	mockBairro      *mocks.BairroRepository
	service         *ReportService
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockReport = new(mocks.ReportRepository)
	s.mockRestriction = new(mocks.RestrictionRepository)
	s.mockBairro = new(mocks.BairroRepository)

	s.mockRepo.On("Report").Return(s.mockReport)
	s.mockRepo.On("Restriction").Return(s.mockRestriction)

	scope := tenancy.NewScope(s.mockBairro, &logger.Logger{Logger: zap.NewNop()})
	s.service = NewReportService(s.mockRepo, scope)
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func boundCtx(cityID, actorID string) context.Context {
	ctx := tenancy.WithContext(context.Background(), &tenancy.Context{
		City:   &domain.City{ID: cityID, Slug: "tijucas-sc", Active: true},
		Source: tenancy.SourceHeader,
	})
	return tenancy.WithActor(ctx, &tenancy.Actor{ID: actorID, Roles: []string{string(domain.RoleMember)}})
}

func (s *ReportServiceTestSuite) TestCreate_StampsBoundCity() {
	ctx := boundCtx("city1", "user1")
	req := dto.CreateReportRequest{
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
	}

	s.mockRestriction.On("FirstBlocking", ctx, "user1", reportsModuleKey, blockingTypes, mock.AnythingOfType("*string"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	s.mockReport.On("Create", ctx, mock.AnythingOfType("*domain.Report")).Return(nil)

	result, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("city1", result.CityID)
	s.Equal("user1", result.UserID)
	s.Equal(string(domain.ReportStatusOpen), result.Status)
	s.mockReport.AssertExpectations(s.T())
	s.mockRestriction.AssertExpectations(s.T())
}

func (s *ReportServiceTestSuite) TestCreate_RejectedWithoutCity() {
	ctx := tenancy.WithActor(context.Background(), &tenancy.Actor{ID: "user1"})
	req := dto.CreateReportRequest{
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
	}

	s.mockRestriction.On("FirstBlocking", ctx, "user1", reportsModuleKey, blockingTypes, (*string)(nil), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	result, err := s.service.Create(ctx, req)

	s.ErrorIs(err, tenancy.ErrCityRequired)
	s.Nil(result)
	s.mockReport.AssertNotCalled(s.T(), "Create")
}

func (s *ReportServiceTestSuite) TestCreate_RejectedWhenRestricted() {
	ctx := boundCtx("city1", "user1")
	req := dto.CreateReportRequest{
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
	}

	s.mockRestriction.On("FirstBlocking", ctx, "user1", reportsModuleKey, blockingTypes, mock.AnythingOfType("*string"), mock.AnythingOfType("time.Time")).
		Return(&domain.Restriction{ID: "r1", UserID: "user1", Type: domain.RestrictionPostBan}, nil)

	result, err := s.service.Create(ctx, req)

	s.ErrorIs(err, ErrUserRestricted)
	s.Nil(result)
	s.mockReport.AssertNotCalled(s.T(), "Create")
}

func (s *ReportServiceTestSuite) TestCreate_RejectsForeignBairro() {
	ctx := boundCtx("city1", "user1")
	req := dto.CreateReportRequest{
		BairroID: "bairro9",
		Category: "pothole",
		Title:    "Large pothole on Rua XV",
	}

	s.mockRestriction.On("FirstBlocking", ctx, "user1", reportsModuleKey, blockingTypes, mock.AnythingOfType("*string"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	s.mockBairro.On("GetByID", ctx, "bairro9").
		Return(&domain.Bairro{ID: "bairro9", CityID: "city2", Name: "Centro"}, nil)

	result, err := s.service.Create(ctx, req)

	s.ErrorIs(err, tenancy.ErrBairroCityMismatch)
	s.Nil(result)
	s.mockReport.AssertNotCalled(s.T(), "Create")
}

func (s *ReportServiceTestSuite) TestUpdateStatus_RejectsCrossTenantWrite() {
	ctx := boundCtx("city1", "mod1")

	// Scoped GetByID would normally never return a foreign report; simulate a
	// stale binding between read and write.
	s.mockReport.On("GetByID", ctx, "report1").
		Return(&domain.Report{ID: "report1", CityID: "city2", Status: domain.ReportStatusOpen}, nil)

	result, err := s.service.UpdateStatus(ctx, "report1", "IN_PROGRESS")

	s.ErrorIs(err, tenancy.ErrCrossTenantWrite)
	s.Nil(result)
	s.mockReport.AssertNotCalled(s.T(), "Update")
}

func (s *ReportServiceTestSuite) TestUpdateStatus_Success() {
	ctx := boundCtx("city1", "mod1")

	s.mockReport.On("GetByID", ctx, "report1").
		Return(&domain.Report{ID: "report1", CityID: "city1", Status: domain.ReportStatusOpen}, nil)
	s.mockReport.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil)

	result, err := s.service.UpdateStatus(ctx, "report1", "RESOLVED")

	s.NoError(err)
	s.Equal("RESOLVED", result.Status)
	s.mockReport.AssertExpectations(s.T())
}

func (s *ReportServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	ctx := boundCtx("city1", "mod1")

	result, err := s.service.UpdateStatus(ctx, "report1", "DONE")

	s.ErrorIs(err, ErrInvalidReportStatus)
	s.Nil(result)
	s.mockReport.AssertNotCalled(s.T(), "GetByID")
}

func (s *ReportServiceTestSuite) TestList_AppliesPaginationDefaults() {
	ctx := boundCtx("city1", "user1")
	filter := &domain.ReportFilter{}

	expected := []domain.Report{
		{ID: "1", CityID: "city1", Category: "pothole", CreatedAt: time.Now()},
	}
	s.mockReport.On("List", ctx, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.Limit == 10 && f.Offset == 0
	})).Return(expected, nil)

	result, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Len(result, 1)
	s.Equal("1", result[0].ID)
	s.mockReport.AssertExpectations(s.T())
}

func (s *ReportServiceTestSuite) TestListAllCities_UsesBypassRepository() {
	ctx := boundCtx("city1", "admin1")
	filter := &domain.ReportFilter{Page: 2, PageSize: 5}

	s.mockReport.On("ListAllCities", ctx, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.Limit == 5 && f.Offset == 5
	})).Return([]domain.Report{}, nil)

	result, err := s.service.ListAllCities(ctx, filter)

	s.NoError(err)
	s.Empty(result)
	s.mockReport.AssertExpectations(s.T())
}
