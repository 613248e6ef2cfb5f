package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/mocks"
)

type IncidentServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockIncident   *mocks.IncidentRepository
	mockOpenSearch *mocks.OpenSearchRepository
	mockSQS        *mocks.SQSService
	service        *IncidentService
}

func (s *IncidentServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockIncident = new(mocks.IncidentRepository)
	s.mockOpenSearch = new(mocks.OpenSearchRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("Incident").Return(s.mockIncident)
	s.mockRepo.On("OpenSearch").Return(s.mockOpenSearch)

	s.service = NewIncidentService(s.mockRepo, s.mockSQS)
}

func TestIncidentService(t *testing.T) {
	suite.Run(t, new(IncidentServiceTestSuite))
}

func (s *IncidentServiceTestSuite) TestList_WithSearchCriteria_UsesOpenSearch() {
	ctx := context.Background()
	filter := &domain.TenancyIncidentFilter{
		Kind:  domain.IncidentHeaderPathMismatch,
		Limit: 20,
	}

	expected := []domain.TenancyIncident{
		{ID: "1", Kind: domain.IncidentHeaderPathMismatch, Severity: domain.SeverityWarning},
	}
	s.mockOpenSearch.On("Search", ctx, filter).Return(expected, nil)

	result, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Len(result, 1)
	s.Equal("1", result[0].ID)
	s.mockOpenSearch.AssertExpectations(s.T())
	s.mockIncident.AssertNotCalled(s.T(), "List")
}

func (s *IncidentServiceTestSuite) TestList_WithoutSearchCriteria_UsesPostgres() {
	ctx := context.Background()
	filter := &domain.TenancyIncidentFilter{CityID: "city1"}

	expected := []domain.TenancyIncident{
		{ID: "1", CityID: "city1", Kind: domain.IncidentInvalidSwitch, Severity: domain.SeverityWarning},
	}
	s.mockIncident.On("List", ctx, mock.AnythingOfType("domain.TenancyIncidentFilter")).Return(expected, nil)

	result, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Len(result, 1)
	s.Equal(50, filter.Limit)
	s.mockIncident.AssertExpectations(s.T())
	s.mockOpenSearch.AssertNotCalled(s.T(), "Search")
}

func (s *IncidentServiceTestSuite) TestGetStats_CountsByKindAndSeverity() {
	ctx := context.Background()
	filter := &domain.TenancyIncidentFilter{CityID: "city1"}

	incidents := []domain.TenancyIncident{
		{ID: "1", Kind: domain.IncidentHeaderPathMismatch, Severity: domain.SeverityWarning},
		{ID: "2", Kind: domain.IncidentHeaderPathMismatch, Severity: domain.SeverityCritical},
		{ID: "3", Kind: domain.IncidentStaleOverride, Severity: domain.SeverityWarning},
	}
	s.mockIncident.On("List", ctx, mock.AnythingOfType("domain.TenancyIncidentFilter")).Return(incidents, nil)

	stats, err := s.service.GetStats(ctx, filter)

	s.NoError(err)
	s.Equal(int64(3), stats.TotalIncidents)
	s.Equal(int64(2), stats.KindCounts[string(domain.IncidentHeaderPathMismatch)])
	s.Equal(int64(1), stats.KindCounts[string(domain.IncidentStaleOverride)])
	s.Equal(int64(2), stats.SeverityCounts[string(domain.SeverityWarning)])
	s.Equal(int64(1), stats.SeverityCounts[string(domain.SeverityCritical)])
}

func (s *IncidentServiceTestSuite) TestScheduleArchive() {
	ctx := context.Background()
	beforeDate := time.Now().AddDate(0, -6, 0)

	s.mockSQS.On("SendArchiveMessage", ctx, "city1", beforeDate).Return(nil)

	s.NoError(s.service.ScheduleArchive(ctx, "city1", beforeDate))
	s.mockSQS.AssertExpectations(s.T())
}

func (s *IncidentServiceTestSuite) TestScheduleArchive_RequiresCity() {
	ctx := context.Background()

	err := s.service.ScheduleArchive(ctx, "", time.Now())

	s.Error(err)
	s.mockSQS.AssertNotCalled(s.T(), "SendArchiveMessage")
}
