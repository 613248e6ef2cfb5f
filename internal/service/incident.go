package service

import (
	"context"
	"fmt"
	"time"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/repository"
)

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, incident *domain.TenancyIncident) error
	SendBulkIndexMessage(ctx context.Context, incidents []domain.TenancyIncident) error
	SendArchiveMessage(ctx context.Context, cityID string, beforeDate time.Time) error
	SendCleanupMessage(ctx context.Context, cityID string, beforeDate time.Time) error
}

type IncidentService struct {
	repo   repository.Repository
	sqsSvc SQSService
}

func NewIncidentService(repo repository.Repository, sqsSvc SQSService) *IncidentService {
	return &IncidentService{
		repo:   repo,
		sqsSvc: sqsSvc,
	}
}

func (s *IncidentService) List(ctx context.Context, filter *domain.TenancyIncidentFilter) ([]dto.IncidentResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	// Use OpenSearch when the filter carries criteria that benefit from it
	if s.hasSearchCriteria(filter) {
		incidents, err := s.repo.OpenSearch().Search(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.FromIncidents(incidents), nil
	}

	// Otherwise, use PostgreSQL for simple listing
	incidents, err := s.repo.Incident().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromIncidents(incidents), nil
}

// GetStats aggregates incident counts by kind and severity over the
// filtered window.
func (s *IncidentService) GetStats(ctx context.Context, filter *domain.TenancyIncidentFilter) (*dto.GetIncidentStatsResponse, error) {
	incidents, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &dto.GetIncidentStatsResponse{
		TotalIncidents: int64(len(incidents)),
		KindCounts:     make(map[string]int64),
		SeverityCounts: make(map[string]int64),
	}

	for _, incident := range incidents {
		stats.KindCounts[incident.Kind]++
		stats.SeverityCounts[incident.Severity]++
	}

	return stats, nil
}

// ScheduleArchive schedules an archive of a city's incidents by sending a
// message to SQS.
func (s *IncidentService) ScheduleArchive(ctx context.Context, cityID string, beforeDate time.Time) error {
	if cityID == "" {
		return fmt.Errorf("city id is required to schedule an archive")
	}
	return s.sqsSvc.SendArchiveMessage(ctx, cityID, beforeDate)
}

// hasSearchCriteria checks if the filter contains criteria that would
// benefit from OpenSearch
func (s *IncidentService) hasSearchCriteria(filter *domain.TenancyIncidentFilter) bool {
	return filter.Kind != "" ||
		filter.Severity != "" ||
		filter.ActorID != "" ||
		!filter.StartTime.IsZero() ||
		!filter.EndTime.IsZero()
}
