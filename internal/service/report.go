package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/repository"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

// reportsModuleKey scopes restrictions to the citizen-reports module.
const reportsModuleKey = "reports"

// blockingTypes are the restriction types that prevent a user from
// submitting or editing reports. A mute only silences chat, so it does
// not appear here.
var blockingTypes = []domain.RestrictionType{
	domain.RestrictionPostBan,
	domain.RestrictionFullBan,
}

type ReportService struct {
	repo  repository.Repository
	scope *tenancy.Scope
}

func NewReportService(repo repository.Repository, scope *tenancy.Scope) *ReportService {
	return &ReportService{
		repo:  repo,
		scope: scope,
	}
}

func (s *ReportService) Create(ctx context.Context, req dto.CreateReportRequest) (*dto.ReportResponse, error) {
	report := req.ToReport()
	report.UserID = tenancy.ActorID(ctx)

	if err := s.checkRestriction(ctx, report.UserID); err != nil {
		return nil, err
	}

	// Stamp the bound city and verify the bairro belongs to it.
	if err := s.scope.PrepareCreate(ctx, report); err != nil {
		return nil, err
	}

	if err := s.repo.Report().Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	return dto.FromReport(report), nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return dto.FromReport(report), nil
}

func (s *ReportService) List(ctx context.Context, filter *domain.ReportFilter) ([]dto.ReportResponse, error) {
	applyPagination(filter)

	reports, err := s.repo.Report().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromReports(reports), nil
}

// ListAllCities lists reports across every city, for admin reporting.
func (s *ReportService) ListAllCities(ctx context.Context, filter *domain.ReportFilter) ([]dto.ReportResponse, error) {
	applyPagination(filter)

	reports, err := s.repo.Report().ListAllCities(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromReports(reports), nil
}

func (s *ReportService) UpdateStatus(ctx context.Context, id string, status string) (*dto.ReportResponse, error) {
	newStatus := domain.ReportStatus(status)
	switch newStatus {
	case domain.ReportStatusOpen, domain.ReportStatusInProgress,
		domain.ReportStatusResolved, domain.ReportStatusRejected:
	default:
		return nil, ErrInvalidReportStatus
	}

	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	report.Status = newStatus
	report.UpdatedAt = time.Now()

	// The save guard rejects cross-tenant writes even though GetByID was
	// already scoped; a stale binding between read and write stays visible.
	if err := s.scope.GuardSave(ctx, report); err != nil {
		return nil, err
	}

	if err := s.repo.Report().Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return dto.FromReport(report), nil
}

// checkRestriction rejects the write when the user carries an active
// blocking restriction visible in the bound city (global restrictions plus
// restrictions scoped to that city).
func (s *ReportService) checkRestriction(ctx context.Context, userID string) error {
	var cityID *string
	if id := tenancy.CityID(ctx); id != "" {
		cityID = &id
	}

	restriction, err := s.repo.Restriction().FirstBlocking(ctx, userID, reportsModuleKey, blockingTypes, cityID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to check restrictions: %w", err)
	}
	if restriction != nil {
		return ErrUserRestricted
	}
	return nil
}

func applyPagination(filter *domain.ReportFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize
}
