package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/internal/mocks"
	"github.com/munigo/civic-portal-api/internal/tenancy"
)

type RestrictionServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockRestriction *mocks.RestrictionRepository
	service         *RestrictionService
}

func (s *RestrictionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockRestriction = new(mocks.RestrictionRepository)
	s.mockRepo.On("Restriction").Return(s.mockRestriction)
	s.service = NewRestrictionService(s.mockRepo)
}

func TestRestrictionService(t *testing.T) {
	suite.Run(t, new(RestrictionServiceTestSuite))
}

func moderatorCtx(cityID, actorID string) context.Context {
	ctx := tenancy.WithContext(context.Background(), &tenancy.Context{
		City:   &domain.City{ID: cityID, Slug: "tijucas-sc", Active: true},
		Source: tenancy.SourceRoleLock,
	})
	return tenancy.WithActor(ctx, &tenancy.Actor{
		ID:         actorID,
		Roles:      []string{string(domain.RoleModerator)},
		HomeCityID: cityID,
	})
}

func (s *RestrictionServiceTestSuite) TestCreate_PinsToBoundCity() {
	ctx := moderatorCtx("city1", "mod1")
	req := dto.CreateRestrictionRequest{
		UserID: "user1",
		Type:   "MUTE",
		Reason: "Repeated spam",
	}

	s.mockRestriction.On("Create", ctx, mock.AnythingOfType("*domain.Restriction")).Return(nil)

	result, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Require().NotNil(result.ScopeCityID)
	s.Equal("city1", *result.ScopeCityID)
	s.Equal("mod1", result.CreatedBy)
	s.False(result.StartsAt.IsZero())
	s.mockRestriction.AssertExpectations(s.T())
}

func (s *RestrictionServiceTestSuite) TestCreate_GlobalScope() {
	ctx := moderatorCtx("city1", "mod1")
	req := dto.CreateRestrictionRequest{
		UserID: "user1",
		Type:   "FULL_BAN",
		Global: true,
	}

	s.mockRestriction.On("Create", ctx, mock.MatchedBy(func(r *domain.Restriction) bool {
		return r.ScopeCityID == nil
	})).Return(nil)

	result, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Nil(result.ScopeCityID)
	s.mockRestriction.AssertExpectations(s.T())
}

func (s *RestrictionServiceTestSuite) TestCreate_InvalidType() {
	ctx := moderatorCtx("city1", "mod1")
	req := dto.CreateRestrictionRequest{
		UserID: "user1",
		Type:   "TIMEOUT",
	}

	result, err := s.service.Create(ctx, req)

	s.ErrorIs(err, ErrInvalidRestrictionType)
	s.Nil(result)
	s.mockRestriction.AssertNotCalled(s.T(), "Create")
}

func (s *RestrictionServiceTestSuite) TestCreate_CityScopeWithoutBinding() {
	ctx := tenancy.WithActor(context.Background(), &tenancy.Actor{ID: "mod1"})
	req := dto.CreateRestrictionRequest{
		UserID: "user1",
		Type:   "MUTE",
	}

	result, err := s.service.Create(ctx, req)

	s.ErrorIs(err, tenancy.ErrCityRequired)
	s.Nil(result)
	s.mockRestriction.AssertNotCalled(s.T(), "Create")
}

func (s *RestrictionServiceTestSuite) TestFirstBlocking_PassesBoundCity() {
	ctx := moderatorCtx("city1", "mod1")

	s.mockRestriction.On("FirstBlocking", ctx, "user1", "reports", blockingTypes, mock.MatchedBy(func(cityID *string) bool {
		return cityID != nil && *cityID == "city1"
	}), mock.AnythingOfType("time.Time")).
		Return(&domain.Restriction{ID: "r1", UserID: "user1", Type: domain.RestrictionPostBan, StartsAt: time.Now().Add(-time.Hour)}, nil)

	result, err := s.service.FirstBlocking(ctx, "user1", "reports", blockingTypes)

	s.NoError(err)
	s.Require().NotNil(result)
	s.Equal("r1", result.ID)
	s.mockRestriction.AssertExpectations(s.T())
}

func (s *RestrictionServiceTestSuite) TestFirstBlocking_DropsUnknownTypes() {
	ctx := moderatorCtx("city1", "mod1")
	types := []domain.RestrictionType{"TIMEOUT", domain.RestrictionPostBan}

	s.mockRestriction.On("FirstBlocking", ctx, "user1", "reports",
		[]domain.RestrictionType{domain.RestrictionPostBan},
		mock.AnythingOfType("*string"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	result, err := s.service.FirstBlocking(ctx, "user1", "reports", types)

	s.NoError(err)
	s.Nil(result)
	s.mockRestriction.AssertExpectations(s.T())
}

func (s *RestrictionServiceTestSuite) TestFirstBlocking_NoRecognizedTypes() {
	ctx := moderatorCtx("city1", "mod1")

	result, err := s.service.FirstBlocking(ctx, "user1", "reports", []domain.RestrictionType{"TIMEOUT"})

	s.NoError(err)
	s.Nil(result)
	s.mockRestriction.AssertNotCalled(s.T(), "FirstBlocking")
}

func (s *RestrictionServiceTestSuite) TestRevoke() {
	ctx := moderatorCtx("city1", "mod1")

	s.mockRestriction.On("Revoke", ctx, "r1", mock.AnythingOfType("time.Time")).Return(nil)

	s.NoError(s.service.Revoke(ctx, "r1"))
	s.mockRestriction.AssertExpectations(s.T())
}
