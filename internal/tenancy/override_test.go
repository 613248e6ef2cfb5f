package tenancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/munigo/civic-portal-api/internal/domain"
)

type OverrideTestSuite struct {
	suite.Suite
	registry *fakeRegistry
	store    *fakeOverrideStore
	incs     *fakeIncidentStore
	policies *PolicySet
	tijucas  *domain.City
	itapema  *domain.City
	porto    *domain.City
}

func (s *OverrideTestSuite) SetupTest() {
	s.tijucas = &domain.City{ID: "city-tijucas", Slug: "tijucas-sc", Name: "Tijucas", Active: true}
	s.itapema = &domain.City{ID: "city-itapema", Slug: "itapema-sc", Name: "Itapema", Active: true}
	s.porto = &domain.City{ID: "city-porto", Slug: "porto-belo-sc", Name: "Porto Belo", Active: true}
	s.registry = newFakeRegistry(s.tijucas, s.itapema, s.porto)
	s.store = newFakeOverrideStore()
	s.incs = &fakeIncidentStore{}
	reporter := testReporter(s.incs, newFakeCounter())
	s.policies = NewPolicySet(s.registry, s.store, reporter, testLogger())
}

func TestOverridePolicies(t *testing.T) {
	suite.Run(t, new(OverrideTestSuite))
}

func (s *OverrideTestSuite) resolved(city *domain.City) Resolution {
	return Resolution{City: city, Source: SourceHeader}
}

func (s *OverrideTestSuite) TestMemberKeepsResolution() {
	actor := &Actor{ID: "user1", Roles: []string{"member"}, HomeCityID: s.itapema.ID}
	policy := s.policies.For(actor)

	res := policy.Apply(context.Background(), ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor})

	s.Equal(s.tijucas.ID, res.City.ID)
	s.Equal(SourceHeader, res.Source)
}

func (s *OverrideTestSuite) TestModeratorPinnedToHomeCity() {
	actor := &Actor{ID: "mod1", Roles: []string{"moderator"}, HomeCityID: s.itapema.ID}
	policy := s.policies.For(actor)

	// Header said Tijucas, but the moderator is locked to Itapema.
	res := policy.Apply(context.Background(), ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor})

	s.Equal(s.itapema.ID, res.City.ID)
	s.Equal(SourceRoleLock, res.Source)
}

func (s *OverrideTestSuite) TestModeratorInactiveHomeKeepsResolution() {
	s.registry.add(&domain.City{ID: "city-dead", Slug: "dead-sc", Name: "Desativada", Active: false})
	actor := &Actor{ID: "mod2", Roles: []string{"moderator"}, HomeCityID: "city-dead"}
	policy := s.policies.For(actor)

	res := policy.Apply(context.Background(), ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor})

	s.Equal(s.tijucas.ID, res.City.ID)
	s.Equal(SourceHeader, res.Source)
}

func (s *OverrideTestSuite) TestModeratorWithoutHomeKeepsResolution() {
	actor := &Actor{ID: "mod3", Roles: []string{"moderator"}}
	policy := s.policies.For(actor)

	res := policy.Apply(context.Background(), ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor})

	s.Equal(s.tijucas.ID, res.City.ID)
}

func (s *OverrideTestSuite) TestAdminSwitchPersistsChoice() {
	ctx := context.Background()
	actor := &Actor{ID: "admin1", Roles: []string{"admin"}}
	policy := s.policies.For(actor)

	res := policy.Apply(ctx, ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor, SwitchSlug: "itapema-sc"})

	s.Equal(s.itapema.ID, res.City.ID)
	s.Equal(SourceSessionOverride, res.Source)

	// Subsequent request without a switch instruction keeps the choice.
	res = policy.Apply(ctx, ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor})
	s.Equal(s.itapema.ID, res.City.ID)
	s.Equal(SourceSessionOverride, res.Source)
}

func (s *OverrideTestSuite) TestAdminInvalidSwitchIgnored() {
	ctx := context.Background()
	actor := &Actor{ID: "admin2", Roles: []string{"admin"}}
	policy := s.policies.For(actor)

	policy.Apply(ctx, ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor, SwitchSlug: "itapema-sc"})
	res := policy.Apply(ctx, ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor, SwitchSlug: "nowhere-xx"})

	// Prior session choice is unchanged.
	s.Equal(s.itapema.ID, res.City.ID)
	s.Equal(SourceSessionOverride, res.Source)

	incidents := s.incs.all()
	s.Require().Len(incidents, 1)
	s.Equal(domain.IncidentInvalidSwitch, incidents[0].Kind)
	s.Equal("admin2", incidents[0].ActorID)
}

func (s *OverrideTestSuite) TestAdminStaleChoiceClearedAndFallsBack() {
	ctx := context.Background()
	actor := &Actor{ID: "admin3", Roles: []string{"admin"}}
	policy := s.policies.For(actor)

	s.Require().NoError(s.store.Set(ctx, actor.ID, "city-gone"))

	res := policy.Apply(ctx, ApplyRequest{Resolution: s.resolved(s.tijucas), Actor: actor})

	// Fallback chain lands on the request's resolved city and persists it.
	s.Equal(s.tijucas.ID, res.City.ID)
	stored, _ := s.store.Get(ctx, actor.ID)
	s.Equal(s.tijucas.ID, stored)

	incidents := s.incs.all()
	s.Require().Len(incidents, 1)
	s.Equal(domain.IncidentStaleOverride, incidents[0].Kind)
}

func (s *OverrideTestSuite) TestAdminFallbackToHomeCity() {
	ctx := context.Background()
	actor := &Actor{ID: "admin4", Roles: []string{"admin"}, HomeCityID: s.porto.ID}
	policy := s.policies.For(actor)

	res := policy.Apply(ctx, ApplyRequest{Resolution: Resolution{}, Actor: actor})

	s.Equal(s.porto.ID, res.City.ID)
	s.Equal(SourceSessionOverride, res.Source)
	stored, _ := s.store.Get(ctx, actor.ID)
	s.Equal(s.porto.ID, stored)
}

func (s *OverrideTestSuite) TestAdminFallbackToFirstActiveByName() {
	ctx := context.Background()
	actor := &Actor{ID: "admin5", Roles: []string{"admin"}}
	policy := s.policies.For(actor)

	res := policy.Apply(ctx, ApplyRequest{Resolution: Resolution{}, Actor: actor})

	// "Itapema" sorts before "Porto Belo" and "Tijucas".
	s.Equal(s.itapema.ID, res.City.ID)
	s.Equal(SourceSessionOverride, res.Source)
}

func (s *OverrideTestSuite) TestPolicySelection() {
	s.IsType(memberPolicy{}, s.policies.For(&Actor{Roles: []string{"member"}}))
	s.IsType(memberPolicy{}, s.policies.For(nil))
	s.IsType(moderatorPolicy{}, s.policies.For(&Actor{Roles: []string{"moderator"}}))
	s.IsType(adminPolicy{}, s.policies.For(&Actor{Roles: []string{"admin", "moderator"}}))
}
