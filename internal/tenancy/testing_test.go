package tenancy

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

// Shared fakes for tenancy tests.

func testLogger() *logger.Logger {
	return logger.NewLogger("test")
}

type fakeRegistry struct {
	bySlug      map[string]*domain.City
	byDomain    map[string]*domain.City
	byID        map[string]*domain.City
	firstByName *domain.City
}

func newFakeRegistry(cities ...*domain.City) *fakeRegistry {
	r := &fakeRegistry{
		bySlug:   make(map[string]*domain.City),
		byDomain: make(map[string]*domain.City),
		byID:     make(map[string]*domain.City),
	}
	for _, c := range cities {
		r.add(c)
	}
	return r
}

func (r *fakeRegistry) add(c *domain.City) {
	r.bySlug[c.Slug] = c
	r.byID[c.ID] = c
	if c.Domain != "" {
		r.byDomain[c.Domain] = c
	}
	if c.Active && (r.firstByName == nil || c.Name < r.firstByName.Name) {
		r.firstByName = c
	}
}

func (r *fakeRegistry) ActiveBySlug(_ context.Context, slug string) (*domain.City, error) {
	if c, ok := r.bySlug[slug]; ok && c.Active {
		return c, nil
	}
	return nil, ErrCityNotAvailable
}

func (r *fakeRegistry) ActiveByDomain(_ context.Context, host string) (*domain.City, error) {
	if c, ok := r.byDomain[host]; ok && c.Active {
		return c, nil
	}
	return nil, ErrCityNotAvailable
}

func (r *fakeRegistry) ActiveByID(_ context.Context, id string) (*domain.City, error) {
	if c, ok := r.byID[id]; ok && c.Active {
		return c, nil
	}
	return nil, ErrCityNotAvailable
}

func (r *fakeRegistry) FirstActiveByName(_ context.Context) (*domain.City, error) {
	if r.firstByName == nil {
		return nil, ErrCityNotAvailable
	}
	return r.firstByName, nil
}

type fakeIncidentStore struct {
	mu        sync.Mutex
	incidents []*domain.TenancyIncident
	err       error
}

func (s *fakeIncidentStore) Create(_ context.Context, incident *domain.TenancyIncident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.incidents = append(s.incidents, incident)
	return nil
}

func (s *fakeIncidentStore) all() []*domain.TenancyIncident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.TenancyIncident(nil), s.incidents...)
}

type fakeCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int64)}
}

func (c *fakeCounter) Bump(_ context.Context, fingerprint string, _ time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	c.counts[fingerprint]++
	return c.counts[fingerprint], nil
}

func testReporter(store *fakeIncidentStore, counter *fakeCounter) *IncidentReporter {
	return NewIncidentReporter(store, counter, 5, 300*time.Second, testLogger())
}

type fakeOverrideStore struct {
	mu      sync.Mutex
	choices map[string]string
}

func newFakeOverrideStore() *fakeOverrideStore {
	return &fakeOverrideStore{choices: make(map[string]string)}
}

func (s *fakeOverrideStore) Get(_ context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.choices[userID], nil
}

func (s *fakeOverrideStore) Set(_ context.Context, userID, cityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.choices[userID] = cityID
	return nil
}

func (s *fakeOverrideStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.choices, userID)
	return nil
}

type fakeBairroStore struct {
	bairros map[string]*domain.Bairro
}

func (s *fakeBairroStore) GetByID(_ context.Context, id string) (*domain.Bairro, error) {
	if b, ok := s.bairros[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}
