package tenancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/munigo/civic-portal-api/internal/domain"
)

func TestReporter_FillsDefaults(t *testing.T) {
	store := &fakeIncidentStore{}
	reporter := NewIncidentReporter(store, newFakeCounter(), 5, 300*time.Second, testLogger())

	city := &domain.City{ID: "city1", Slug: "tijucas-sc", Active: true}
	ctx := WithContext(context.Background(), &Context{City: city, Source: SourceHeader})
	ctx = WithActor(ctx, &Actor{ID: "user1"})

	reporter.Report(ctx, &domain.TenancyIncident{
		Kind:        domain.IncidentUnscopedQuery,
		Fingerprint: "fp1",
		Message:     "test",
	})

	incidents := store.all()
	assert.Len(t, incidents, 1)
	inc := incidents[0]
	assert.NotEmpty(t, inc.ID)
	assert.False(t, inc.OccurredAt.IsZero())
	assert.Equal(t, "city1", inc.CityID)
	assert.Equal(t, "user1", inc.ActorID)
	assert.Equal(t, domain.SeverityWarning, inc.Severity)
}

func TestReporter_EscalatesAtThreshold(t *testing.T) {
	store := &fakeIncidentStore{}
	reporter := NewIncidentReporter(store, newFakeCounter(), 3, time.Minute, testLogger())

	for i := 0; i < 4; i++ {
		reporter.Report(context.Background(), &domain.TenancyIncident{
			Kind:        domain.IncidentHeaderPathMismatch,
			Fingerprint: "same",
			Message:     "test",
		})
	}

	incidents := store.all()
	assert.Len(t, incidents, 4)
	assert.Equal(t, domain.SeverityWarning, incidents[0].Severity)
	assert.Equal(t, domain.SeverityWarning, incidents[1].Severity)
	assert.Equal(t, domain.SeverityCritical, incidents[2].Severity)
	assert.Equal(t, domain.SeverityCritical, incidents[3].Severity)
}

func TestReporter_DistinctFingerprintsCountSeparately(t *testing.T) {
	store := &fakeIncidentStore{}
	reporter := NewIncidentReporter(store, newFakeCounter(), 2, time.Minute, testLogger())

	reporter.Report(context.Background(), &domain.TenancyIncident{Fingerprint: "a", Message: "x"})
	reporter.Report(context.Background(), &domain.TenancyIncident{Fingerprint: "b", Message: "x"})

	for _, inc := range store.all() {
		assert.Equal(t, domain.SeverityWarning, inc.Severity)
	}
}

func TestReporter_StoreFailureSwallowed(t *testing.T) {
	store := &fakeIncidentStore{err: errors.New("db down")}
	reporter := NewIncidentReporter(store, newFakeCounter(), 5, time.Minute, testLogger())

	// Must not panic or propagate.
	reporter.Report(context.Background(), &domain.TenancyIncident{Fingerprint: "fp", Message: "x"})
	assert.Empty(t, store.all())
}

func TestReporter_CounterFailureFailsOpen(t *testing.T) {
	store := &fakeIncidentStore{}
	counter := newFakeCounter()
	counter.err = errors.New("redis down")
	reporter := NewIncidentReporter(store, counter, 1, time.Minute, testLogger())

	reporter.Report(context.Background(), &domain.TenancyIncident{Fingerprint: "fp", Message: "x"})

	incidents := store.all()
	assert.Len(t, incidents, 1)
	assert.Equal(t, domain.SeverityWarning, incidents[0].Severity)
}

type recordingPublisher struct {
	incidents []*domain.TenancyIncident
}

func (p *recordingPublisher) PublishIncident(_ context.Context, incident *domain.TenancyIncident) error {
	p.incidents = append(p.incidents, incident)
	return nil
}

func TestReporter_PublishesAfterPersist(t *testing.T) {
	store := &fakeIncidentStore{}
	publisher := &recordingPublisher{}
	reporter := NewIncidentReporter(store, newFakeCounter(), 5, time.Minute, testLogger())
	reporter.SetPublisher(publisher)

	reporter.Report(context.Background(), &domain.TenancyIncident{Fingerprint: "fp", Message: "x"})
	assert.Len(t, publisher.incidents, 1)

	// Persistence failure suppresses fan-out.
	store.err = errors.New("db down")
	reporter.Report(context.Background(), &domain.TenancyIncident{Fingerprint: "fp2", Message: "x"})
	assert.Len(t, publisher.incidents, 1)
}
