package tenancy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

const escalationKeyPrefix = "incident:count:"

// IncidentStore persists incidents, implemented by the postgres repository.
type IncidentStore interface {
	Create(ctx context.Context, incident *domain.TenancyIncident) error
}

// IncidentCounter counts recent occurrences of an incident fingerprint
// within the escalation window.
type IncidentCounter interface {
	Bump(ctx context.Context, fingerprint string, window time.Duration) (int64, error)
}

// IncidentPublisher fans an incident out to live subscribers (websocket
// clients through redis pub/sub).
type IncidentPublisher interface {
	PublishIncident(ctx context.Context, incident *domain.TenancyIncident) error
}

// IncidentEnqueuer hands the incident to the async indexing pipeline.
type IncidentEnqueuer interface {
	SendIndexMessage(ctx context.Context, incident *domain.TenancyIncident) error
}

// IncidentReporter records tenancy anomalies. It never returns an error:
// observability failures must not block the primary request, so every
// downstream failure is logged and swallowed.
type IncidentReporter struct {
	store     IncidentStore
	counter   IncidentCounter
	publisher IncidentPublisher
	enqueuer  IncidentEnqueuer
	threshold int64
	window    time.Duration
	logger    *logger.Logger
}

func NewIncidentReporter(
	store IncidentStore,
	counter IncidentCounter,
	threshold int64,
	window time.Duration,
	logger *logger.Logger,
) *IncidentReporter {
	return &IncidentReporter{
		store:     store,
		counter:   counter,
		threshold: threshold,
		window:    window,
		logger:    logger,
	}
}

// SetPublisher wires the live incident stream. Optional.
func (r *IncidentReporter) SetPublisher(publisher IncidentPublisher) {
	r.publisher = publisher
}

// SetEnqueuer wires async search indexing. Optional.
func (r *IncidentReporter) SetEnqueuer(enqueuer IncidentEnqueuer) {
	r.enqueuer = enqueuer
}

// Report persists the incident and emits a log line. Severity starts at
// WARNING and escalates to CRITICAL once the same fingerprint recurs past
// the configured threshold within the window.
func (r *IncidentReporter) Report(ctx context.Context, incident *domain.TenancyIncident) {
	if incident.ID == "" {
		incident.ID = uuid.New().String()
	}
	if incident.OccurredAt.IsZero() {
		incident.OccurredAt = time.Now()
	}
	if incident.CityID == "" {
		incident.CityID = CityID(ctx)
	}
	if incident.ActorID == "" {
		incident.ActorID = ActorID(ctx)
	}
	if incident.Severity == "" {
		incident.Severity = domain.SeverityWarning
	}

	count, err := r.counter.Bump(ctx, incident.Fingerprint, r.window)
	if err != nil {
		// Fail open: escalation is best-effort.
		r.logger.Warnf("incident counter unavailable for %s: %v", incident.Fingerprint, err)
	} else if count >= r.threshold {
		incident.Severity = domain.SeverityCritical
	}

	fields := []zap.Field{
		zap.String("kind", string(incident.Kind)),
		zap.String("fingerprint", incident.Fingerprint),
		zap.String("severity", string(incident.Severity)),
		zap.String("city_id", incident.CityID),
		zap.String("actor_id", incident.ActorID),
	}
	if incident.Severity == domain.SeverityCritical {
		r.logger.Error("tenancy incident", nil, fields...)
	} else {
		r.logger.Warn("tenancy incident", fields...)
	}

	if err := r.store.Create(ctx, incident); err != nil {
		r.logger.Error("failed to persist tenancy incident", err,
			zap.String("fingerprint", incident.Fingerprint))
		return
	}

	if r.publisher != nil {
		if err := r.publisher.PublishIncident(ctx, incident); err != nil {
			r.logger.Warnf("failed to publish tenancy incident: %v", err)
		}
	}
	if r.enqueuer != nil {
		if err := r.enqueuer.SendIndexMessage(ctx, incident); err != nil {
			r.logger.Warnf("failed to enqueue tenancy incident for indexing: %v", err)
		}
	}
}

// ReportMismatch records a header/path tenant-signal disagreement. One
// escalation counter per (host, header slug, path slug) triple.
func (r *IncidentReporter) ReportMismatch(ctx context.Context, host, headerSlug, pathSlug string) {
	r.Report(ctx, &domain.TenancyIncident{
		Kind:        domain.IncidentHeaderPathMismatch,
		Fingerprint: MismatchFingerprint(host, headerSlug, pathSlug),
		Host:        host,
		Message:     fmt.Sprintf("header city %q disagrees with path city %q", headerSlug, pathSlug),
	})
}

// MismatchFingerprint identifies a recurring header/path disagreement.
func MismatchFingerprint(host, headerSlug, pathSlug string) string {
	return fmt.Sprintf("mismatch:%s:%s:%s", host, headerSlug, pathSlug)
}

// RedisIncidentCounter counts fingerprints in redis with a sliding expiry.
type RedisIncidentCounter struct {
	client *redis.Client
}

func NewRedisIncidentCounter(client *redis.Client) *RedisIncidentCounter {
	return &RedisIncidentCounter{client: client}
}

func (c *RedisIncidentCounter) Bump(ctx context.Context, fingerprint string, window time.Duration) (int64, error) {
	key := escalationKeyPrefix + fingerprint

	pipe := c.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
