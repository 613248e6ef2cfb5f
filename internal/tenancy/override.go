package tenancy

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

const overrideKeyPrefix = "tenant:override:"

// OverrideStore persists an administrator's chosen city for the session.
type OverrideStore interface {
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, cityID string) error
	Clear(ctx context.Context, userID string) error
}

// RedisOverrideStore keeps the admin city choice in redis with a session TTL.
type RedisOverrideStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOverrideStore(client *redis.Client, ttl time.Duration) *RedisOverrideStore {
	return &RedisOverrideStore{client: client, ttl: ttl}
}

func (s *RedisOverrideStore) Get(ctx context.Context, userID string) (string, error) {
	cityID, err := s.client.Get(ctx, overrideKeyPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	return cityID, err
}

func (s *RedisOverrideStore) Set(ctx context.Context, userID, cityID string) error {
	return s.client.Set(ctx, overrideKeyPrefix+userID, cityID, s.ttl).Err()
}

func (s *RedisOverrideStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, overrideKeyPrefix+userID).Err()
}

// ApplyRequest carries everything a policy may consult: the generic
// resolution, the authenticated actor, and an explicit switch instruction
// (admin query parameter), empty when absent.
type ApplyRequest struct {
	Resolution Resolution
	Actor      *Actor
	SwitchSlug string
}

// ActorPolicy decides the effective tenant for one actor class. The three
// variants form a closed set: ordinary members take the resolver's result,
// moderators are pinned to their home city, administrators may switch.
type ActorPolicy interface {
	Apply(ctx context.Context, req ApplyRequest) Resolution
}

// PolicySet selects the policy for an actor.
type PolicySet struct {
	member    ActorPolicy
	moderator ActorPolicy
	admin     ActorPolicy
}

func NewPolicySet(registry Registry, store OverrideStore, reporter *IncidentReporter, logger *logger.Logger) *PolicySet {
	return &PolicySet{
		member:    memberPolicy{},
		moderator: moderatorPolicy{registry: registry, logger: logger},
		admin: adminPolicy{
			registry: registry,
			store:    store,
			reporter: reporter,
			logger:   logger,
		},
	}
}

// For returns the policy matching the actor's strongest role. Nil or
// unauthenticated actors get the ordinary-member policy.
func (p *PolicySet) For(actor *Actor) ActorPolicy {
	switch {
	case actor.IsAdmin():
		return p.admin
	case actor.IsModerator():
		return p.moderator
	default:
		return p.member
	}
}

// memberPolicy: no override capability.
type memberPolicy struct{}

func (memberPolicy) Apply(_ context.Context, req ApplyRequest) Resolution {
	return req.Resolution
}

// moderatorPolicy pins moderators to their home city. The lock is hard:
// header or path manipulation cannot move a moderator to another city.
type moderatorPolicy struct {
	registry Registry
	logger   *logger.Logger
}

func (p moderatorPolicy) Apply(ctx context.Context, req ApplyRequest) Resolution {
	if req.Actor == nil || req.Actor.HomeCityID == "" {
		return req.Resolution
	}

	home, err := p.registry.ActiveByID(ctx, req.Actor.HomeCityID)
	if err != nil {
		p.logger.Warn("moderator home city unavailable, keeping resolved city",
			zap.String("actor_id", req.Actor.ID),
			zap.String("home_city_id", req.Actor.HomeCityID))
		return req.Resolution
	}

	return Resolution{City: home, Source: SourceRoleLock}
}

// adminPolicy implements the audited admin switcher. Session state lives in
// the override store; every change of the effective city is logged with
// actor, previous city, new city, and source.
type adminPolicy struct {
	registry Registry
	store    OverrideStore
	reporter *IncidentReporter
	logger   *logger.Logger
}

func (p adminPolicy) Apply(ctx context.Context, req ApplyRequest) Resolution {
	actor := req.Actor

	if req.SwitchSlug != "" {
		if res, ok := p.applySwitch(ctx, req); ok {
			return res
		}
		// Invalid switch target: warn only, continue with session/fallback.
	}

	if res, ok := p.applyStoredChoice(ctx, req); ok {
		return res
	}

	return p.applyFallbackChain(ctx, req, actor)
}

// applySwitch handles an explicit "switch to city X" instruction.
func (p adminPolicy) applySwitch(ctx context.Context, req ApplyRequest) (Resolution, bool) {
	city, err := p.registry.ActiveBySlug(ctx, req.SwitchSlug)
	if err != nil {
		p.logger.Warn("ignoring invalid admin city switch",
			zap.String("actor_id", req.Actor.ID),
			zap.String("switch_slug", req.SwitchSlug),
			zap.Error(err))
		p.reporter.Report(ctx, &domain.TenancyIncident{
			Kind:        domain.IncidentInvalidSwitch,
			Fingerprint: "switch:" + req.Actor.ID + ":" + req.SwitchSlug,
			ActorID:     req.Actor.ID,
			Message:     "admin attempted switch to unknown or inactive city " + req.SwitchSlug,
		})
		return Resolution{}, false
	}

	if err := p.store.Set(ctx, req.Actor.ID, city.ID); err != nil {
		p.logger.Warnf("failed to persist admin city choice: %v", err)
	}
	p.logTransition(req.Actor.ID, req.Resolution.City, city, SourceSessionOverride)
	return Resolution{City: city, Source: SourceSessionOverride}, true
}

// applyStoredChoice rebinds to the session's stored choice when it still
// refers to a valid active city. A stale choice is cleared, not substituted.
func (p adminPolicy) applyStoredChoice(ctx context.Context, req ApplyRequest) (Resolution, bool) {
	storedID, err := p.store.Get(ctx, req.Actor.ID)
	if err != nil {
		p.logger.Warnf("failed to read admin city choice: %v", err)
		return Resolution{}, false
	}
	if storedID == "" {
		return Resolution{}, false
	}

	city, err := p.registry.ActiveByID(ctx, storedID)
	if err != nil {
		if errors.Is(err, ErrCityNotAvailable) {
			p.logger.Warn("clearing stale admin city choice",
				zap.String("actor_id", req.Actor.ID),
				zap.String("stored_city_id", storedID))
			p.reporter.Report(ctx, &domain.TenancyIncident{
				Kind:        domain.IncidentStaleOverride,
				Fingerprint: "stale:" + req.Actor.ID,
				ActorID:     req.Actor.ID,
				Message:     "stored admin city choice no longer refers to an active city",
			})
			if err := p.store.Clear(ctx, req.Actor.ID); err != nil {
				p.logger.Warnf("failed to clear stale admin city choice: %v", err)
			}
		}
		return Resolution{}, false
	}

	return Resolution{City: city, Source: SourceSessionOverride}, true
}

// applyFallbackChain picks the first of: the generically resolved city, the
// admin's home city, the first active city by name. The choice becomes the
// new session default.
func (p adminPolicy) applyFallbackChain(ctx context.Context, req ApplyRequest, actor *Actor) Resolution {
	if req.Resolution.City != nil {
		p.persistChoice(ctx, actor.ID, req.Resolution.City, req.Resolution.City)
		return req.Resolution
	}

	if actor.HomeCityID != "" {
		if home, err := p.registry.ActiveByID(ctx, actor.HomeCityID); err == nil {
			p.persistChoice(ctx, actor.ID, nil, home)
			return Resolution{City: home, Source: SourceSessionOverride}
		}
	}

	first, err := p.registry.FirstActiveByName(ctx)
	if err != nil {
		p.logger.Warn("admin fallback chain exhausted, no active city",
			zap.String("actor_id", actor.ID))
		return req.Resolution
	}
	p.persistChoice(ctx, actor.ID, nil, first)
	return Resolution{City: first, Source: SourceSessionOverride}
}

func (p adminPolicy) persistChoice(ctx context.Context, actorID string, previous, chosen *domain.City) {
	if err := p.store.Set(ctx, actorID, chosen.ID); err != nil {
		p.logger.Warnf("failed to persist admin city choice: %v", err)
	}
	p.logTransition(actorID, previous, chosen, SourceFallback)
}

func (p adminPolicy) logTransition(actorID string, previous, next *domain.City, source Source) {
	previousID := ""
	if previous != nil {
		previousID = previous.ID
	}
	if previousID == next.ID {
		return
	}
	p.logger.Info("admin effective city changed",
		zap.String("actor_id", actorID),
		zap.String("previous_city_id", previousID),
		zap.String("new_city_id", next.ID),
		zap.String("source", string(source)))
}
