package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/munigo/civic-portal-api/internal/api/dto"
	"github.com/munigo/civic-portal-api/internal/domain"
	"github.com/munigo/civic-portal-api/pkg/logger"
)

const (
	channelPrefix = "tenancy_incidents:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of city ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(cityID string) string {
	return channelPrefix + cityID
}

// PublishIncident publishes a tenancy incident to the city's Redis channel.
// Implements tenancy.IncidentPublisher.
func (ps *RedisPubSub) PublishIncident(ctx context.Context, incident *domain.TenancyIncident) error {
	message, err := json.Marshal(dto.FromIncident(incident))
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	channel := ps.getChannelName(incident.CityID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to tenancy incidents for a specific city
func (ps *RedisPubSub) Subscribe(ctx context.Context, cityID string, callback func(*dto.IncidentResponse)) error {
	channel := ps.getChannelName(cityID)

	// Check if we're already subscribed to this city's channel
	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[cityID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to city channel: %s", channel)
		return nil
	}

	// Create new subscription
	pubsub := ps.client.Subscribe(ctx, channel)

	// Store the subscriber
	ps.subscriberMu.Lock()
	ps.subscribers[cityID] = pubsub
	ps.subscriberMu.Unlock()

	// Start receiving messages
	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for city channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, cityID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var incident dto.IncidentResponse
				if err := json.Unmarshal([]byte(msg.Payload), &incident); err != nil {
					ps.logger.Errorf("Failed to unmarshal incident from channel %s: %v", channel, err)
					continue
				}
				callback(&incident)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to city channel: %s", channel)
	return nil
}

// Unsubscribe removes subscription for a city
func (ps *RedisPubSub) Unsubscribe(cityID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[cityID]; exists {
		pubsub.Close()
		delete(ps.subscribers, cityID)
		ps.logger.Infof("Unsubscribed from city channel: %s", ps.getChannelName(cityID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for cityID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, cityID)
		ps.logger.Infof("Closed subscription for city channel: %s", ps.getChannelName(cityID))
	}
}
