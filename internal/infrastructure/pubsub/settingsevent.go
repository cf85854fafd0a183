package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// SettingsChangedEvent announces that admin settings were written on some instance
type SettingsChangedEvent struct {
	Keys      []string `json:"keys"`
	Origin    string   `json:"origin"`
	Timestamp int64    `json:"timestamp"`
}

// SettingsEventHandler is a callback function for handling settings events
type SettingsEventHandler func(ctx context.Context, event SettingsChangedEvent)

const settingsChangeChannel = "estatehub:settings:change"

// RedisSettingsEventBus distributes settings invalidations across instances
// using Redis Pub/Sub
type RedisSettingsEventBus struct {
	client *redis.Client
	origin string
	logger logger.Interface
}

// NewRedisSettingsEventBus creates a bus; origin identifies this instance so it can
// skip its own messages
func NewRedisSettingsEventBus(client *redis.Client, origin string, logger logger.Interface) *RedisSettingsEventBus {
	return &RedisSettingsEventBus{
		client: client,
		origin: origin,
		logger: logger,
	}
}

// PublishChanged publishes the keys that were just written
func (b *RedisSettingsEventBus) PublishChanged(ctx context.Context, keys []string) error {
	data, err := json.Marshal(SettingsChangedEvent{
		Keys:      keys,
		Origin:    b.origin,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, settingsChangeChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish settings change event",
			"keys", keys,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("settings change event published", "keys", keys)
	return nil
}

// Subscribe blocks until ctx is done, calling handler for every event published by
// another instance. ready, when non-nil, is closed once the subscription is active.
func (b *RedisSettingsEventBus) Subscribe(ctx context.Context, handler SettingsEventHandler, ready chan<- struct{}) error {
	pubsub := b.client.Subscribe(ctx, settingsChangeChannel)
	defer pubsub.Close()

	// Wait for subscription confirmation
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to settings change events", "channel", settingsChangeChannel)
	if ready != nil {
		close(ready)
	}

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("settings event subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("settings event channel closed")
				return nil
			}

			var event SettingsChangedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal settings event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			if event.Origin == b.origin {
				continue
			}

			handler(ctx, event)
		}
	}
}
