package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// Pub/sub channel names shared with the websocket hub.
const (
	ChannelAll   = "notifications"
	ChannelAdmin = "notifications:admin"
)

// RedisPublisher delivers notifications over Redis pub/sub so any replica's
// websocket hub can fan them out.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// ChannelFor maps an audience to its pub/sub channel.
func ChannelFor(audience domain.Audience) string {
	if audience == domain.AudienceAdmin {
		return ChannelAdmin
	}
	return ChannelAll
}

// Send marshals the notification and publishes it to the audience's channel.
func (p *RedisPublisher) Send(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, ChannelFor(n.Audience), payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
