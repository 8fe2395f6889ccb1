// Package notify delivers session start notifications to node daemons over
// Redis pub/sub and relays them to operators through a websocket feed.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ShahiTechnovation/X4PN/pkg/session"
)

// Channel returns the pub/sub channel carrying session starts for a node.
func Channel(prefix string, nodeID uuid.UUID) string {
	return fmt.Sprintf("%s:node:%s:sessions", prefix, nodeID)
}

// RedisBus publishes and subscribes to per-node session channels.
type RedisBus struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisBus creates a bus whose channels live under prefix.
func NewRedisBus(client redis.UniversalClient, prefix string) *RedisBus {
	return &RedisBus{client: client, prefix: prefix}
}

// PublishSessionStarted sends n to the node's channel. Delivery is best effort:
// a node with no subscriber simply misses the message.
func (b *RedisBus) PublishSessionStarted(ctx context.Context, n *session.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := b.client.Publish(ctx, Channel(b.prefix, n.NodeID), payload).Err(); err != nil {
		return fmt.Errorf("publish to redis: %w", err)
	}
	return nil
}

// Subscribe listens on the node's channel. The subscription is confirmed
// before returning; the caller must Close it.
func (b *RedisBus) Subscribe(ctx context.Context, nodeID uuid.UUID) (*redis.PubSub, error) {
	sub := b.client.Subscribe(ctx, Channel(b.prefix, nodeID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to redis: %w", err)
	}
	return sub, nil
}
