package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const eventChannel = "builder:requests"

// Event is the compact per-request telemetry record published to the event
// stream for dashboards and internal consumers.
type Event struct {
	RequestID        string `json:"requestId"`
	TemplateID       string `json:"templateId,omitempty"`
	MatchScore       int    `json:"matchScore"`
	WarningCount     int    `json:"warningCount"`
	GenerationTimeMs int64  `json:"generationTimeMs"`
	Success          bool   `json:"success"`
}

// EventPublisher publishes request outcomes to a Redis pubsub channel. A
// publisher built without a client is a no-op.
type EventPublisher struct {
	redis *redis.Client
}

func NewEventPublisher(redisClient *redis.Client) *EventPublisher {
	return &EventPublisher{redis: redisClient}
}

// Publish emits the event. Unconfigured publishers return nil immediately.
func (p *EventPublisher) Publish(ctx context.Context, event Event) error {
	if p.redis == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.redis.Publish(ctx, eventChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
