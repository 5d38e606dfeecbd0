package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"course_content_service/internal/content/domain"
	"course_content_service/pkg/database"
	"course_content_service/pkg/logger"
)

// EventPublisher emits content change events. Implementations must be
// fire-and-forget: a publish failure is logged, never returned.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ContentEvent)
}

type kafkaEventPublisher struct {
	repo database.KafkaRepo
}

// NewEventPublisher create an EventPublisher backed by a kafka writer
func NewEventPublisher(repo database.KafkaRepo) EventPublisher {
	return &kafkaEventPublisher{repo: repo}
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, event domain.ContentEvent) {
	event.OccurredAt = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Warn("content event dropped, marshal failed", zap.Error(err))
		return
	}

	err = p.repo.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID),
		Value: payload,
	})
	if err != nil {
		logger.Log.Warn("content event publish failed",
			zap.String("entity", string(event.Entity)),
			zap.String("entity_id", event.EntityID),
			zap.Error(err))
	}
}

// NopEventPublisher discards every event. Used when the service runs
// without a broker.
type NopEventPublisher struct{}

// Publish drop the event
func (NopEventPublisher) Publish(_ context.Context, _ domain.ContentEvent) {}
