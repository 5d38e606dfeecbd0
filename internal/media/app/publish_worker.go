package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"course_content_service/internal/media/domain"
	"course_content_service/pkg/database"
	"course_content_service/pkg/logger"
)

// Consumer drains the publish queue and promotes staged objects to the
// public prefix.
type Consumer struct {
	rabbitChannel *amqp.Channel
	minioClient   database.MinIOClientRepo
	queueName     string
}

// NewConsumer create a Consumer
func NewConsumer(rabbitChannel *amqp.Channel, minioClient database.MinIOClientRepo, queueName string) *Consumer {
	return &Consumer{
		rabbitChannel: rabbitChannel,
		minioClient:   minioClient,
		queueName:     queueName,
	}
}

// StartConsumer consumes publish jobs until the context is cancelled.
// A job that cannot be processed is nacked back onto the queue after a
// pause so a transient storage failure does not spin the consumer.
func (c *Consumer) StartConsumer(ctx context.Context) {
	msgs, err := c.rabbitChannel.Consume(
		c.queueName,
		"",    // consumer tag assigned by the broker
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Log.Fatal("cannot consume publish queue", zap.Error(err))
	}

	logger.Log.Info("publish worker started", zap.String("queue", c.queueName))

	for {
		select {
		case d, ok := <-msgs:
			if !ok {
				logger.Log.Warn("publish queue channel closed")
				return
			}

			var job domain.PublishJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				logger.Log.Errorf("unreadable publish job:", err)
				if err := d.Nack(false, false); err != nil {
					logger.Log.Errorf("nack failed:", err)
				}
				continue
			}

			if err := c.processPublishJob(ctx, job); err != nil {
				logger.Log.Errorf("publish job failed:", err,
					zap.String("staging_object", job.StagingObject))
				time.Sleep(10 * time.Second)
				if err := d.Nack(false, true); err != nil {
					logger.Log.Errorf("nack failed:", err)
				}
				continue
			}

			if err := d.Ack(false); err != nil {
				logger.Log.Errorf("ack failed:", err)
			} else {
				logger.Log.Info("asset published",
					zap.String("public_object", job.PublicObject))
			}
		case <-ctx.Done():
			logger.Log.Info("publish worker stopped")
			return
		}
	}
}

func (c *Consumer) processPublishJob(ctx context.Context, job domain.PublishJob) error {
	return c.minioClient.CopyTo(ctx, job.StagingObject, job.PublicObject)
}
