package service

import (
	"context"

	"postboard/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivity publishes a user activity event
	PublishActivity(ctx context.Context, event *entity.ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
