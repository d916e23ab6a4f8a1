package usecase

import (
	"context"

	"postboard/internal/domain/entity"
)

// ActivityUsecase reacts to activity events delivered by the event bus.
type ActivityUsecase interface {
	// HandleActivity notifies the post author about a comment or like made by
	// someone else. Other event types are accepted and ignored.
	HandleActivity(ctx context.Context, event *entity.ActivityEvent) error
}
