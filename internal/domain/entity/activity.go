package entity

import "time"

// ActivityType names a user action that is broadcast to event consumers.
type ActivityType string

const (
	ActivityPostCreated    ActivityType = "post.created"
	ActivityCommentCreated ActivityType = "comment.created"
	ActivityPostLiked      ActivityType = "post.liked"
)

// ActivityEvent is published after a post, comment or like has been stored.
type ActivityEvent struct {
	RequestID  string       `json:"request_id,omitempty"` // For distributed tracing
	Type       ActivityType `json:"type"`
	ActorID    int64        `json:"actor_id"`
	PostID     int64        `json:"post_id"`
	ResourceID int64        `json:"resource_id"`
	OccurredAt time.Time    `json:"occurred_at"`
}
