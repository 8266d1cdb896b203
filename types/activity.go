package types

import "time"

const (
	ActivityFollow  = "follow"
	ActivityLike    = "like"
	ActivityComment = "comment"
)

// ActivityEvent is published when a user follows, likes or comments.
type ActivityEvent struct {
	Type       string    `json:"type"`
	ActorID    int64     `json:"actorId,string"`
	TargetID   int64     `json:"targetId,string,omitempty"`
	PostID     int64     `json:"postId,string,omitempty"`
	CommentID  int64     `json:"commentId,string,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
