package model

import (
	"time"
)

const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
	NotificationMessage = "message"
)

type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ActorID   int64     `db:"actor_id" json:"actor_id"`
	Type      string    `db:"type" json:"type"`
	RefID     *int64    `db:"ref_id" json:"ref_id,omitempty"`
	Seen      bool      `db:"seen" json:"seen"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NotificationView is a notification joined with the actor's username for
// the listing endpoint.
type NotificationView struct {
	Notification
	ActorUsername string `db:"actor_username" json:"actor_username"`
}

// FeedKind reports whether a notification kind invalidates the shared feed.
// Direct messages are private and never touch feed ordering.
func FeedKind(kind string) bool {
	return kind == NotificationLike || kind == NotificationComment || kind == NotificationFollow
}
