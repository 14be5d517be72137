package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sociogram/social-service/internal/model"
)

// Notifier couples durable write paths to live push: HTTP handlers call
// Notify after a successful mutation and the affected user's connections
// get the event.
type Notifier struct {
	presence      *Registry
	notifications NotificationStore
	log           *slog.Logger
}

func NewNotifier(presence *Registry, notifications NotificationStore, log *slog.Logger) *Notifier {
	return &Notifier{
		presence:      presence,
		notifications: notifications,
		log:           log,
	}
}

// Notify persists a notification for recipientID and pushes it to their
// live connections. A user's own action never notifies them. Kinds that
// affect shared feed ordering additionally broadcast a feed invalidation
// to every connected client.
func (n *Notifier) Notify(ctx context.Context, recipientID, actorID int64, kind string, refID *int64) error {
	if recipientID == actorID {
		return nil
	}

	note, err := n.notifications.SaveNotification(ctx, recipientID, actorID, kind, refID)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	n.presence.DeliverToUser(recipientID, model.EventNotificationCreated, model.NotificationCreatedPayload{
		Type:      kind,
		ActorID:   actorID,
		RefID:     refID,
		CreatedAt: note.CreatedAt,
	})

	if model.FeedKind(kind) {
		n.presence.DeliverToAll(model.EventFeedChanged, model.FeedChangedPayload{})
	}

	return nil
}
