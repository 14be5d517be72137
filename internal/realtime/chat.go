package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sociogram/social-service/internal/model"
)

// ChatService handles the point-to-point message channel and the typing
// relay. Both are best-effort: malformed requests are dropped without a
// reply and delivery is never acknowledged.
type ChatService struct {
	presence      *Registry
	messages      MessageStore
	notifications NotificationStore
	log           *slog.Logger
}

func NewChatService(presence *Registry, messages MessageStore, notifications NotificationStore, log *slog.Logger) *ChatService {
	return &ChatService{
		presence:      presence,
		messages:      messages,
		notifications: notifications,
		log:           log,
	}
}

// Send persists a direct message and its notification, then pushes the
// message to both parties' live connections. A persistence failure aborts
// before any delivery.
func (s *ChatService) Send(ctx context.Context, senderID int64, req model.ChatSendPayload) error {
	if req.ToUserID == 0 || strings.TrimSpace(req.Content) == "" {
		return nil
	}

	msg, err := s.messages.SaveMessage(ctx, senderID, req.ToUserID, req.Content)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	note, err := s.notifications.SaveNotification(ctx, req.ToUserID, senderID, model.NotificationMessage, nil)
	if err != nil {
		return fmt.Errorf("failed to save message notification: %w", err)
	}

	s.presence.DeliverToUser(req.ToUserID, model.EventMessageReceived, model.MessageReceivedPayload{
		From:      senderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	})

	// The sender's other connections see the echo marked self.
	s.presence.DeliverToUser(senderID, model.EventMessageReceived, model.MessageReceivedPayload{
		From:      senderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
		Self:      true,
	})

	s.presence.DeliverToUser(req.ToUserID, model.EventNotificationCreated, model.NotificationCreatedPayload{
		Type:      model.NotificationMessage,
		ActorID:   senderID,
		CreatedAt: note.CreatedAt,
	})

	return nil
}

// SetTyping relays a transient typing signal to the recipient's live
// connections. Nothing is persisted and no timeout is applied server-side.
func (s *ChatService) SetTyping(senderID int64, req model.ChatTypingPayload) {
	if req.ToUserID == 0 {
		return
	}

	s.presence.DeliverToUser(req.ToUserID, model.EventPeerTyping, model.PeerTypingPayload{
		UserID:   senderID,
		Username: req.Username,
		IsTyping: req.IsTyping,
	})
}
