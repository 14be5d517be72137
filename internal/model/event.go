package model

import (
	"encoding/json"
	"time"
)

// Wire-level event names. Inbound events arrive from clients over the
// websocket, outbound events are pushed to user channels or broadcast.
const (
	EventChatSend   = "chat:send"
	EventChatTyping = "chat:typing"

	EventMessageReceived     = "message-received"
	EventPeerTyping          = "peer-typing"
	EventNotificationCreated = "notification-created"
	EventFeedChanged         = "feed-changed"
)

// Envelope frames every websocket message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ChatSendPayload is the client request to deliver a direct message.
type ChatSendPayload struct {
	ToUserID int64  `json:"toUserId"`
	Content  string `json:"content"`
}

// ChatTypingPayload is the client typing signal. Username is relayed
// verbatim; only the sender id is asserted by the server.
type ChatTypingPayload struct {
	ToUserID int64  `json:"toUserId"`
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
}

type MessageReceivedPayload struct {
	From      int64     `json:"from"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Self      bool      `json:"self,omitempty"`
}

type PeerTypingPayload struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
}

type NotificationCreatedPayload struct {
	Type      string    `json:"type"`
	ActorID   int64     `json:"actor_id"`
	RefID     *int64    `json:"ref_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedChangedPayload is intentionally empty: the broadcast only tells
// connected viewers to re-fetch the feed.
type FeedChangedPayload struct{}
