package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/sociogram/social-service/internal/model"
)

const maxFrameSize = 512 * 1024

// Handler upgrades authenticated requests to websocket connections and runs
// the per-connection read loop.
type Handler struct {
	presence *Registry
	chat     *ChatService
	verifier TokenVerifier
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewHandler(presence *Registry, chat *ChatService, verifier TokenVerifier, log *slog.Logger) *Handler {
	return &Handler{
		presence: presence,
		chat:     chat,
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: log,
	}
}

// Handler authenticates the connection attempt before the upgrade: a missing
// or invalid credential is rejected with 401 and no channel join happens.
func (h *Handler) Handler(w http.ResponseWriter, r *http.Request) {
	token := ResolveCredential(r)
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := h.verifier.Verify(token)
	if err != nil {
		h.log.Warn("rejected websocket connection", "err", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	userID := claims.UserID

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "err", err)
		return
	}

	client := NewClient(conn, userID)
	h.presence.Join(client, userID)
	defer h.presence.Leave(client)
	defer client.Close()

	h.log.Info("websocket connection established", "user_id", userID)

	conn.SetReadLimit(maxFrameSize)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket closed unexpectedly", "user_id", userID, "err", err)
			}
			return
		}

		h.dispatch(r.Context(), userID, data)
	}
}

// dispatch routes one inbound frame. Unknown events and malformed payloads
// are dropped without a reply.
func (h *Handler) dispatch(ctx context.Context, userID int64, data []byte) {
	var env model.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return
	}

	switch env.Event {
	case model.EventChatSend:
		var req model.ChatSendPayload
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return
		}
		if err := h.chat.Send(ctx, userID, req); err != nil {
			h.log.Error("failed to send direct message", "user_id", userID, "err", err)
		}

	case model.EventChatTyping:
		var req model.ChatTypingPayload
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return
		}
		h.chat.SetTyping(userID, req)
	}
}
