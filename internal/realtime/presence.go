// Package realtime implements the live connection layer: connect
// authentication, per-user channel membership, direct message and typing
// delivery, and notification fan-out from HTTP write paths.
package realtime

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sociogram/social-service/internal/metrics"
	"github.com/sociogram/social-service/internal/model"
)

// Conn is the registry's view of a live connection.
type Conn interface {
	Send(data []byte) bool
}

// ChannelForUser derives the channel name owning all of a user's live
// connections.
func ChannelForUser(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// Registry owns the mapping from user identity to live connections. It is
// the only shared mutable state in the realtime layer; the mutex is held
// across map access only, never across a send.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]map[Conn]struct{}
	byConn   map[Conn]string

	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewRegistry(m *metrics.Metrics, log *slog.Logger) *Registry {
	return &Registry{
		channels: make(map[string]map[Conn]struct{}),
		byConn:   make(map[Conn]string),
		metrics:  m,
		log:      log,
	}
}

// Join adds an authenticated connection to its owner's channel. Joining an
// already-registered connection is a no-op: a connection belongs to exactly
// one channel for its whole lifetime.
func (r *Registry) Join(c Conn, userID int64) {
	channel := ChannelForUser(userID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byConn[c]; ok {
		return
	}

	if r.channels[channel] == nil {
		r.channels[channel] = make(map[Conn]struct{})
	}
	r.channels[channel][c] = struct{}{}
	r.byConn[c] = channel

	r.metrics.ConnectionsActive.Inc()
	r.metrics.ConnectionsTotal.Inc()
}

// Leave removes a connection from its channel. Safe to call more than once.
func (r *Registry) Leave(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	channel, ok := r.byConn[c]
	if !ok {
		return
	}

	delete(r.channels[channel], c)
	if len(r.channels[channel]) == 0 {
		delete(r.channels, channel)
	}
	delete(r.byConn, c)

	r.metrics.ConnectionsActive.Dec()
}

// DeliverToUser pushes one event to every live connection in the user's
// channel. Zero live connections is not an error; the event is dropped.
func (r *Registry) DeliverToUser(userID int64, event string, payload any) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		r.log.Error("failed to encode event", "event", event, "err", err)
		return
	}

	channel := ChannelForUser(userID)

	r.mu.RLock()
	targets := make([]Conn, 0, len(r.channels[channel]))
	for c := range r.channels[channel] {
		targets = append(targets, c)
	}
	r.mu.RUnlock()

	r.send(targets, event, data)
}

// DeliverToAll broadcasts one event to every connected client.
func (r *Registry) DeliverToAll(event string, payload any) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		r.log.Error("failed to encode event", "event", event, "err", err)
		return
	}

	r.mu.RLock()
	targets := make([]Conn, 0, len(r.byConn))
	for c := range r.byConn {
		targets = append(targets, c)
	}
	r.mu.RUnlock()

	r.send(targets, event, data)
}

func (r *Registry) send(targets []Conn, event string, data []byte) {
	for _, c := range targets {
		if c.Send(data) {
			r.metrics.EventsDelivered.WithLabelValues(event).Inc()
		} else {
			r.metrics.EventsDropped.WithLabelValues(event).Inc()
		}
	}
}

func encodeEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return json.Marshal(model.Envelope{Event: event, Data: data})
}
