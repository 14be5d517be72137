// Package metrics exposes Prometheus instruments for the realtime layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// ConnectionsActive tracks currently registered websocket connections.
	ConnectionsActive prometheus.Gauge

	// ConnectionsTotal counts accepted connections over process lifetime.
	ConnectionsTotal prometheus.Counter

	// EventsDelivered counts frames enqueued to clients.
	// Labels: event (message-received|peer-typing|notification-created|feed-changed)
	EventsDelivered *prometheus.CounterVec

	// EventsDropped counts frames lost to full client buffers.
	// Labels: event
	EventsDropped *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ConnectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "realtime_connections_active",
			Help: "Number of currently live websocket connections.",
		}),
		ConnectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "realtime_connections_total",
			Help: "Total websocket connections accepted.",
		}),
		EventsDelivered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "realtime_events_delivered_total",
			Help: "Outbound events enqueued for delivery, by event name.",
		}, []string{"event"}),
		EventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "realtime_events_dropped_total",
			Help: "Outbound events dropped due to a slow client, by event name.",
		}, []string{"event"}),
	}
}
