// Package metrics defines the Prometheus collectors for the Curious backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors shared across services.
type Metrics struct {
	// InboundMessages counts processed inbound SMS by router outcome.
	InboundMessages *prometheus.CounterVec
	// Sends counts outbound SMS by provider and status ("ok" | "error").
	Sends *prometheus.CounterVec
	// Broadcasts counts question broadcasts.
	Broadcasts prometheus.Counter
}

// New は collectors を生成し reg に登録する。
// 本番は prometheus.DefaultRegisterer、テストは prometheus.NewRegistry() を渡す
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		InboundMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "curious",
				Name:      "inbound_messages_total",
				Help:      "Inbound SMS messages processed, by router outcome",
			},
			[]string{"outcome"},
		),
		Sends: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "curious",
				Name:      "sms_sends_total",
				Help:      "Outbound SMS send attempts, by provider and status",
			},
			[]string{"provider", "status"},
		),
		Broadcasts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "curious",
				Name:      "broadcasts_total",
				Help:      "Question broadcasts started",
			},
		),
	}
}
