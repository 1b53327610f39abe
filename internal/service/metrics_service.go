package service

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dispatch outcomes recorded per handled message.
const (
	OutcomeOK           = "ok"
	OutcomeFormatError  = "format_error"
	OutcomeRangeError   = "range_error"
	OutcomeNotFound     = "not_found"
	OutcomeStoreError   = "store_error"
	OutcomeUnrecognized = "unrecognized"
	OutcomeView         = "view"
	OutcomePrompt       = "prompt"
)

// MetricsService encapsulates Prometheus instrumentation for the bot.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	messagesTotal    *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
}

// NewMetricsService registers the bot's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	messagesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_messages_total",
		Help: "Total number of handled messages by dispatch outcome",
	}, []string{"outcome"})

	dispatchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bot_dispatch_duration_seconds",
		Help:    "Duration of message dispatch including store calls",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(messagesTotal, dispatchDuration)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		messagesTotal:    messagesTotal,
		dispatchDuration: dispatchDuration,
	}
}

// ObserveDispatch records one handled message.
func (m *MetricsService) ObserveDispatch(outcome string, duration time.Duration) {
	m.messagesTotal.WithLabelValues(outcome).Inc()
	m.dispatchDuration.Observe(duration.Seconds())
}

// Handler exposes the private registry for the ops server.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}
