package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhookNotifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "caza_webhook_notifications_total", Help: "Payment notifications by ingest outcome"},
		[]string{"outcome"},
	)
	Backfills = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "caza_payment_backfills_total", Help: "Manual fetch-and-store results"},
		[]string{"result"},
	)
	Dispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "caza_dispatches_total", Help: "Outbound dispatches by action and result"},
		[]string{"action", "result"},
	)
	ProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "caza_provider_calls_total", Help: "Payment provider calls"},
		[]string{"operation", "result"},
	)
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "caza_provider_latency_seconds", Help: "Payment provider call latency"},
		[]string{"operation"},
	)
	SweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "caza_sweep_runs_total", Help: "Payment-link sweep iterations"},
		[]string{"result"},
	)
)

// Register adds every collector to reg. Collectors are package-level, so call it once per registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(WebhookNotifications, Backfills, Dispatches, ProviderCalls, ProviderLatency, SweepRuns)
}
