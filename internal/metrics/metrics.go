// Package metrics содержит счётчики Prometheus биллингового сервиса.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SessionsBilled — количество зафиксированных расчётов сессий.
	SessionsBilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clubbilling_sessions_billed_total",
			Help: "Total number of committed session billing calculations",
		},
	)

	// SessionsRecalculated — количество перерасчётов существующих сессий.
	SessionsRecalculated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clubbilling_sessions_recalculated_total",
			Help: "Total number of session fee recalculations",
		},
	)

	// FeesCharged — начисленные сборы в долларах по типам.
	FeesCharged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubbilling_fees_charged_dollars_total",
			Help: "Total fees charged in dollars",
		},
		[]string{"fee_type"},
	)

	// GuestPassesConsumed — списанные гостевые пропуска.
	GuestPassesConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clubbilling_guest_passes_consumed_total",
			Help: "Total guest passes consumed",
		},
	)
)

// Register регистрирует все метрики сервиса в реестре Prometheus.
func Register() {
	prometheus.MustRegister(
		SessionsBilled,
		SessionsRecalculated,
		FeesCharged,
		GuestPassesConsumed,
	)
}
