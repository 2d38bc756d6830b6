package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tattoo_admin"

// Metrics holds the Prometheus collectors of the service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	BookingsCreated      *prometheus.CounterVec
	BookingConflicts     prometheus.Counter
	BookingStatusChanges *prometheus.CounterVec
	RemindersSent        *prometheus.CounterVec
	BotCommands          *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings created by source.",
		}, []string{"source"}),

		BookingConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Booking writes rejected because the slot was occupied.",
		}),

		BookingStatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_changes_total",
			Help:      "Booking status changes by target status.",
		}, []string{"status"}),

		RemindersSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_sent_total",
			Help:      "Telegram reminders sent by kind.",
		}, []string{"kind"}),

		BotCommands: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bot_process_commands_total",
			Help:      "Bot process control commands by action and result.",
		}, []string{"action", "result"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncBookingCreated(source string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) IncBookingConflict() {
	if m == nil {
		return
	}
	m.BookingConflicts.Inc()
}

func (m *Metrics) IncStatusChange(status string) {
	if m == nil {
		return
	}
	m.BookingStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) IncReminderSent(kind string) {
	if m == nil {
		return
	}
	m.RemindersSent.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncBotCommand(action, result string) {
	if m == nil {
		return
	}
	m.BotCommands.WithLabelValues(action, result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
