package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Record lifecycle
	RecordsCreated     *prometheus.CounterVec
	RecordsDeleted     *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec

	// Reminder checker
	ReminderChecks     prometheus.Counter
	RemindersTriggered prometheus.Counter

	// Event publishing
	EventsPublished prometheus.Counter
	EventsFailed    prometheus.Counter
}

// NewMetrics creates and registers all application metrics on the default
// registry.
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(namespace, prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the metrics on an explicit registerer. Tests use
// this with a fresh registry per fixture.
func NewMetricsWith(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Total number of records created, by record type",
		}, []string{"record_type"}),
		RecordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_deleted_total",
			Help:      "Total number of records deleted, by record type",
		}, []string{"record_type"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected submissions, by record type",
		}, []string{"record_type"}),
		ReminderChecks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_checks_total",
			Help:      "Total number of reminder due-time polls",
		}),
		RemindersTriggered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_triggered_total",
			Help:      "Total number of reminder notifications sent",
		}),
		EventsPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of lifecycle events published",
		}),
		EventsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_failed_total",
			Help:      "Total number of lifecycle events that failed to publish",
		}),
	}
}
