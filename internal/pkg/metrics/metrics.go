// Package metrics exposes Prometheus collectors for the scheduling
// core. A nil *Manager is a no-op, so components never have to guard
// their instrumentation calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "interview_scheduler"

type Manager struct {
	conflictChecks    prometheus.Counter
	conflictsFound    *prometheus.CounterVec
	sourceFailures    *prometheus.CounterVec
	decisions         *prometheus.CounterVec
	notificationsSent prometheus.Counter
	notificationFails prometheus.Counter
	calendarSyncFails prometheus.Counter
}

func NewManager(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		conflictChecks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_checks_total",
			Help:      "Conflict checks executed, including slot-finder probes.",
		}),
		conflictsFound: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_found_total",
			Help:      "Conflicts reported, labeled by source and severity.",
		}, []string{"source", "severity"}),
		sourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Conflict source queries degraded to warnings.",
		}, []string{"source"}),
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_decisions_total",
			Help:      "Booking decisions by outcome.",
		}, []string{"outcome"}),
		notificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Conflict alerts handed to the transport.",
		}),
		notificationFails: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Alert deliveries the transport rejected.",
		}),
		calendarSyncFails: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_sync_failures_total",
			Help:      "Best-effort calendar sync operations that failed.",
		}),
	}
}

func (m *Manager) ConflictCheck() {
	if m == nil {
		return
	}
	m.conflictChecks.Inc()
}

func (m *Manager) ConflictFound(source, severity string) {
	if m == nil {
		return
	}
	m.conflictsFound.WithLabelValues(source, severity).Inc()
}

func (m *Manager) SourceFailure(source string) {
	if m == nil {
		return
	}
	m.sourceFailures.WithLabelValues(source).Inc()
}

func (m *Manager) Decision(outcome string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(outcome).Inc()
}

func (m *Manager) NotificationSent() {
	if m == nil {
		return
	}
	m.notificationsSent.Inc()
}

func (m *Manager) NotificationFailed() {
	if m == nil {
		return
	}
	m.notificationFails.Inc()
}

func (m *Manager) CalendarSyncFailed() {
	if m == nil {
		return
	}
	m.calendarSyncFails.Inc()
}
