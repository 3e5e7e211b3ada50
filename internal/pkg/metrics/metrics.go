package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stelwing"

// Commit outcomes recorded by BookingMetrics.ObserveCommit.
const (
	OutcomeCommitted = "committed"
	OutcomeReplayed  = "replayed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

type BookingMetrics struct {
	commits           *prometheus.CounterVec
	commitDuration    prometheus.Histogram
	locatorCollisions prometheus.Counter
	locatorExhausted  prometheus.Counter
	seatConflicts     prometheus.Counter
	outboxPublished   *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) (*BookingMetrics, error) {
	m := &BookingMetrics{
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "commits_total",
			Help:      "Booking commit attempts by outcome.",
		}, []string{"outcome"}),
		commitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "commit_duration_seconds",
			Help:      "Wall time of a booking commit including retries.",
			Buckets:   prometheus.DefBuckets,
		}),
		locatorCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "locator_collisions_total",
			Help:      "Generated locators that were already taken.",
		}),
		locatorExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "locator_exhausted_total",
			Help:      "Commits that gave up finding a free locator.",
		}),
		seatConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "seat_conflicts_total",
			Help:      "Seat claims rejected because the seat was already taken.",
		}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "jobs_total",
			Help:      "Outbox jobs handled by the relay, by result.",
		}, []string{"topic", "result"}),
	}

	for _, c := range []prometheus.Collector{
		m.commits, m.commitDuration, m.locatorCollisions,
		m.locatorExhausted, m.seatConflicts, m.outboxPublished,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewNopBookingMetrics registers against a throwaway registry.
func NewNopBookingMetrics() *BookingMetrics {
	m, _ := NewBookingMetrics(prometheus.NewRegistry())
	return m
}

func (m *BookingMetrics) ObserveCommit(outcome string, started time.Time) {
	m.commits.WithLabelValues(outcome).Inc()
	m.commitDuration.Observe(time.Since(started).Seconds())
}

func (m *BookingMetrics) LocatorCollision() { m.locatorCollisions.Inc() }

func (m *BookingMetrics) LocatorExhausted() { m.locatorExhausted.Inc() }

func (m *BookingMetrics) SeatConflict() { m.seatConflicts.Inc() }

func (m *BookingMetrics) OutboxJob(topic, result string) {
	m.outboxPublished.WithLabelValues(topic, result).Inc()
}
