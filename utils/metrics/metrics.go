package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the fulfillment engine collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	WaveTransitions *prometheus.CounterVec
	UnitsAllocated  prometheus.Counter
	UnitsShort      prometheus.Counter
	RecordsSplit    prometheus.Counter
	TasksGenerated  prometheus.Counter
	UnitsPicked     prometheus.Counter
	UnitsUnpicked   prometheus.Counter
	TasksConfirmed  *prometheus.CounterVec
	IntegrityFaults prometheus.Counter
	EventsPublished *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
	m.WaveTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wave_transitions_total",
			Help:      "Wave status transitions by target status",
		},
		[]string{"status"},
	)
	m.UnitsAllocated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_allocated_total",
		Help:      "Units reserved from AVAILABLE stock",
	})
	m.UnitsShort = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_short_total",
		Help:      "Ordered units that could not be allocated",
	})
	m.RecordsSplit = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_records_split_total",
		Help:      "Stock records split during allocation",
	})
	m.TasksGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pick_tasks_generated_total",
		Help:      "Pick tasks generated at wave release",
	})
	m.UnitsPicked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_picked_total",
		Help:      "Units consumed by pick confirmations",
	})
	m.UnitsUnpicked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_short_picked_total",
		Help:      "Units left allocated without a task after a short pick",
	})
	m.TasksConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pick_tasks_confirmed_total",
			Help:      "Pick task confirmations by outcome",
		},
		[]string{"outcome"},
	)
	m.IntegrityFaults = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integrity_faults_total",
		Help:      "Pick confirmations aborted because allocated stock was missing",
	})
	m.EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Events published to the broker",
		},
		[]string{"event_type", "status"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WaveTransitions,
		m.UnitsAllocated,
		m.UnitsShort,
		m.RecordsSplit,
		m.TasksGenerated,
		m.UnitsPicked,
		m.UnitsUnpicked,
		m.TasksConfirmed,
		m.IntegrityFaults,
		m.EventsPublished,
	)

	return m
}

// Handler returns the HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordWaveTransition(status string) {
	if m == nil {
		return
	}
	m.WaveTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordAllocation(allocated, short int64, splits int) {
	if m == nil {
		return
	}
	m.UnitsAllocated.Add(float64(allocated))
	m.UnitsShort.Add(float64(short))
	m.RecordsSplit.Add(float64(splits))
}

func (m *Metrics) RecordTasksGenerated(count int) {
	if m == nil {
		return
	}
	m.TasksGenerated.Add(float64(count))
}

func (m *Metrics) RecordTaskConfirmed(outcome string, units int64) {
	if m == nil {
		return
	}
	m.TasksConfirmed.WithLabelValues(outcome).Inc()
	m.UnitsPicked.Add(float64(units))
}

func (m *Metrics) RecordShortPick(unpicked int64) {
	if m == nil {
		return
	}
	m.UnitsUnpicked.Add(float64(unpicked))
}

func (m *Metrics) RecordIntegrityFault() {
	if m == nil {
		return
	}
	m.IntegrityFaults.Inc()
}

func (m *Metrics) RecordEventPublished(eventType string, success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	m.EventsPublished.WithLabelValues(eventType, status).Inc()
}
