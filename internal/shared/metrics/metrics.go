package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "elms"

// Registry owns the process collectors. Methods are safe on a nil receiver.
type Registry struct {
	reg *prometheus.Registry

	httpRequests          *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
	leaveTransitions      *prometheus.CounterVec
	notificationsDispatch *prometheus.CounterVec
	aiCalls               *prometheus.CounterVec
	outboxPublished       *prometheus.CounterVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		reg: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		leaveTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leave_transitions_total",
			Help:      "Leave workflow transitions by stage and decision.",
		}, []string{"stage", "decision"}),
		notificationsDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dispatched_total",
			Help:      "Notification events handed to a dispatcher, by mode and result.",
		}, []string{"mode", "result"}),
		aiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_calls_total",
			Help:      "AI advisory calls by action and outcome.",
		}, []string{"action", "outcome"}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_events_total",
			Help:      "Outbox events processed by the relay, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		r.httpRequests,
		r.httpDuration,
		r.leaveTransitions,
		r.notificationsDispatch,
		r.aiCalls,
		r.outboxPublished,
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func (r *Registry) ObserveHTTP(route, method, status string, seconds float64) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(seconds)
}

func (r *Registry) LeaveTransition(stage, decision string) {
	if r == nil {
		return
	}
	r.leaveTransitions.WithLabelValues(stage, decision).Inc()
}

func (r *Registry) NotificationDispatched(mode, result string) {
	if r == nil {
		return
	}
	r.notificationsDispatch.WithLabelValues(mode, result).Inc()
}

func (r *Registry) AICall(action, outcome string) {
	if r == nil {
		return
	}
	r.aiCalls.WithLabelValues(action, outcome).Inc()
}

func (r *Registry) OutboxProcessed(result string) {
	if r == nil {
		return
	}
	r.outboxPublished.WithLabelValues(result).Inc()
}
