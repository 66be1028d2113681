package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Counters(t *testing.T) {
	r := New()

	r.ObserveHTTP("/api/leaves", "POST", "201", 0.02)
	r.ObserveHTTP("/api/leaves", "POST", "201", 0.03)
	r.LeaveTransition("admin", "approve")
	r.NotificationDispatched("direct", "ok")
	r.AICall("chat", "fallback")
	r.OutboxProcessed("sent")

	assert.Equal(t, float64(2), testutil.ToFloat64(r.httpRequests.WithLabelValues("/api/leaves", "POST", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.leaveTransitions.WithLabelValues("admin", "approve")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.notificationsDispatch.WithLabelValues("direct", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.aiCalls.WithLabelValues("chat", "fallback")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.outboxPublished.WithLabelValues("sent")))
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveHTTP("/", "GET", "200", 0)
		r.LeaveTransition("team_lead", "reject")
		r.NotificationDispatched("outbox", "error")
		r.AICall("chat", "ok")
		r.OutboxProcessed("failed")
	})
}

func TestRegistry_Handler(t *testing.T) {
	r := New()
	r.LeaveTransition("admin", "approve")

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "elms_leave_transitions_total")
}
