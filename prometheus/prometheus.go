// Package prometheus exports machine events as Prometheus metrics.
package prometheus

import (
	"fmt"
	"net/http"

	"github.com/fwojciec/probearm"
	"github.com/go-chi/chi/v5"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for the commands counter.
const (
	OutcomeMoved   = "moved"
	OutcomeGrabbed = "grabbed"
	OutcomeDropped = "dropped"
	OutcomeIgnored = "ignored"
)

// Metrics holds the collectors fed by Observe.
type Metrics struct {
	commands        *prom.CounterVec
	sessions        prom.Counter
	sessionDuration prom.Histogram
	sessionKeys     prom.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prom.Registerer) (*Metrics, error) {
	m := &Metrics{
		commands: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "probearm",
			Name:      "commands_total",
			Help:      "Commands applied, by outcome.",
		}, []string{"outcome"}),
		sessions: prom.NewCounter(prom.CounterOpts{
			Namespace: "probearm",
			Name:      "sessions_total",
			Help:      "Pick-drop sessions finalized.",
		}),
		sessionDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "probearm",
			Name:      "session_duration_seconds",
			Help:      "Time between grab and drop.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 300},
		}),
		sessionKeys: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "probearm",
			Name:      "session_keys",
			Help:      "Keys recorded per session, including grab and drop.",
			Buckets:   prom.LinearBuckets(2, 2, 10),
		}),
	}
	for _, c := range []prom.Collector{m.commands, m.sessions, m.sessionDuration, m.sessionKeys} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// Observe records one machine event. It matches the signature expected by
// probearm.WithEventHandler.
func (m *Metrics) Observe(evt probearm.Event) {
	switch e := evt.(type) {
	case probearm.EventMoved:
		m.commands.WithLabelValues(OutcomeMoved).Inc()
	case probearm.EventGrabbed:
		m.commands.WithLabelValues(OutcomeGrabbed).Inc()
	case probearm.EventDropped:
		m.commands.WithLabelValues(OutcomeDropped).Inc()
		m.sessions.Inc()
		m.sessionDuration.Observe(e.Session.Duration().Seconds())
		m.sessionKeys.Observe(float64(len(e.Session.Keys)))
	case probearm.EventIgnored:
		m.commands.WithLabelValues(OutcomeIgnored).Inc()
	}
}

// NewHandler returns a router serving /metrics from g and a /healthz probe.
func NewHandler(g prom.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return r
}
