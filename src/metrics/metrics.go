package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the service counters.
type Metrics struct {
	EventsLogged     prometheus.Counter
	Submissions      prometheus.Counter
	RejectedRequests *prometheus.CounterVec
	ExportRequests   *prometheus.CounterVec
	StoreErrors      *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the counters and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		EventsLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_events_logged_total",
			Help: "Interaction events written to the event store",
		}),
		Submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_submissions_total",
			Help: "Submission records written (including overwrites)",
		}),
		RejectedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_rejected_requests_total",
			Help: "Ingest requests rejected as invalid input",
		}, []string{"route"}),
		ExportRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_export_requests_total",
			Help: "Export requests by outcome",
		}, []string{"result"}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_store_errors_total",
			Help: "Key-value store operations that failed",
		}, []string{"namespace", "op"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.EventsLogged,
		m.Submissions,
		m.RejectedRequests,
		m.ExportRequests,
		m.StoreErrors,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts the metrics endpoint on its own listener so it never shares routes with the ingest API.
func (m *Metrics) Serve(addr string, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics endpoint stopped", zap.Error(err))
		}
	}()

	log.Info("Prometheus metrics available", zap.String("addr", addr), zap.String("path", "/metrics"))
	return srv
}
