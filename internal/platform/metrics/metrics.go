// Package metrics owns the prometheus registry and the stockboard collectors
package metrics

import (
	"net/http"

	phttp "stockboard/internal/platform/net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ingest results
const (
	ResultOK          = "ok"
	ResultUnparseable = "unparseable"
	ResultEmpty       = "empty"
	ResultDuplicate   = "duplicate"
)

// Metrics groups the collectors the uploads service updates
// a nil *Metrics is valid and records nothing
type Metrics struct {
	reg             *prometheus.Registry
	ingest          *prometheus.CounterVec
	uploads         prometheus.Gauge
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
}

// New builds a registry with go and process collectors plus the stockboard set
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return register(reg)
}

// NewBare builds the stockboard set on an empty registry, handy for tests
func NewBare() *Metrics { return register(prometheus.NewRegistry()) }

func register(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		reg: reg,
		ingest: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "ingest_total",
			Help:      "CSV ingests by result.",
		}, []string{"result"}),
		uploads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "stockboard",
			Name:      "uploads",
			Help:      "Uploads currently in the collection.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "mutations_total",
			Help:      "Destructive collection operations by action and outcome.",
		}, []string{"action", "outcome"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "persist_failures_total",
			Help:      "Blob store failures absorbed by the uploads service.",
		}, []string{"op"}),
	}
	reg.MustRegister(m.ingest, m.uploads, m.mutations, m.persistFailures)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Ingest counts one ingest attempt
func (m *Metrics) Ingest(result string) {
	if m == nil {
		return
	}
	m.ingest.WithLabelValues(result).Inc()
}

// Uploads sets the collection size gauge
func (m *Metrics) Uploads(n int) {
	if m == nil {
		return
	}
	m.uploads.Set(float64(n))
}

// Mutation counts a remove-last, clear-all or reset by outcome
func (m *Metrics) Mutation(action, outcome string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(action, outcome).Inc()
}

// PersistFailure counts a swallowed blob store error for op
func (m *Metrics) PersistFailure(op string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(op).Inc()
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Mount exposes the registry at path
func Mount(r phttp.Router, path string, m *Metrics) {
	if m == nil {
		return
	}
	r.Handle(path, m.Handler())
}
