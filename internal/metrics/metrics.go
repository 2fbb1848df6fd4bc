// Package metrics defines the Prometheus collectors exported by the bridge.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ssmgr"

type Metrics struct {
	Commands       *prometheus.CounterVec
	Ticks          *prometheus.CounterVec
	StepFailures   *prometheus.CounterVec
	HarvestedBytes prometheus.Counter
	RemoteUsers    prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Control protocol requests by command and response code.",
		}, []string{"command", "code"}),
		Ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_ticks_total",
			Help:      "Reconciliation ticks by result (ok, partial, failed, skipped).",
		}, []string{"result"}),
		StepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_step_failures_total",
			Help:      "Failed reconciliation sub-steps.",
		}, []string{"step"}),
		HarvestedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "harvested_bytes_total",
			Help:      "Bytes harvested from trojan-go counters into flow samples.",
		}),
		RemoteUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "remote_users",
			Help:      "Users reported by trojan-go in the last snapshot.",
		}),
	}

	reg.MustRegister(m.Commands, m.Ticks, m.StepFailures, m.HarvestedBytes, m.RemoteUsers)
	return m
}

// NewNop returns collectors registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
