package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AttestationsRelayed prometheus.Counter
	RevocationsRelayed  prometheus.Counter
	TemplatedIssued     *prometheus.CounterVec
	RelayRejected       prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		AttestationsRelayed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_relay_attestations_total",
			Help: "Attestations relayed to the ledger",
		}),
		RevocationsRelayed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_relay_revocations_total",
			Help: "Revocations relayed to the ledger",
		}),
		TemplatedIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attestry_relay_templated_issued_total",
			Help: "Templated issuance operations by claim key",
		}, []string{"key"}),
		RelayRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_relay_rejected_total",
			Help: "Relay operations rejected before reaching the ledger",
		}),
	}
}

func (m *Metrics) IncrementAttestations(n int) {
	m.AttestationsRelayed.Add(float64(n))
}

func (m *Metrics) IncrementRevocations(n int) {
	m.RevocationsRelayed.Add(float64(n))
}

func (m *Metrics) IncrementTemplated(key string) {
	m.TemplatedIssued.WithLabelValues(key).Inc()
}

func (m *Metrics) IncrementRejected() {
	m.RelayRejected.Inc()
}
