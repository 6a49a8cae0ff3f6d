package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EntriesIndexed prometheus.Counter
	Overwrites     prometheus.Counter
	Lookups        prometheus.Counter
	RejectedIndex  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		EntriesIndexed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_index_entries_total",
			Help: "Total number of successful index operations",
		}),
		Overwrites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_index_overwrites_total",
			Help: "Index operations that replaced an existing entry",
		}),
		Lookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_index_lookups_total",
			Help: "Total number of index lookups",
		}),
		RejectedIndex: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attestry_index_rejected_total",
			Help: "Index operations rejected by validity checks",
		}),
	}
}

func (m *Metrics) IncrementIndexed(overwrite bool) {
	m.EntriesIndexed.Inc()
	if overwrite {
		m.Overwrites.Inc()
	}
}

func (m *Metrics) IncrementLookups() {
	m.Lookups.Inc()
}

func (m *Metrics) IncrementRejected() {
	m.RejectedIndex.Inc()
}
