// Package fsmmetrics exports histfsm changes as Prometheus metrics.
package fsmmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/enetx/histfsm"
)

// Collector records changes of one or more named machines.
type Collector struct {
	changes *prometheus.CounterVec
	depth   *prometheus.GaugeVec
	pending *prometheus.GaugeVec
}

// New registers the histfsm metrics on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		changes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "histfsm",
			Name:      "changes_total",
			Help:      "Successful state machine changes by operation",
		}, []string{"machine", "kind"}),
		depth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "histfsm",
			Name:      "history_depth",
			Help:      "Length of the position stack",
		}, []string{"machine"}),
		pending: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "histfsm",
			Name:      "redo_pending",
			Help:      "Number of states available for redo",
		}, []string{"machine"}),
	}
}

// Observer returns a histfsm.Observer recording changes under the given machine label.
func (c *Collector) Observer(machine string) histfsm.Observer {
	return func(ch histfsm.Change) {
		c.changes.WithLabelValues(machine, ch.Kind.String()).Inc()
		c.depth.WithLabelValues(machine).Set(float64(ch.Depth))
		c.pending.WithLabelValues(machine).Set(float64(ch.Pending))
	}
}

// Attach registers the metrics observer on m and returns m.
func (c *Collector) Attach(m *histfsm.FSM, machine string) *histfsm.FSM {
	return m.OnChange(c.Observer(machine))
}
