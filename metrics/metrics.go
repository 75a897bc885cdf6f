// Package metrics exports component-monitor activity as Prometheus metrics.
//
// A Collector is a components.Listener: register it on a Monitor and every
// create, destroy, merge, split and vertex move is counted.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/livegraph/components"
)

// Collector holds the monitor metrics and the registry they live in.
// It implements components.Listener.
type Collector struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	Components        prometheus.Gauge
	VerticesTracked   prometheus.Gauge
	ComponentsCreated prometheus.Counter
	ComponentsRemoved prometheus.Counter
	Merges            prometheus.Counter
	Splits            prometheus.Counter
	VertexMoves       prometheus.Counter
	SplitSize         prometheus.Histogram
}

// NewCollector creates the metrics under namespace and registers them with reg.
// A nil reg gets a private registry, reachable through Gatherer.
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{registerer: reg}
	if reg == nil {
		registry := prometheus.NewRegistry()
		c.registerer, c.gatherer = registry, registry
	} else if g, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = g
	}

	c.Components = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "components",
		Help:      "Number of live connected components",
	})
	c.VerticesTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vertices_tracked",
		Help:      "Number of vertices assigned to a component",
	})
	c.ComponentsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "components_created_total",
		Help:      "Total number of components created",
	})
	c.ComponentsRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "components_destroyed_total",
		Help:      "Total number of components destroyed",
	})
	c.Merges = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "merges_total",
		Help:      "Total number of component merges",
	})
	c.Splits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "splits_total",
		Help:      "Total number of component splits",
	})
	c.VertexMoves = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vertex_moves_total",
		Help:      "Total number of vertices relocated by merges and splits",
	})
	c.SplitSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "split_size",
		Help:      "Number of vertices moved into the new component on a split",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	for _, col := range []prometheus.Collector{
		c.Components,
		c.VerticesTracked,
		c.ComponentsCreated,
		c.ComponentsRemoved,
		c.Merges,
		c.Splits,
		c.VertexMoves,
		c.SplitSize,
	} {
		if err := c.registerer.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Gatherer returns the registry the metrics can be read from, nil if unknown.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.gatherer }

// WriteText dumps every gathered family in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	if c.gatherer == nil {
		return fmt.Errorf("metrics: registerer is not a gatherer")
	}
	families, err := c.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

var _ components.Listener = (*Collector)(nil)

func (c *Collector) ComponentCreated(*components.Component) {
	c.Components.Inc()
	c.ComponentsCreated.Inc()
}

func (c *Collector) ComponentDestroyed(*components.Component) {
	c.Components.Dec()
	c.ComponentsRemoved.Inc()
}

func (c *Collector) VertexJoined(*components.Component, string) { c.VerticesTracked.Inc() }

func (c *Collector) VertexLeft(*components.Component, string) { c.VerticesTracked.Dec() }

func (c *Collector) ComponentsMerged(_, _ *components.Component, moved int) {
	c.Merges.Inc()
	c.VertexMoves.Add(float64(moved))
}

func (c *Collector) ComponentSplit(_, created *components.Component) {
	n := created.Len()
	c.Splits.Inc()
	c.VertexMoves.Add(float64(n))
	c.SplitSize.Observe(float64(n))
}
