// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics of a [Tracker].
type MetricsConfig struct {

	// Namespace is the metrics namespace (default: "popup").
	Namespace string

	// Subsystem is the metrics subsystem (default: "tracker").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the registry the metrics are registered with
	// (default: [prometheus.DefaultRegisterer]).
	Registry prometheus.Registerer
}

// MetricsOption configures [NewMetrics].
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "popup",
		Subsystem: "tracker",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics are the Prometheus metrics of a [Tracker]. A nil *Metrics
// records nothing.
type Metrics struct {

	// Passes counts the update passes run.
	Passes prometheus.Counter

	// Coalesced counts change notifications merged into an
	// already scheduled pass.
	Coalesced prometheus.Counter

	// Discarded counts scheduled passes dropped because tracking
	// stopped or restarted before they ran.
	Discarded prometheus.Counter

	// Subscriptions is the number of live change subscriptions.
	Subscriptions prometheus.Gauge
}

// NewMetrics creates and registers the tracker metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	c := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&c)
	}
	factory := promauto.With(c.Registry)
	return &Metrics{
		Passes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of popup position update passes",
			ConstLabels: c.ConstLabels,
		}),
		Coalesced: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "coalesced_total",
			Help:        "Total number of geometry changes merged into a pending pass",
			ConstLabels: c.ConstLabels,
		}),
		Discarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "discarded_total",
			Help:        "Total number of scheduled passes dropped after tracking stopped",
			ConstLabels: c.ConstLabels,
		}),
		Subscriptions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        "subscriptions",
			Help:        "Number of live geometry change subscriptions",
			ConstLabels: c.ConstLabels,
		}),
	}
}

func (m *Metrics) pass() {
	if m != nil {
		m.Passes.Inc()
	}
}

func (m *Metrics) coalesced() {
	if m != nil {
		m.Coalesced.Inc()
	}
}

func (m *Metrics) discarded() {
	if m != nil {
		m.Discarded.Inc()
	}
}

func (m *Metrics) subscribed(n int) {
	if m != nil {
		m.Subscriptions.Add(float64(n))
	}
}
