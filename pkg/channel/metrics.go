package channel

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/bytechan/pkg/metrics"
)

// instrumentation carries the metrics registry and the channel's label.
// The core loads the pointer once per operation; a nil pointer means
// metrics are disabled and the fast path stays allocation-free.
type instrumentation struct {
	registry *metrics.Registry
	name     string
}

var _ metrics.Instrumentable = (*Sender[any])(nil)

// NewWithMetrics creates a channel with Prometheus metrics enabled.
func NewWithMetrics[T any](capacity int, name string) (*Sender[T], *Receiver[T]) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	config := metrics.DefaultConfig()
	config.Registry = prometheus.NewRegistry()

	chConfig := DefaultConfig()
	chConfig.Capacity = capacity
	return NewWithConfigAndMetrics[T](chConfig, name, config)
}

// NewWithConfigAndMetrics creates a channel with custom config and metrics.
func NewWithConfigAndMetrics[T any](config Config, name string, metricsConfig metrics.Config) (*Sender[T], *Receiver[T]) {
	tx, rx := NewWithConfig[T](config)
	tx.core.name = name

	if metricsConfig.Enabled {
		tx.core.instr.Store(&instrumentation{
			registry: registryFor(metricsConfig),
			name:     name,
		})
	}
	return tx, rx
}

// EnableMetrics enables metrics collection for this channel. Both handles
// share the core, so enabling through the Sender instruments the Receiver
// side too. The series keeps the name given at construction; a channel
// built without one reports as "channel".
func (s *Sender[T]) EnableMetrics(config metrics.Config) error {
	if !config.Enabled {
		s.DisableMetrics()
		return nil
	}

	name := s.core.name
	if name == "" {
		name = "channel"
	}
	s.core.instr.Store(&instrumentation{
		registry: registryFor(config),
		name:     name,
	})
	return nil
}

// DisableMetrics disables metrics collection for this channel.
func (s *Sender[T]) DisableMetrics() {
	s.core.instr.Store(nil)
}

// MetricsEnabled returns true if metrics are currently enabled.
func (s *Sender[T]) MetricsEnabled() bool {
	return s.core.instr.Load() != nil
}

// registryFor maps a metrics config to a Registry. The process-wide
// DefaultRegistry is already registered on the default registerer, so only
// a custom registry gets a fresh set of collectors; this is where
// Namespace and Labels take effect.
func registryFor(config metrics.Config) *metrics.Registry {
	if config.Registry != nil && config.Registry != prometheus.DefaultRegisterer {
		return metrics.NewRegistryWithConfig(config)
	}
	return metrics.DefaultRegistry
}
