package bytestream

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/bytechan/pkg/channel"
	"github.com/vnykmshr/bytechan/pkg/metrics"
)

// instrumentation carries the metrics registry and the reader's label.
type instrumentation struct {
	registry *metrics.Registry
	name     string
}

var _ metrics.Instrumentable = (*Reader)(nil)

// NewReaderWithMetrics wraps rx in a Reader with Prometheus metrics enabled.
func NewReaderWithMetrics(rx *channel.Receiver[[]byte], name string) *Reader {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	config := metrics.DefaultConfig()
	config.Registry = prometheus.NewRegistry()
	return NewReaderWithConfig(rx, name, config)
}

// NewReaderWithConfig wraps rx in a Reader with the given metrics config.
func NewReaderWithConfig(rx *channel.Receiver[[]byte], name string, metricsConfig metrics.Config) *Reader {
	r := NewReader(rx)
	r.name = name

	if metricsConfig.Enabled {
		r.instr.Store(&instrumentation{
			registry: registryFor(metricsConfig),
			name:     name,
		})
	}
	return r
}

// EnableMetrics enables metrics collection for this reader. The series
// keeps the name given at construction; a reader built without one reports
// as "reader".
func (r *Reader) EnableMetrics(config metrics.Config) error {
	if !config.Enabled {
		r.DisableMetrics()
		return nil
	}

	name := r.name
	if name == "" {
		name = "reader"
	}
	r.instr.Store(&instrumentation{
		registry: registryFor(config),
		name:     name,
	})
	return nil
}

// DisableMetrics disables metrics collection for this reader.
func (r *Reader) DisableMetrics() {
	r.instr.Store(nil)
}

// MetricsEnabled returns true if metrics are currently enabled.
func (r *Reader) MetricsEnabled() bool {
	return r.instr.Load() != nil
}

// registryFor maps a metrics config to a Registry. Only a custom registry
// gets a fresh set of collectors; this is where Namespace and Labels take
// effect. See channel.NewWithConfigAndMetrics for the same rule.
func registryFor(config metrics.Config) *metrics.Registry {
	if config.Registry != nil && config.Registry != prometheus.DefaultRegisterer {
		return metrics.NewRegistryWithConfig(config)
	}
	return metrics.DefaultRegistry
}
