package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for bytechan components.
type Registry struct {
	// Channel Metrics
	ItemsSent     *prometheus.CounterVec
	ItemsReceived *prometheus.CounterVec
	QueueFull     *prometheus.CounterVec
	SendWaits     *prometheus.CounterVec
	RecvWaits     *prometheus.CounterVec
	ChannelClosed *prometheus.CounterVec
	QueueDepth    *prometheus.GaugeVec

	// Reader Metrics
	ReaderBytesRead  *prometheus.CounterVec
	ReaderReads      *prometheus.CounterVec
	ReaderChunks     *prometheus.CounterVec
	ReaderShortReads *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by bytechan components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus
// registerer and the default namespace.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Registry: reg})
}

// NewRegistryWithConfig creates a new metrics registry honoring the full
// configuration: Registry (prometheus.DefaultRegisterer when nil),
// Namespace ("bytechan" when empty), and Labels, which are attached to
// every metric as constant labels.
func NewRegistryWithConfig(config Config) *Registry {
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	namespace := config.Namespace
	if namespace == "" {
		namespace = "bytechan"
	}
	factory := promauto.With(reg)

	return &Registry{
		// Channel Metrics
		ItemsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "items_sent_total",
				Help:        "Total number of items pushed into the channel",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		ItemsReceived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "items_received_total",
				Help:        "Total number of items popped from the channel",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		QueueFull: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "queue_full_total",
				Help:        "Total number of non-blocking sends rejected because the queue was full",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		SendWaits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "send_waits_total",
				Help:        "Total number of times a sender parked waiting for queue space",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		RecvWaits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "recv_waits_total",
				Help:        "Total number of times a receiver parked waiting for an item",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		ChannelClosed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "closed_total",
				Help:        "Total number of channel close transitions",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "channel",
				Name:        "queue_depth",
				Help:        "Current number of items buffered in the channel",
				ConstLabels: config.Labels,
			},
			[]string{"channel_name"},
		),

		// Reader Metrics
		ReaderBytesRead: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "reader",
				Name:        "bytes_read_total",
				Help:        "Total number of bytes copied into caller buffers",
				ConstLabels: config.Labels,
			},
			[]string{"reader_name"},
		),

		ReaderReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "reader",
				Name:        "reads_total",
				Help:        "Total number of read calls that returned at least one byte",
				ConstLabels: config.Labels,
			},
			[]string{"reader_name"},
		),

		ReaderChunks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "reader",
				Name:        "chunks_consumed_total",
				Help:        "Total number of chunks fully drained from the channel",
				ConstLabels: config.Labels,
			},
			[]string{"reader_name"},
		),

		ReaderShortReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "reader",
				Name:        "short_reads_total",
				Help:        "Total number of reads that returned fewer bytes than the buffer could hold",
				ConstLabels: config.Labels,
			},
			[]string{"reader_name"},
		),
	}
}
