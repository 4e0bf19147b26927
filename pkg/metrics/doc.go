// Package metrics provides Prometheus instrumentation for bytechan components.
//
// This package enables monitoring and observability for bytechan's channels
// and byte-stream readers through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Channel operations (items sent, items received, full rejections)
//   - Backpressure (sender and receiver park counts, queue depth)
//   - Channel lifecycle (close transitions)
//   - Byte-stream reads (bytes read, read calls, chunks consumed, short reads)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Channel with metrics
//	tx, rx := channel.NewWithMetrics[[]byte](16, "ingest")
//
//	// Reader with metrics
//	r := bytestream.NewReaderWithMetrics(rx, "ingest_stream")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	tx, rx := channel.NewWithConfigAndMetrics[[]byte](
//		channel.Config{Capacity: 16},
//		"ingest",
//		config,
//	)
//
// # Available Metrics
//
// ## Channel Metrics
//
//   - bytechan_channel_items_sent_total: Total number of items pushed into the channel
//   - bytechan_channel_items_received_total: Total number of items popped from the channel
//   - bytechan_channel_queue_full_total: Total number of non-blocking sends rejected on a full queue
//   - bytechan_channel_send_waits_total: Total number of times a sender parked waiting for space
//   - bytechan_channel_recv_waits_total: Total number of times a receiver parked waiting for an item
//   - bytechan_channel_closed_total: Total number of channel close transitions
//   - bytechan_channel_queue_depth: Current number of items buffered in the channel
//
// ## Reader Metrics
//
//   - bytechan_reader_bytes_read_total: Total bytes copied into caller buffers
//   - bytechan_reader_reads_total: Total number of read calls that returned at least one byte
//   - bytechan_reader_chunks_consumed_total: Total number of chunks fully drained from the channel
//   - bytechan_reader_short_reads_total: Total number of reads shorter than the caller's buffer
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - channel_name: User-provided name for the channel instance
//   - reader_name: User-provided name for the reader instance
//
// # Configuration
//
// Metrics can be configured globally or per-component:
//
//	config := metrics.Config{
//		Enabled:   true,                           // Enable/disable metrics
//		Registry:  prometheus.DefaultRegisterer,   // Custom registry
//		Namespace: "myapp",                        // Override default "bytechan"
//		Labels:    prometheus.Labels{"version": "1.0"}, // Additional labels
//	}
//
// Namespace and Labels take effect through NewRegistryWithConfig; the
// process-wide DefaultRegistry is already registered under the bytechan
// namespace, so overrides require a custom Registry.
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	tx, rx := channel.NewWithMetrics[[]byte](16, "ingest")
//	tx.DisableMetrics()           // Stop collecting metrics
//	tx.EnableMetrics(config)      // Re-enable with new config
//	enabled := tx.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Disabled components skip instrumentation on a single pointer check
package metrics
