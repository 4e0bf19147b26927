package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistryDefaults(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	registry := NewRegistry(reg)

	registry.ItemsSent.WithLabelValues("ch").Inc()

	count, err := promtestutil.GatherAndCount(reg, "bytechan_channel_items_sent_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d series, want 1", count)
	}
}

func TestNewRegistryWithConfigNamespace(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	registry := NewRegistryWithConfig(Config{
		Registry:  reg,
		Namespace: "myapp",
	})

	registry.ItemsSent.WithLabelValues("ch").Inc()
	registry.ReaderBytesRead.WithLabelValues("rd").Add(42)

	count, err := promtestutil.GatherAndCount(reg,
		"myapp_channel_items_sent_total",
		"myapp_reader_bytes_read_total",
	)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 2 {
		t.Fatalf("got %d series under the custom namespace, want 2", count)
	}
}

func TestNewRegistryWithConfigLabels(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	registry := NewRegistryWithConfig(Config{
		Registry: reg,
		Labels:   prometheus.Labels{"service": "ingest", "version": "1.0"},
	})

	registry.QueueDepth.WithLabelValues("ch").Set(3)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("got %d metric families, want 1", len(families))
	}

	got := map[string]string{}
	for _, label := range families[0].GetMetric()[0].GetLabel() {
		got[label.GetName()] = label.GetValue()
	}
	for name, want := range map[string]string{
		"service":      "ingest",
		"version":      "1.0",
		"channel_name": "ch",
	} {
		if got[name] != want {
			t.Fatalf("label %q = %q, want %q", name, got[name], want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if !config.Enabled {
		t.Fatal("default config should enable metrics")
	}
	if config.Registry != prometheus.DefaultRegisterer {
		t.Fatal("default config should target the default registerer")
	}
	if config.Namespace != "bytechan" {
		t.Fatalf("default namespace = %q, want %q", config.Namespace, "bytechan")
	}
}
