package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TickPeriod != 10*time.Millisecond {
		t.Errorf("tick period = %v, want 10ms", cfg.TickPeriod)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		t.Error("no default brokers")
	}
	if cfg.Kafka.EventsTopic == cfg.Kafka.AlertsTopic {
		t.Error("events and alerts topics must differ")
	}
	if cfg.Kafka.Producer.PoolSize <= 0 {
		t.Error("producer pool size must be positive")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KLAXON_TICK_PERIOD", "20ms")
	t.Setenv("KLAXON_KAFKA_BROKERS", "a:9092, b:9092")
	t.Setenv("KLAXON_METRIC", "false")

	cfg := FromEnv()

	if cfg.TickPeriod != 20*time.Millisecond {
		t.Errorf("tick period = %v, want 20ms", cfg.TickPeriod)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Errorf("brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Metric {
		t.Error("metric override ignored")
	}
}

func TestFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("KLAXON_TICK_PERIOD", "soon")

	cfg := FromEnv()
	if cfg.TickPeriod != 10*time.Millisecond {
		t.Errorf("invalid duration changed tick period: %v", cfg.TickPeriod)
	}
}
