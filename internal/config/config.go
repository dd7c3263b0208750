package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration for the klaxon daemon.
type Config struct {
	// Control tick period. Every tick the mailbox is drained, alerts are
	// resolved and the event set is cleared.
	TickPeriod time.Duration

	// Address for the HTTP server (ingest, state, health, metrics).
	HTTPAddr string

	// Log level for zerolog (debug, info, warn, error).
	LogLevel string

	// Metric selects metric units for generated alert text (km/h vs mph).
	Metric bool

	Kafka KafkaConfig
}

// KafkaConfig holds Kafka transport configuration.
type KafkaConfig struct {
	Brokers []string

	// Topic carrying inbound event assertions from producer processes.
	EventsTopic string

	// Topic receiving the per-tick alert frames.
	AlertsTopic string

	// Consumer group for the assertion reader.
	GroupID string

	Producer ProducerConfig
}

// ProducerConfig tunes the Kafka writer pool.
type ProducerConfig struct {
	PoolSize     int
	BatchSize    int
	BatchTimeout time.Duration
	WriteTimeout time.Duration
	RequiredAcks int
	MaxRetries   int
	Compression  string
}

// Default returns a sensible default config for local dev.
func Default() *Config {
	return &Config{
		TickPeriod: 10 * time.Millisecond,
		HTTPAddr:   ":8080",
		LogLevel:   "info",
		Metric:     true,
		Kafka: KafkaConfig{
			Brokers:     []string{"localhost:9092"},
			EventsTopic: "vehicle.events",
			AlertsTopic: "vehicle.alerts",
			GroupID:     "klaxon",
			Producer: ProducerConfig{
				PoolSize:     2,
				BatchSize:    100,
				BatchTimeout: 20 * time.Millisecond,
				WriteTimeout: 5 * time.Second,
				RequiredAcks: 1,
				MaxRetries:   3,
				Compression:  "snappy",
			},
		},
	}
}

// FromEnv returns the default config with environment overrides applied.
func FromEnv() *Config {
	cfg := Default()

	if v := os.Getenv("KLAXON_TICK_PERIOD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TickPeriod = d
		}
	}
	if v := os.Getenv("KLAXON_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("KLAXON_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KLAXON_METRIC"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metric = b
		}
	}
	if v := os.Getenv("KLAXON_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	if v := os.Getenv("KLAXON_EVENTS_TOPIC"); v != "" {
		cfg.Kafka.EventsTopic = v
	}
	if v := os.Getenv("KLAXON_ALERTS_TOPIC"); v != "" {
		cfg.Kafka.AlertsTopic = v
	}
	if v := os.Getenv("KLAXON_KAFKA_GROUP"); v != "" {
		cfg.Kafka.GroupID = v
	}

	return cfg
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
