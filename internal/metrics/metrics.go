package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "klaxon_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Event ingestion metrics
	EventsAssertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_events_asserted_total",
			Help: "Total number of event assertions received",
		},
		[]string{"source", "status"}, // source: http, kafka; status: accepted, rejected
	)

	EventsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "klaxon_events_active",
			Help: "Number of events active in the current tick",
		},
	)

	MailboxSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "klaxon_mailbox_size",
			Help: "Current size of the assertion mailbox",
		},
	)

	MailboxCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "klaxon_mailbox_capacity",
			Help: "Capacity of the assertion mailbox",
		},
	)

	// Tick / resolution metrics
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "klaxon_tick_duration_seconds",
			Help:    "Time spent processing one control tick",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		},
	)

	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "klaxon_ticks_total",
			Help: "Total number of control ticks processed",
		},
	)

	AlertsResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_alerts_resolved_total",
			Help: "Total number of alerts produced by resolution",
		},
		[]string{"category"},
	)

	AlertsSuppressedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "klaxon_alerts_suppressed_total",
			Help: "Total number of alerts held back by the creation-delay gate",
		},
	)

	GeneratorFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_generator_failures_total",
			Help: "Total number of alert generator callbacks that failed",
		},
		[]string{"alert_type"},
	)

	EngageTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_engage_transitions_total",
			Help: "Total number of engage state transitions",
		},
		[]string{"to"},
	)

	// Kafka producer metrics
	KafkaPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_kafka_publish_total",
			Help: "Total number of frames published to Kafka",
		},
		[]string{"status"}, // status: success, failed
	)

	KafkaPublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "klaxon_kafka_publish_duration_seconds",
			Help:    "Time taken to publish to Kafka",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	KafkaBytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "klaxon_kafka_bytes_written_total",
			Help: "Total bytes written to Kafka",
		},
	)

	KafkaConsumeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_kafka_consume_total",
			Help: "Total number of assertion messages consumed from Kafka",
		},
		[]string{"status"}, // status: ok, decode_error, dropped
	)

	// Panic recovery
	PanicsRecovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klaxon_panics_recovered_total",
			Help: "Total number of panics recovered",
		},
		[]string{"component"},
	)
)
