package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"klaxon/internal/config"
	"klaxon/internal/logger"
	"klaxon/internal/metrics"
	"klaxon/internal/models"
)

// Producer errors
var (
	ErrProducerClosed  = errors.New("producer is closed")
	ErrSerializeFailed = errors.New("failed to serialize frame")
)

// Producer publishes alert frames to Kafka through a pool of writers.
type Producer struct {
	cfg     config.ProducerConfig
	topic   string
	writers []*kafka.Writer
	pool    chan *kafka.Writer
	brokers []string
	closed  atomic.Bool

	// Metrics
	framesSent   atomic.Uint64
	framesFailed atomic.Uint64
	bytesWritten atomic.Uint64
}

// NewProducer creates a Kafka producer for the given topic.
func NewProducer(brokers []string, topic string, cfg config.ProducerConfig) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic is required")
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 2
	}

	p := &Producer{
		cfg:     cfg,
		topic:   topic,
		brokers: brokers,
		writers: make([]*kafka.Writer, cfg.PoolSize),
		pool:    make(chan *kafka.Writer, cfg.PoolSize),
	}

	compression := getCompression(cfg.Compression)

	for i := 0; i < cfg.PoolSize; i++ {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{}, // Partition by key
			BatchSize:    cfg.BatchSize,
			BatchTimeout: cfg.BatchTimeout,
			WriteTimeout: cfg.WriteTimeout,
			RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
			Compression:  compression,
			MaxAttempts:  cfg.MaxRetries + 1,
			Async:        false, // Sync for reliability
		}
		p.writers[i] = writer
		p.pool <- writer
	}

	return p, nil
}

// getCompression returns the kafka compression codec
func getCompression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "snappy":
		return compress.Snappy
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	default:
		return compress.None // no compression
	}
}

// Publish sends one alert frame to Kafka, keyed by frame ID.
func (p *Producer) Publish(ctx context.Context, frame *models.AlertFrame) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	data, err := json.Marshal(frame)
	if err != nil {
		p.framesFailed.Add(1)
		metrics.KafkaPublishTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %v", ErrSerializeFailed, err)
	}

	msg := kafka.Message{
		Key:   []byte(frame.ID),
		Value: data,
		Time:  frame.Timestamp,
	}

	var writer *kafka.Writer
	select {
	case writer = <-p.pool:
	case <-ctx.Done():
		p.framesFailed.Add(1)
		metrics.KafkaPublishTotal.WithLabelValues("failed").Inc()
		return ctx.Err()
	}
	defer func() { p.pool <- writer }()

	start := time.Now()
	err = writer.WriteMessages(ctx, msg)
	metrics.KafkaPublishDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		p.framesFailed.Add(1)
		metrics.KafkaPublishTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to publish frame: %w", err)
	}

	p.framesSent.Add(1)
	p.bytesWritten.Add(uint64(len(data)))
	metrics.KafkaPublishTotal.WithLabelValues("success").Inc()
	metrics.KafkaBytesWritten.Add(float64(len(data)))
	return nil
}

// HealthCheck verifies broker connectivity.
func (p *Producer) HealthCheck(ctx context.Context) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("broker unreachable: %w", err)
	}
	return conn.Close()
}

// Close flushes and closes all writers.
func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	log := logger.WithComponent("kafka_producer")
	var firstErr error
	for _, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	log.Info().
		Uint64("sent", p.framesSent.Load()).
		Uint64("failed", p.framesFailed.Load()).
		Msg("producer closed")
	return firstErr
}

// Stats returns producer counters.
func (p *Producer) Stats() Stats {
	return Stats{
		FramesSent:   p.framesSent.Load(),
		FramesFailed: p.framesFailed.Load(),
		BytesWritten: p.bytesWritten.Load(),
	}
}

// Stats holds producer metrics.
type Stats struct {
	FramesSent   uint64
	FramesFailed uint64
	BytesWritten uint64
}
