package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"

	"klaxon/internal/config"
	"klaxon/internal/logger"
	"klaxon/internal/metrics"
	"klaxon/internal/models"
)

// Sink receives decoded event assertions from the consumer. Returns
// false when the assertion was dropped (mailbox full).
type Sink interface {
	Assert(a models.EventAssertion) bool
}

// Consumer reads event assertion messages from Kafka and feeds them into
// the control loop mailbox. Messages may carry a single assertion or a
// batch.
type Consumer struct {
	reader *kafka.Reader
	sink   Sink
}

// NewConsumer creates a consumer for the events topic.
func NewConsumer(cfg config.KafkaConfig, sink Sink) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if cfg.EventsTopic == "" {
		return nil, errors.New("events topic is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.EventsTopic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    1 << 20, // 1MB
		StartOffset: kafka.LastOffset,
	})

	return &Consumer{reader: reader, sink: sink}, nil
}

// Run consumes messages until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	log := logger.WithComponent("kafka_consumer")
	log.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group", c.reader.Config().GroupID).
		Msg("consumer started")

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info().Msg("consumer stopped")
				return nil
			}
			log.Error().Err(err).Msg("read failed")
			return err
		}

		for _, a := range decodeAssertions(msg.Value) {
			a.Normalize()
			if err := a.Validate(); err != nil {
				metrics.KafkaConsumeTotal.WithLabelValues("decode_error").Inc()
				continue
			}
			if c.sink.Assert(a) {
				metrics.KafkaConsumeTotal.WithLabelValues("ok").Inc()
				metrics.EventsAssertedTotal.WithLabelValues("kafka", "accepted").Inc()
			} else {
				metrics.KafkaConsumeTotal.WithLabelValues("dropped").Inc()
			}
		}
	}
}

// decodeAssertions accepts either a single assertion object or an array.
func decodeAssertions(data []byte) []models.EventAssertion {
	var batch []models.EventAssertion
	if err := json.Unmarshal(data, &batch); err == nil {
		return batch
	}

	var single models.EventAssertion
	if err := json.Unmarshal(data, &single); err == nil && single.Name != "" {
		return []models.EventAssertion{single}
	}

	metrics.KafkaConsumeTotal.WithLabelValues("decode_error").Inc()
	return nil
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
