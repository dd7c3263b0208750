package kafka

import (
	"testing"

	"klaxon/internal/config"
	"klaxon/internal/models"
)

type fakeSink struct{}

func (fakeSink) Assert(models.EventAssertion) bool { return true }

func testKafkaConfig(topic string) config.KafkaConfig {
	cfg := config.Default().Kafka
	cfg.EventsTopic = topic
	return cfg
}

func TestDecodeAssertionsBatch(t *testing.T) {
	got := decodeAssertions([]byte(`[{"name":"doorOpen"},{"name":"overheat","sticky":true}]`))
	if len(got) != 2 {
		t.Fatalf("decoded %d assertions, want 2", len(got))
	}
	if got[1].Name != "overheat" || !got[1].Sticky {
		t.Errorf("assertion = %+v", got[1])
	}
}

func TestDecodeAssertionsSingle(t *testing.T) {
	got := decodeAssertions([]byte(`{"name":"doorOpen"}`))
	if len(got) != 1 || got[0].Name != "doorOpen" {
		t.Fatalf("decoded %+v", got)
	}
}

func TestDecodeAssertionsGarbage(t *testing.T) {
	if got := decodeAssertions([]byte(`"nope"`)); got != nil {
		t.Errorf("garbage decoded to %+v", got)
	}
}

func TestNewConsumerValidation(t *testing.T) {
	if _, err := NewConsumer(testKafkaConfig(""), fakeSink{}); err == nil {
		t.Error("empty topic accepted")
	}
	if _, err := NewConsumer(testKafkaConfig("vehicle.events"), nil); err == nil {
		t.Error("nil sink accepted")
	}
}
