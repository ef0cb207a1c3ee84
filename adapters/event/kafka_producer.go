package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/resumekit/resumekit/internal/config"
)

const (
	TopicDocumentEvents = "document.events"
	TopicExportEvents   = "export.events"
)

const (
	DocumentEventTypeMutated  = "document.mutated"
	DocumentEventTypeRestored = "document.restored"
	DocumentEventTypeReset    = "document.reset"

	ExportEventTypeCompleted = "export.completed"
	ExportEventTypeFailed    = "export.failed"
)

type DocumentEventPayload struct {
	EventType string    `json:"event_type"`
	Template  string    `json:"template"`
	At        time.Time `json:"at"`
}

type ExportEventPayload struct {
	EventType string    `json:"event_type"`
	Stage     string    `json:"stage"`
	Filename  string    `json:"filename,omitempty"`
	SizeBytes int       `json:"size_bytes,omitempty"`
	At        time.Time `json:"at"`
}

type KafkaProducerClient struct {
	DocumentEventsWriter *kafka.Writer
	ExportEventsWriter   *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'document.events'
	documentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicDocumentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	// writer 'export.events'
	exportWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicExportEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		DocumentEventsWriter: documentWriter,
		ExportEventsWriter:   exportWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishDocumentEvent(ctx context.Context, payload DocumentEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal document event: %w", err)
	}
	return c.DocumentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.EventType),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishExportEvent(ctx context.Context, payload ExportEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal export event: %w", err)
	}
	return c.ExportEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.EventType),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.DocumentEventsWriter != nil {
		c.DocumentEventsWriter.Close()
	}
	if c.ExportEventsWriter != nil {
		c.ExportEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}
