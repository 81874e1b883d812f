package kafka

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsevents "github.com/SscSPs/contabil_engine/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// Publisher writes ledger posting events to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

var _ portsevents.Publisher = (*Publisher)(nil)

// PublishLedgerPosted serializes the event and writes it keyed by tenant plus
// financial entry id, so per-entry events stay ordered within a partition.
func (p *Publisher) PublishLedgerPosted(ctx context.Context, event domain.LedgerPostedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key, err := json.Marshal([2]int64{event.TenantID, event.FinancialEntryID})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
