package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const DocumentEventsTopic = "backoffice.documents"

// DocumentEvent is emitted whenever a billing document or shipment
// changes. Downstream consumers (notifications, reporting) key off
// EventType, e.g. invoice.created, vendor_bill.updated,
// shipment.status_changed.
type DocumentEvent struct {
	EventType  string                 `json:"event_type"`
	DocumentID int64                  `json:"document_id"`
	Reference  string                 `json:"reference,omitempty"`
	JobNumber  string                 `json:"job_number,omitempty"`
	Currency   string                 `json:"currency,omitempty"`
	Amount     float64                `json:"amount,omitempty"`
	Status     string                 `json:"status,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

type DocumentEventPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewDocumentEventPublisher(brokers []string, logger *zap.Logger) *DocumentEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        DocumentEventsTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		MaxAttempts:  3,
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Compression:  kafka.Snappy,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Sugar().Errorf("kafka: "+msg, args...)
		}),
	}
	return &DocumentEventPublisher{writer: writer, logger: logger}
}

func (p *DocumentEventPublisher) Close() error {
	return p.writer.Close()
}

// Publish sends a document event. Events are keyed by job number so a
// shipment's documents land in order on one partition.
func (p *DocumentEventPublisher) Publish(ctx context.Context, event *DocumentEvent) error {
	event.Timestamp = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{Value: payload}
	if event.JobNumber != "" {
		msg.Key = []byte(event.JobNumber)
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("document event published",
		zap.String("event_type", event.EventType),
		zap.Int64("document_id", event.DocumentID))
	return nil
}

// PublishDocument is shorthand for the common created/updated/deleted cases.
func (p *DocumentEventPublisher) PublishDocument(ctx context.Context, eventType string, id int64, reference, jobNumber, currency string, amount float64, status string) error {
	return p.Publish(ctx, &DocumentEvent{
		EventType:  eventType,
		DocumentID: id,
		Reference:  reference,
		JobNumber:  jobNumber,
		Currency:   currency,
		Amount:     amount,
		Status:     status,
	})
}

// PublishShipmentStatus emits shipment.status_changed with both sides
// of the transition in metadata.
func (p *DocumentEventPublisher) PublishShipmentStatus(ctx context.Context, id int64, jobNumber, from, to string) error {
	return p.Publish(ctx, &DocumentEvent{
		EventType:  "shipment.status_changed",
		DocumentID: id,
		JobNumber:  jobNumber,
		Status:     to,
		Metadata:   map[string]interface{}{"previous_status": from},
	})
}
