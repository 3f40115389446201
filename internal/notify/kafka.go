package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes order events for the email and SMS dispatchers.
type KafkaNotifier struct {
	logger *slog.Logger
	writer messageWriter
}

// NewKafkaNotifier creates an async producer. Delivery failures are only
// logged, a lost notification never fails an order operation.
func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	logger = logger.With(slog.String("notifier", "kafka"))
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err == nil {
				return
			}
			publishFailures.Add(float64(len(messages)))
			logger.Error("failed to deliver order events", slog.Int("count", len(messages)), slog.Any("error", err))
		},
	}
	return newKafkaNotifier(logger, w)
}

func newKafkaNotifier(logger *slog.Logger, w messageWriter) *KafkaNotifier {
	return &KafkaNotifier{logger: logger, writer: w}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		publishFailures.Inc()
		return fmt.Errorf("failed to publish event: %w", err)
	}
	eventsPublished.WithLabelValues(string(event.Type)).Inc()
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// LogNotifier only logs events. It is used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(slog.String("notifier", "log"))}
}

func (n *LogNotifier) Notify(ctx context.Context, event entities.OrderEvent) error {
	n.logger.InfoContext(ctx, "order event",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
		slog.String("status", string(event.Status)),
	)
	return nil
}
