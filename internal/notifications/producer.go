package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"smartbus/internal/bookings"
	"smartbus/pkg/logger"
)

// KafkaProducerConfig contains configuration for the Kafka booking-event producer
type KafkaProducerConfig struct {
	Brokers         []string
	Topic           string
	RetryMax        int
	TimeoutMs       int
	RequiredAcks    sarama.RequiredAcks
	CompressionType sarama.CompressionCodec
	IdempotentWrite bool
	MaxMessageBytes int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:         []string{"localhost:9092"},
		Topic:           "booking-events",
		RetryMax:        3,
		TimeoutMs:       10000,
		RequiredAcks:    sarama.WaitForAll,
		CompressionType: sarama.CompressionSnappy,
		IdempotentWrite: true,
		MaxMessageBytes: 1000000, // 1MB
	}
}

// KafkaNotifier publishes booking lifecycle events to Kafka. Publishing is
// best-effort: errors are logged and swallowed so notification availability
// never affects booking correctness.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

// NewKafkaNotifier creates a Kafka-backed booking event notifier.
func NewKafkaNotifier(config *KafkaProducerConfig) (*KafkaNotifier, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrite
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrite {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps one booking's events on one partition.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		config:   config,
		log:      logger.GetDefault(),
	}, nil
}

// PublishBookingEvent publishes one lifecycle event. Failures are logged,
// never returned.
func (n *KafkaNotifier) PublishBookingEvent(ctx context.Context, kind string, booking *bookings.Booking) {
	event := NewBookingEvent(kind, booking)

	messageBytes, err := event.ToJSON()
	if err != nil {
		n.log.ErrorContext(ctx, "failed to marshal booking event",
			slog.String("kind", kind),
			slog.String("booking_id", event.Booking.ID),
			slog.Any("error", err),
		)
		return
	}

	message := &sarama.ProducerMessage{
		Topic:     n.config.Topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   n.createHeaders(event),
		Timestamp: event.EmittedAt,
	}

	partition, offset, err := n.producer.SendMessage(message)
	if err != nil {
		n.log.ErrorContext(ctx, "failed to publish booking event",
			slog.String("kind", kind),
			slog.String("booking_id", event.Booking.ID),
			slog.Any("error", err),
		)
		return
	}

	n.log.DebugContext(ctx, "booking event published",
		slog.String("topic", n.config.Topic),
		slog.Int64("partition", int64(partition)),
		slog.Int64("offset", offset),
		slog.String("kind", kind),
		slog.String("booking_id", event.Booking.ID),
	)
}

func (n *KafkaNotifier) createHeaders(event *BookingEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_kind"), Value: []byte(event.Kind)},
		{Key: []byte("booking_id"), Value: []byte(event.Booking.ID)},
		{Key: []byte("booking_reference"), Value: []byte(event.Booking.BookingReference)},
		{Key: []byte("producer"), Value: []byte("smartbus-booking")},
		{Key: []byte("emitted_at"), Value: []byte(event.EmittedAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer
func (n *KafkaNotifier) Close() error {
	if n.producer != nil {
		if err := n.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// NoopNotifier discards booking events. Used when no Kafka brokers are
// configured so the service keeps running without notifications.
type NoopNotifier struct{}

func (NoopNotifier) PublishBookingEvent(ctx context.Context, kind string, booking *bookings.Booking) {
}
