// Package events publishes chat state changes to Kafka so other services
// (search indexing, moderation, analytics) can follow the room.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event types
const (
	MessageCreated = "message.created"
	MessageEdited  = "message.edited"
	MessageDeleted = "message.deleted"
	ThemeChanged   = "theme.changed"
)

// Config defines fields used for parsing Kafka settings from environment variables.
// Publishing is disabled when Brokers is empty.
type Config struct {
	Brokers      []string      `env:"KAFKA_BROKERS" envSeparator:","`
	Topic        string        `env:"KAFKA_TOPIC" envDefault:"chat-events"`
	WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"5s"`
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms"`
	MaxAttempts  int           `env:"KAFKA_MAX_ATTEMPTS" envDefault:"3"`
}

// Event is the envelope written as the Kafka message value
type Event struct {
	Type       string      `json:"type"`
	Key        int64       `json:"key"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Publisher delivers chat events
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by entity id so updates of one record stay ordered within a partition.
// Writes are synchronous; BatchTimeout and MaxAttempts bound how long a caller waits.
type KafkaPublisher struct {
	logger *zap.SugaredLogger
	w      writer
}

func NewKafkaPublisher(logger *zap.SugaredLogger, cfg Config) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger,
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			WriteTimeout: cfg.WriteTimeout,
			BatchTimeout: cfg.BatchTimeout,
			MaxAttempts:  cfg.MaxAttempts,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", e.Type, err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(e.Key, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
		Time: e.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("writing %s event: %w", e.Type, err)
	}

	p.logger.Debugf("Published %s event (key: %d)", e.Type, e.Key)

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }

// New returns a KafkaPublisher when brokers are configured and Nop otherwise
func New(logger *zap.SugaredLogger, cfg Config) Publisher {
	if len(cfg.Brokers) == 0 {
		return Nop{}
	}
	return NewKafkaPublisher(logger, cfg)
}
