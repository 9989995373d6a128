package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"dropdeck/internal/engine"
	"dropdeck/internal/pkg/config"
	"dropdeck/internal/pkg/errs"
)

// KafkaSink mirrors lifecycle events onto a broker topic, keyed by shop so a
// shop's events stay ordered within a partition.
type KafkaSink struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaSink(cfg config.KafkaConfig, logger *slog.Logger) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

type envelope struct {
	Shop  string    `json:"shop"`
	Event any       `json:"event"`
	At    time.Time `json:"at"`
}

func (s *KafkaSink) Publish(ctx context.Context, shop string, ev engine.Event) error {
	payload, err := json.Marshal(envelope{Shop: shop, Event: ev, At: time.Now().UTC()})
	if err != nil {
		return errs.Wrap(err, "failed to encode event envelope")
	}
	if err := s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(shop),
		Value: payload,
	}); err != nil {
		return errs.Wrap(err, "failed to write event to broker")
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
