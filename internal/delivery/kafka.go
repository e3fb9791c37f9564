package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AlertEvent is the Kafka message value.
type AlertEvent struct {
	UserID int64     `json:"user_id"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// KafkaNotifier publishes alerts keyed by user ID so one user's alerts stay ordered.
type KafkaNotifier struct {
	writer messageWriter
	now    func() time.Time
}

func (k *KafkaNotifier) Send(ctx context.Context, userID int64, text string) error {
	now := k.now()
	msg, err := json.Marshal(AlertEvent{UserID: userID, Text: text, SentAt: now})
	if err != nil {
		return err
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: msg,
		Time:  now,
	}); err != nil {
		return fmt.Errorf("kafka: failed to write alert: %w", err)
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}
