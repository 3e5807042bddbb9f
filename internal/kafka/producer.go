package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer публикует уведомления корзины в топик
type Producer struct {
	Writer MessageWriter
	Logger *zap.SugaredLogger
}

// NewProducer создаёт продюсер поверх *kafka.Writer.
// Hash по ключу держит события одной сессии в одной партиции, поэтому их порядок сохраняется.
func NewProducer(brokers []string, topic string, logger *zap.SugaredLogger) *Producer {
	return &Producer{
		Writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		Logger: logger,
	}
}

// SendEvent проверяет событие и пишет его с ключом SessionID и заголовком типа
func (p *Producer) SendEvent(ctx context.Context, event Event) error {
	if err := event.validate(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
		Time: event.Timestamp,
	}
	if err := p.Writer.WriteMessages(ctx, msg); err != nil {
		p.Logger.Errorw("failed to write cart event",
			"event_id", event.ID,
			"session_id", event.SessionID,
			"type", event.Type,
			"error", err,
		)
		return fmt.Errorf("write event %s: %w", event.ID, err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
