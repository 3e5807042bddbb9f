package kafka

import (
	"context"
	"encoding/json"
	"errors"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Consumer читает уведомления корзины из топика в составе группы
type Consumer struct {
	Reader MessageReader
	Logger *zap.SugaredLogger
}

func NewConsumer(brokers []string, topic, groupID string, logger *zap.SugaredLogger) EventConsumer {
	return &Consumer{
		Reader: kgo.NewReader(kgo.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6, // 10MB
		}),
		Logger: logger,
	}
}

// Consume читает до отмены ctx.
// Смещение коммитится только после успешной обработки, так что упавшее событие придёт снова
// после перебалансировки. Битые сообщения коммитятся сразу, повторять их бессмысленно.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Event) error) {
	for {
		msg, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			c.Logger.Errorw("failed to fetch message", "error", err)
			continue
		}

		event, err := decodeEvent(msg)
		if err != nil {
			c.Logger.Warnw("skipping malformed message",
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err,
			)
			c.commit(ctx, msg)
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.Logger.Errorw("failed to process event",
				"event_id", event.ID,
				"offset", msg.Offset,
				"error", err,
			)
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *Consumer) commit(ctx context.Context, msg kgo.Message) {
	if err := c.Reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
		c.Logger.Errorw("failed to commit offset", "offset", msg.Offset, "error", err)
	}
}

// decodeEvent разбирает тело и сверяет его с заголовком типа, если он есть
func decodeEvent(msg kgo.Message) (Event, error) {
	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return Event{}, err
	}
	for _, h := range msg.Headers {
		if h.Key == HeaderEventType && string(h.Value) != string(event.Type) {
			return Event{}, errors.Join(ErrInvalidEvent, errors.New("header type "+string(h.Value)+" differs from body"))
		}
	}
	return event, nil
}

func (c *Consumer) Close() error {
	return c.Reader.Close()
}
