package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"freshcart/internal/kafka"
)

// KafkaNotifier публикует уведомления в Kafka
type KafkaNotifier struct {
	Producer  kafka.EventProducer
	Logger    *zap.SugaredLogger
	SessionID string
	now       func() time.Time
}

func NewKafkaNotifier(producer kafka.EventProducer, sessionID string, logger *zap.SugaredLogger) *KafkaNotifier {
	return &KafkaNotifier{
		Producer:  producer,
		Logger:    logger,
		SessionID: sessionID,
		now:       time.Now,
	}
}

func (n *KafkaNotifier) NotifySuccess(ctx context.Context, message string) {
	n.send(ctx, kafka.EventTypeNotifySuccess, message)
}

func (n *KafkaNotifier) NotifyError(ctx context.Context, message string) {
	n.send(ctx, kafka.EventTypeNotifyError, message)
}

func (n *KafkaNotifier) send(ctx context.Context, eventType kafka.EventType, message string) {
	event := kafka.Event{
		ID:        uuid.New().String(),
		SessionID: n.SessionID,
		Type:      eventType,
		Message:   message,
		Timestamp: n.now().UTC(),
	}

	if err := n.Producer.SendEvent(ctx, event); err != nil {
		n.Logger.Warnf("failed to send %s notification: %v", eventType, err)
	}
}
