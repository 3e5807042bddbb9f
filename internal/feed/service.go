package feed

import (
	"context"

	"go.uber.org/zap"

	"freshcart/internal/kafka"
)

type Service struct {
	repo   FeedRepo
	logger *zap.SugaredLogger
}

func NewService(repo FeedRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.SessionID == "" {
		return nil // Игнорируем события без сессии
	}

	switch event.Type {
	case kafka.EventTypeNotifySuccess, kafka.EventTypeNotifyError:
	default:
		s.logger.Debugw("skip unknown event", "type", event.Type, "id", event.ID)
		return nil
	}

	s.logger.Infow("notification received",
		"session_id", event.SessionID,
		"type", event.Type,
		"message", event.Message,
	)

	return s.repo.Append(ctx, event)
}

func (s *Service) Recent(ctx context.Context, sessionID string, limit int) ([]kafka.Event, error) {
	return s.repo.Recent(ctx, sessionID, limit)
}
