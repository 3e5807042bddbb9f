package feed

import (
	"context"

	"freshcart/internal/kafka"
)

// FeedRepo - хранилище ленты уведомлений по сессиям.
type FeedRepo interface {
	Append(ctx context.Context, event kafka.Event) error
	Recent(ctx context.Context, sessionID string, limit int) ([]kafka.Event, error)
}

// FeedService - сервис, который разбирает события из Kafka и отдаёт ленту.
type FeedService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	Recent(ctx context.Context, sessionID string, limit int) ([]kafka.Event, error)
}
