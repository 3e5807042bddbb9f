package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier - приёмник уведомлений для пользователя (аналог toast).
// Вызовы fire-and-forget: ошибки доставки не возвращаются.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyError(ctx context.Context, message string)
}

// LogNotifier пишет уведомления в лог
type LogNotifier struct {
	Logger *zap.SugaredLogger
}

func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) NotifySuccess(_ context.Context, message string) {
	n.Logger.Infow("notification",
		"kind", "success",
		"message", message,
	)
}

func (n *LogNotifier) NotifyError(_ context.Context, message string) {
	n.Logger.Warnw("notification",
		"kind", "error",
		"message", message,
	)
}

// Multi рассылает уведомление всем приёмникам по порядку
type Multi []Notifier

func (m Multi) NotifySuccess(ctx context.Context, message string) {
	for _, n := range m {
		n.NotifySuccess(ctx, message)
	}
}

func (m Multi) NotifyError(ctx context.Context, message string) {
	for _, n := range m {
		n.NotifyError(ctx, message)
	}
}
