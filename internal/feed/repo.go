package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"freshcart/internal/kafka"
	"freshcart/internal/storage"
)

const keyPrefix = "notifications:"

// Repository держит последние History событий каждой сессии
// одним JSON-массивом под ключом notifications:<session_id>.
type Repository struct {
	store   storage.KeyValueStore
	logger  *zap.SugaredLogger
	history int

	mu sync.Mutex
}

func NewRepository(store storage.KeyValueStore, history int, logger *zap.SugaredLogger) *Repository {
	if history < 1 {
		history = DefaultHistory
	}

	return &Repository{
		store:   store,
		logger:  logger,
		history: history,
	}
}

func (r *Repository) Append(ctx context.Context, event kafka.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx, event.SessionID)
	if err != nil {
		return err
	}

	events = append(events, event)
	if len(events) > r.history {
		events = events[len(events)-r.history:]
	}

	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}

	return r.store.Set(ctx, keyPrefix+event.SessionID, string(raw))
}

// Recent возвращает до limit последних событий, новые первыми
func (r *Repository) Recent(ctx context.Context, sessionID string, limit int) ([]kafka.Event, error) {
	r.mu.Lock()
	events, err := r.load(ctx, sessionID)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}

	res := make([]kafka.Event, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		res = append(res, events[i])
	}

	return res, nil
}

func (r *Repository) load(ctx context.Context, sessionID string) ([]kafka.Event, error) {
	raw, found, err := r.store.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("load notifications of %s: %w", sessionID, err)
	}
	if !found {
		return nil, nil
	}

	var events []kafka.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		// битую ленту перезаписываем с нуля
		r.logger.Warnw("corrupt notification feed",
			"session_id", sessionID,
			"error", err,
		)
		return nil, nil
	}

	return events, nil
}
