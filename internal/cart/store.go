package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"freshcart/internal/notify"
	types "freshcart/internal/types/cart"
	myErr "freshcart/internal/types/errors"
)

var _ CartStore = (*Store)(nil)

// Listener получает снимок позиций после каждого перехода
type Listener func(items []types.CartItem)

// Store - единственный владелец состояния корзины.
// Все переходы идут через Dispatch и выполняются по одному.
type Store struct {
	mu    sync.Mutex
	items []types.CartItem

	// pubMu держит порядок рассылки подписчикам таким же, как порядок переходов
	pubMu     sync.Mutex
	listeners map[int]Listener
	nextID    int

	bridge   *Bridge
	notifier notify.Notifier
	logger   *zap.SugaredLogger
	metrics  *Metrics
}

type Option func(*Store)

func WithMetrics(m *Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// NewStore поднимает корзину из хранилища.
// Битые данные не валят старт: значение удаляется, корзина начинается пустой,
// пользователь получает уведомление.
func NewStore(
	ctx context.Context,
	bridge *Bridge,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
	opts ...Option,
) (*Store, error) {
	s := &Store{
		listeners: map[int]Listener{},
		bridge:    bridge,
		notifier:  notifier,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	items, err := bridge.Load(ctx)
	switch {
	case errors.Is(err, myErr.ErrCorruptData):
		logger.Warnw("stored cart is corrupt, starting empty",
			"key", bridge.Key(),
			"err", err,
		)
		notifier.NotifyError(ctx, "Saved cart could not be restored")
		if err := bridge.Discard(ctx); err != nil {
			logger.Warnw("failed to discard corrupt cart",
				"key", bridge.Key(),
				"err", err,
			)
		}
		items = []types.CartItem{}
	case err != nil:
		return nil, err
	}

	s.items = items
	logger.Infow("cart loaded",
		"key", bridge.Key(),
		"items", len(items),
	)

	return s, nil
}

// Dispatch применяет переход, сохраняет полный список и рассылает снимок подписчикам.
// При ошибке записи состояние в памяти уже новое, отката нет.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	switch action.Kind {
	case ActionAdd, ActionRemove, ActionUpdateQuantity, ActionClear:
	default:
		return fmt.Errorf("unknown cart action %d", action.Kind)
	}

	s.mu.Lock()
	return s.commit(ctx, action)
}

// Checkout отдаёт place снимок корзины и очищает её тем же переходом.
// Пока работает place, остальные переходы ждут: позиция, добавленная во время
// оформления, попадает уже в новую корзину. place не должен обращаться к Store.
// Если place вернул ошибку, корзина не меняется и ошибка возвращается как есть.
func (s *Store) Checkout(ctx context.Context, place func(items []types.CartItem) error) error {
	s.mu.Lock()
	if err := place(clone(s.items)); err != nil {
		s.mu.Unlock()
		return err
	}

	return s.commit(ctx, Clear())
}

// commit вызывается под mu и отпускает его перед рассылкой подписчикам
func (s *Store) commit(ctx context.Context, action Action) error {
	s.items = Reduce(s.items, action)
	snapshot := clone(s.items)
	s.metrics.observe(action.Kind, TotalItems(snapshot))

	persistErr := s.bridge.Save(ctx, snapshot)

	s.pubMu.Lock()
	s.mu.Unlock()
	s.publish(snapshot)
	s.pubMu.Unlock()

	if persistErr != nil {
		s.metrics.persistFailed()
		s.logger.Errorw("failed to persist cart",
			"action", action.Kind.String(),
			"err", persistErr,
		)
		s.notifier.NotifyError(ctx, "Failed to save your cart")

		return fmt.Errorf("%w: %v", myErr.ErrPersist, persistErr)
	}

	return nil
}

func (s *Store) AddToCart(ctx context.Context, item types.NewItem) error {
	if err := s.Dispatch(ctx, Add(item, 1)); err != nil {
		return err
	}

	s.notifier.NotifySuccess(ctx, fmt.Sprintf("%s added to cart", item.Name))

	return nil
}

func (s *Store) RemoveItem(ctx context.Context, id int) error {
	return s.Dispatch(ctx, Remove(id))
}

func (s *Store) UpdateQuantity(ctx context.Context, id int, delta int) error {
	return s.Dispatch(ctx, UpdateQuantity(id, delta))
}

func (s *Store) ClearCart(ctx context.Context) error {
	return s.Dispatch(ctx, Clear())
}

func (s *Store) Items() []types.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.items)
}

func (s *Store) GetTotalItems() int {
	return TotalItems(s.Items())
}

func (s *Store) GetSubtotal() decimal.Decimal {
	return Subtotal(s.Items())
}

// Subscribe регистрирует слушателя и возвращает функцию отписки.
// Слушатель вызывается синхронно и не должен сам вызывать Dispatch.
func (s *Store) Subscribe(fn Listener) func() {
	s.pubMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.pubMu.Unlock()

	return func() {
		s.pubMu.Lock()
		delete(s.listeners, id)
		s.pubMu.Unlock()
	}
}

// publish вызывается под pubMu
func (s *Store) publish(items []types.CartItem) {
	for _, fn := range s.listeners {
		fn(clone(items))
	}
}
