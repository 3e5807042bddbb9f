package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"freshcart/internal/cart"
	"freshcart/internal/notify"
	"freshcart/internal/pricing"
	"freshcart/internal/storage"
	types "freshcart/internal/types/cart"
	myErr "freshcart/internal/types/errors"
	"freshcart/internal/types/order"
)

// OrdersKey - ключ списка заказов в хранилище
const OrdersKey = "orders"

// Service оформляет заказ из текущей корзины
type Service struct {
	Cart     cart.CartStore
	Store    storage.KeyValueStore
	Calc     *pricing.Calculator
	Notifier notify.Notifier
	Logger   *zap.SugaredLogger

	// mu сериализует чтение-изменение-запись списка заказов
	mu  sync.Mutex
	now func() time.Time
}

func NewService(
	cartStore cart.CartStore,
	kv storage.KeyValueStore,
	calc *pricing.Calculator,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
) *Service {
	return &Service{
		Cart:     cartStore,
		Store:    kv,
		Calc:     calc,
		Notifier: notifier,
		Logger:   logger,
		now:      time.Now,
	}
}

// PlaceOrder проверяет форму, сохраняет заказ и очищает корзину.
// Снимок, запись заказа и очистка идут одним переходом корзины.
// Заказ пишется до очистки: при сбое записи корзина остаётся целой.
func (s *Service) PlaceOrder(ctx context.Context, shipping order.Shipping) (order.Order, error) {
	if missingFields(shipping) {
		s.Notifier.NotifyError(ctx, "Please fill in all required fields")
		return order.Order{}, myErr.ErrMissingFields
	}

	if shipping.DeliveryOption == "" {
		shipping.DeliveryOption = order.DeliveryStandard
	}

	var (
		newOrder order.Order
		placed   bool
	)
	err := s.Cart.Checkout(ctx, func(items []types.CartItem) error {
		if len(items) == 0 {
			return myErr.ErrEmptyCart
		}

		totals, err := s.Calc.Checkout(cart.Subtotal(items), shipping.DeliveryOption)
		if err != nil {
			return err
		}

		newOrder = order.Order{
			ID:          order.ID(uuid.New().String()),
			Items:       items,
			Subtotal:    totals.Subtotal,
			DeliveryFee: totals.DeliveryFee,
			Tax:         totals.Tax,
			Total:       totals.Total,
			Date:        s.now().UTC(),
			Status:      order.StatusProcessing,
			Shipping:    shipping,
		}

		if err := s.appendOrder(ctx, newOrder); err != nil {
			s.Logger.Errorw("failed to save order",
				"order_id", newOrder.ID,
				"err", err,
			)
			s.Notifier.NotifyError(ctx, "Failed to place order")
			return err
		}
		placed = true

		return nil
	})

	switch {
	case errors.Is(err, myErr.ErrEmptyCart):
		s.Notifier.NotifyError(ctx, "Your cart is empty")
		return order.Order{}, err
	case err != nil && !placed:
		return order.Order{}, err
	case err != nil:
		// заказ уже сохранён, ошибку записи корзины Store сам показал пользователю
		s.Logger.Warnw("order saved but cart was not cleared in storage",
			"order_id", newOrder.ID,
			"err", err,
		)
	}

	s.Notifier.NotifySuccess(ctx, "Order placed successfully!")
	s.Logger.Infow("order placed",
		"order_id", newOrder.ID,
		"items", len(newOrder.Items),
		"total", newOrder.Total.String(),
	)

	return newOrder, nil
}

// Orders возвращает сохранённые заказы; битое значение считается пустым списком
func (s *Service) Orders(ctx context.Context) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadOrders(ctx)
}

func (s *Service) appendOrder(ctx context.Context, o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(append(orders, o))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.Store.Set(ctx, OrdersKey, string(data)); err != nil {
		return fmt.Errorf("save %q: %w", OrdersKey, err)
	}

	return nil
}

func (s *Service) loadOrders(ctx context.Context) ([]order.Order, error) {
	raw, found, err := s.Store.Get(ctx, OrdersKey)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", OrdersKey, err)
	}
	if !found {
		return []order.Order{}, nil
	}

	var orders []order.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.Logger.Warnw("stored orders are corrupt, treating as empty",
			"key", OrdersKey,
			"err", err,
		)
		return []order.Order{}, nil
	}
	if orders == nil {
		orders = []order.Order{}
	}

	return orders, nil
}

var validate = validator.New()

// missingFields - поля из одних пробелов считаются пустыми
func missingFields(s order.Shipping) bool {
	for _, v := range []*string{&s.FirstName, &s.LastName, &s.Email, &s.Address, &s.City, &s.PostalCode} {
		*v = strings.TrimSpace(*v)
	}

	return validate.Struct(s) != nil
}
