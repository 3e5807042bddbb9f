package cart

import (
	"context"

	"github.com/shopspring/decimal"

	types "freshcart/internal/types/cart"
)

// CartStore - публичный API корзины для остального приложения
//
//go:generate mockgen -source=cart.go -destination=../mocks/mock_cart_store.go -package=mocks
type CartStore interface {
	// AddToCart добавляет одну единицу товара и уведомляет об успехе
	AddToCart(ctx context.Context, item types.NewItem) error
	// RemoveItem удаляет позицию; отсутствие позиции не ошибка
	RemoveItem(ctx context.Context, id int) error
	// UpdateQuantity меняет количество на delta, но не ниже 1
	UpdateQuantity(ctx context.Context, id int, delta int) error
	// ClearCart очищает корзину
	ClearCart(ctx context.Context) error
	// Checkout передаёт снимок корзины в place и, если place успешен, очищает корзину
	// без окна для других переходов между снимком и очисткой
	Checkout(ctx context.Context, place func(items []types.CartItem) error) error
	// Items возвращает копию текущего списка позиций
	Items() []types.CartItem
	// GetTotalItems - суммарное количество единиц товара
	GetTotalItems() int
	// GetSubtotal - сумма price*quantity
	GetSubtotal() decimal.Decimal
}
