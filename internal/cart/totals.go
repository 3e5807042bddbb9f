package cart

import (
	"github.com/shopspring/decimal"

	types "freshcart/internal/types/cart"
)

// TotalItems - сумма количеств по всем позициям
func TotalItems(items []types.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}

// Subtotal - сумма price*quantity без округления
func Subtotal(items []types.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}
