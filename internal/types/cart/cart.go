package cart

import "github.com/shopspring/decimal"

// CartItem - позиция в корзине, ключ позиции - ID товара
type CartItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
	Quantity int             `json:"quantity"`
}

// NewItem - форма добавления товара в корзину (без количества)
type NewItem struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Image string          `json:"image"`
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit"`
}

// WithQuantity собирает позицию корзины из формы
func (n NewItem) WithQuantity(quantity int) CartItem {
	return CartItem{
		ID:       n.ID,
		Name:     n.Name,
		Image:    n.Image,
		Price:    n.Price,
		Unit:     n.Unit,
		Quantity: quantity,
	}
}

// Totals - агрегаты по корзине
type Totals struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}
