package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"freshcart/internal/types/cart"
)

// DeliveryOption - способ доставки
type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
)

// StatusProcessing - статус нового заказа
const StatusProcessing = "Processing"

// Shipping - данные доставки из формы оформления заказа.
// Ключи JSON совпадают с теми, что пишет браузерное приложение.
type Shipping struct {
	FirstName      string         `json:"firstName" validate:"required"`
	LastName       string         `json:"lastName" validate:"required"`
	Email          string         `json:"email" validate:"required"`
	Address        string         `json:"address" validate:"required"`
	City           string         `json:"city" validate:"required"`
	PostalCode     string         `json:"postalCode" validate:"required"`
	DeliveryOption DeliveryOption `json:"deliveryOption"`
}

// ID - номер заказа. Браузер хранил его числом (Date.now()), сервер пишет uuid строкой.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())

	return nil
}

// Order - оформленный заказ, хранится в общем списке заказов
type Order struct {
	ID          ID              `json:"id"`
	Items       []cart.CartItem `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	Shipping    Shipping        `json:"shipping"`
}
