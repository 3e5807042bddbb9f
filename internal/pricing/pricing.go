package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	myErr "freshcart/internal/types/errors"
	"freshcart/internal/types/order"
)

// Config - тарифы магазина. Coupons: код в нижнем регистре -> процент скидки.
type Config struct {
	CartShipping     decimal.Decimal
	StandardDelivery decimal.Decimal
	ExpressDelivery  decimal.Decimal
	TaxRate          decimal.Decimal
	Coupons          map[string]decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		CartShipping:     decimal.RequireFromString("4.99"),
		StandardDelivery: decimal.RequireFromString("4.99"),
		ExpressDelivery:  decimal.RequireFromString("9.99"),
		TaxRate:          decimal.RequireFromString("0.08"),
		Coupons: map[string]decimal.Decimal{
			"fresh10": decimal.NewFromInt(10),
		},
	}
}

// Summary - итог для страницы корзины
type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Coupon   string          `json:"coupon,omitempty"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutTotals - итог при оформлении заказа
type CheckoutTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Summarize считает итог корзины. Пустой coupon - без скидки.
// Для неизвестного купона возвращается итог без скидки и ErrInvalidCoupon.
func (c *Calculator) Summarize(subtotal decimal.Decimal, coupon string) (Summary, error) {
	summary := Summary{
		Subtotal: subtotal,
		Discount: decimal.Zero,
		Shipping: decimal.Zero,
	}
	if subtotal.IsPositive() {
		summary.Shipping = c.cfg.CartShipping
	}

	var couponErr error
	if code := strings.ToLower(strings.TrimSpace(coupon)); code != "" {
		percent, ok := c.cfg.Coupons[code]
		if ok {
			summary.Coupon = code
			summary.Discount = subtotal.Mul(percent).Div(decimal.NewFromInt(100))
		} else {
			couponErr = myErr.ErrInvalidCoupon
		}
	}

	summary.Total = subtotal.Sub(summary.Discount).Add(summary.Shipping)

	return summary, couponErr
}

// Checkout считает доставку и налог; округления нет, это забота отображения
func (c *Calculator) Checkout(subtotal decimal.Decimal, option order.DeliveryOption) (CheckoutTotals, error) {
	var fee decimal.Decimal
	switch option {
	case order.DeliveryStandard, "":
		fee = c.cfg.StandardDelivery
	case order.DeliveryExpress:
		fee = c.cfg.ExpressDelivery
	default:
		return CheckoutTotals{}, myErr.ErrBadDelivery
	}

	tax := subtotal.Mul(c.cfg.TaxRate)

	return CheckoutTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax),
	}, nil
}
