package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	myErr "freshcart/internal/types/errors"
	"freshcart/internal/types/order"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculator_Summarize(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		name         string
		subtotal     decimal.Decimal
		coupon       string
		wantDiscount string
		wantShipping string
		wantTotal    string
		wantError    error
	}{
		{
			name:         "пустая корзина: без доставки",
			subtotal:     decimal.Zero,
			wantDiscount: "0",
			wantShipping: "0",
			wantTotal:    "0",
		},
		{
			name:         "без купона",
			subtotal:     dec("7.97"),
			wantDiscount: "0",
			wantShipping: "4.99",
			wantTotal:    "12.96",
		},
		{
			name:         "купон без учёта регистра",
			subtotal:     dec("20"),
			coupon:       "FRESH10",
			wantDiscount: "2",
			wantShipping: "4.99",
			wantTotal:    "22.99",
		},
		{
			name:         "неизвестный купон: ошибка и без скидки",
			subtotal:     dec("20"),
			coupon:       "free100",
			wantDiscount: "0",
			wantShipping: "4.99",
			wantTotal:    "24.99",
			wantError:    myErr.ErrInvalidCoupon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Summarize(tt.subtotal, tt.coupon)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}

			assert.True(t, dec(tt.wantDiscount).Equal(got.Discount), "discount %s", got.Discount)
			assert.True(t, dec(tt.wantShipping).Equal(got.Shipping), "shipping %s", got.Shipping)
			assert.True(t, dec(tt.wantTotal).Equal(got.Total), "total %s", got.Total)
		})
	}
}

func TestCalculator_Checkout(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		name      string
		option    order.DeliveryOption
		wantFee   string
		wantTax   string
		wantTotal string
		wantError error
	}{
		{
			name:      "стандартная доставка",
			option:    order.DeliveryStandard,
			wantFee:   "4.99",
			wantTax:   "0.8",
			wantTotal: "15.79",
		},
		{
			name:      "по умолчанию стандартная",
			option:    "",
			wantFee:   "4.99",
			wantTax:   "0.8",
			wantTotal: "15.79",
		},
		{
			name:      "экспресс",
			option:    order.DeliveryExpress,
			wantFee:   "9.99",
			wantTax:   "0.8",
			wantTotal: "20.79",
		},
		{
			name:      "неизвестный способ",
			option:    "drone",
			wantError: myErr.ErrBadDelivery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Checkout(dec("10"), tt.option)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.True(t, dec(tt.wantFee).Equal(got.DeliveryFee), "fee %s", got.DeliveryFee)
			assert.True(t, dec(tt.wantTax).Equal(got.Tax), "tax %s", got.Tax)
			assert.True(t, dec(tt.wantTotal).Equal(got.Total), "total %s", got.Total)
		})
	}
}

func TestFormatter(t *testing.T) {
	f, err := NewFormatter("USD")
	require.NoError(t, err)

	assert.Equal(t, "USD", f.Currency())
	assert.Contains(t, f.Format(dec("2.99")), "2.99")

	_, err = NewFormatter("XXXX")
	assert.Error(t, err)
}
