//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"hotel-storefront/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		currency string
		expected string
	}{
		{name: "zero", price: 0, currency: "EUR", expected: "0.00 EUR"},
		{name: "half rounds up", price: 19.995, currency: "EUR", expected: "20.00 EUR"},
		{name: "binary edge 1.005", price: 1.005, currency: "EUR", expected: "1.01 EUR"},
		{name: "binary edge 2.675", price: 2.675, currency: "USD", expected: "2.68 USD"},
		{name: "rounds down", price: 10.994, currency: "EUR", expected: "10.99 EUR"},
		{name: "integer", price: 1500, currency: "EUR", expected: "1500.00 EUR"},
		{name: "negative half away from zero", price: -1.005, currency: "EUR", expected: "-1.01 EUR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pricing.FormatPrice(tc.price, tc.currency))
		})
	}

	t.Run("非有限値はpanicしない", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Equal(t, "NaN EUR", pricing.FormatPrice(math.NaN(), "EUR"))
			assert.Equal(t, "+Inf EUR", pricing.FormatPrice(math.Inf(1), "EUR"))
		})
	})

	t.Run("計算結果をそのまま整形", func(t *testing.T) {
		calc := pricing.CalculateRoomPricing(100, pricing.SiteSettings{ProfitMargin: 10, DefaultVatRate: 21, ExtraFee: 5})
		assert.Equal(t, "138.10 EUR", pricing.FormatPrice(calc.Subtotal(), "EUR"))
	})
}
