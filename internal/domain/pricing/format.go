package pricing

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with two decimals (half away from zero) and the
// currency code, e.g. "20.00 EUR". The output never depends on locale so it
// is identical wherever it is rendered.
//
// The float is converted through its shortest decimal representation, so
// 19.995 rounds to 20.00 rather than to the 19.99 its binary approximation
// would give.
func FormatPrice(price float64, currency string) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		// decimal panics on non-finite input; keep the anomaly visible instead
		return strconv.FormatFloat(price, 'f', 2, 64) + " " + currency
	}
	return decimal.NewFromFloat(price).StringFixed(2) + " " + currency
}
