package pricing

import (
	"errors"
	"strings"
)

var (
	ErrNegativeSetting = errors.New("site settings must not contain negative values")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

const DefaultCurrency = "EUR"

// SiteSettings is the site-wide pricing configuration maintained by the admin
// backend. Percentages are stored as whole numbers (21 means 21%).
type SiteSettings struct {
	ProfitMargin       float64
	DefaultVatRate     float64
	ExtraFee           float64
	OneTimeCouponPrice float64
	AnnualCouponPrice  float64
	Currency           string
}

func (s SiteSettings) Validate() error {
	for _, v := range []float64{
		s.ProfitMargin,
		s.DefaultVatRate,
		s.ExtraFee,
		s.OneTimeCouponPrice,
		s.AnnualCouponPrice,
	} {
		if v < 0 {
			return ErrNegativeSetting
		}
	}
	if s.Currency != "" && len(strings.TrimSpace(s.Currency)) != 3 {
		return ErrInvalidCurrency
	}
	return nil
}

func (s SiteSettings) CurrencyOrDefault() string {
	if c := strings.TrimSpace(s.Currency); c != "" {
		return strings.ToUpper(c)
	}
	return DefaultCurrency
}

// CouponPrice returns the purchase price of a coupon of the given type.
func (s SiteSettings) CouponPrice(t CouponType) (float64, error) {
	switch t {
	case CouponOneTime:
		return s.OneTimeCouponPrice, nil
	case CouponAnnual:
		return s.AnnualCouponPrice, nil
	default:
		return 0, ErrInvalidCouponType
	}
}
