package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing_mock.go -package=queriesmock

import (
	"context"

	"hotel-storefront/internal/domain/pricing"
	"hotel-storefront/internal/pkg/errs"
)

var (
	ErrSettingsUnavailable = errs.New("site settings unavailable")
	ErrInvalidCouponType   = errs.New("invalid coupon type")
)

type PricingQueries interface {
	CouponPrices(ctx context.Context) (*CouponPricesView, error)
	Quote(ctx context.Context, in QuoteInput) (*QuoteView, error)
}

type SettingsReadStore interface {
	Get(ctx context.Context) (pricing.SiteSettings, error)
}

type pricingQueriesImpl struct {
	settings SettingsReadStore
}

func NewPricingQueries(settings SettingsReadStore) PricingQueries {
	return &pricingQueriesImpl{settings: settings}
}

func (q *pricingQueriesImpl) CouponPrices(ctx context.Context) (*CouponPricesView, error) {
	s, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	currency := s.CurrencyOrDefault()
	return &CouponPricesView{
		OneTimeCouponPrice:          s.OneTimeCouponPrice,
		AnnualCouponPrice:           s.AnnualCouponPrice,
		Currency:                    currency,
		OneTimeCouponPriceFormatted: pricing.FormatPrice(s.OneTimeCouponPrice, currency),
		AnnualCouponPriceFormatted:  pricing.FormatPrice(s.AnnualCouponPrice, currency),
	}, nil
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	coupon, err := pricing.ParseCouponSelection(in.CouponType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCouponType)
	}

	s, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	calc := pricing.ApplyCoupon(pricing.CalculateRoomPricing(in.RoomPrice, s), coupon)
	return toQuoteView(calc, coupon, s.CurrencyOrDefault()), nil
}

func (q *pricingQueriesImpl) load(ctx context.Context) (pricing.SiteSettings, error) {
	s, err := q.settings.Get(ctx)
	if err != nil {
		return pricing.SiteSettings{}, errs.Mark(err, ErrSettingsUnavailable)
	}
	return s, nil
}

func toQuoteView(calc pricing.Calculation, coupon *pricing.CouponType, currency string) *QuoteView {
	v := &QuoteView{
		RoomPrice:         calc.RoomPrice,
		ProfitMargin:      calc.ProfitMargin,
		Profit:            calc.Profit,
		VAT:               calc.VAT,
		ExtraFee:          calc.ExtraFee,
		Subtotal:          calc.Subtotal(),
		Currency:          currency,
		Total:             calc.Total(),
		SubtotalFormatted: pricing.FormatPrice(calc.Subtotal(), currency),
		TotalFormatted:    pricing.FormatPrice(calc.Total(), currency),
	}

	if coupon == nil || calc.Discount == nil {
		return v
	}

	couponType := coupon.String()
	v.CouponType = &couponType
	v.CouponDiscount = &calc.Discount.CouponDiscount
	v.DiscountedProfit = &calc.Discount.DiscountedProfit
	v.TotalWithCoupon = &calc.Discount.TotalWithCoupon

	// savings are undefined for a zero subtotal
	if subtotal := calc.Subtotal(); subtotal != 0 {
		savings := pricing.CalculateSavings(subtotal, calc.Discount.TotalWithCoupon)
		v.SavingsAmount = &savings.Amount
		v.SavingsPercent = &savings.Percent
	}
	return v
}
