package response

import (
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CouponPricesResponse struct {
	OneTimeCouponPrice          float64 `json:"one_time_coupon_price"`
	AnnualCouponPrice           float64 `json:"annual_coupon_price"`
	Currency                    string  `json:"currency"`
	OneTimeCouponPriceFormatted string  `json:"one_time_coupon_price_formatted"`
	AnnualCouponPriceFormatted  string  `json:"annual_coupon_price_formatted"`
}

type QuoteResponse struct {
	RoomPrice    float64 `json:"room_price"`
	ProfitMargin float64 `json:"profit_margin"`
	Profit       float64 `json:"profit"`
	VAT          float64 `json:"vat"`
	ExtraFee     float64 `json:"extra_fee"`
	Subtotal     float64 `json:"subtotal"`
	Currency     string  `json:"currency"`

	CouponType       *string  `json:"coupon_type,omitempty"`
	CouponDiscount   *float64 `json:"coupon_discount,omitempty"`
	DiscountedProfit *float64 `json:"discounted_profit,omitempty"`
	TotalWithCoupon  *float64 `json:"total_with_coupon,omitempty"`
	SavingsAmount    *float64 `json:"savings_amount,omitempty"`
	SavingsPercent   *float64 `json:"savings_percent,omitempty"`

	Total             float64 `json:"total"`
	SubtotalFormatted string  `json:"subtotal_formatted"`
	TotalFormatted    string  `json:"total_formatted"`
}

func FromCouponPricesView(v *queries.CouponPricesView) (CouponPricesResponse, error) {
	var out CouponPricesResponse
	if err := copier.Copy(&out, v); err != nil {
		return CouponPricesResponse{}, errs.Wrap(err, "failed to map coupon prices")
	}
	return out, nil
}

func FromQuoteView(v *queries.QuoteView) (QuoteResponse, error) {
	var out QuoteResponse
	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return QuoteResponse{}, errs.Wrap(err, "failed to map quote")
	}
	return out, nil
}
