package pricing

// CouponDiscountRate is the share of the profit component a coupon removes.
const CouponDiscountRate = 0.15

// Calculation is the breakdown of a customer-facing room price. It is a value
// type: every operation returns a new Calculation.
type Calculation struct {
	RoomPrice    float64
	ProfitMargin float64
	Profit       float64
	VAT          float64
	ExtraFee     float64
	Discount     *Discount
}

// Discount holds the fields added by ApplyCouponDiscount.
type Discount struct {
	CouponDiscount   float64
	DiscountedProfit float64
	TotalWithCoupon  float64
}

// Subtotal is always derived from the four additive components.
func (c Calculation) Subtotal() float64 {
	return c.RoomPrice + c.Profit + c.VAT + c.ExtraFee
}

func (c Calculation) HasCoupon() bool {
	return c.Discount != nil
}

// Total is the amount the customer pays: the coupon total when a discount was
// applied, the subtotal otherwise.
func (c Calculation) Total() float64 {
	if c.Discount != nil {
		return c.Discount.TotalWithCoupon
	}
	return c.Subtotal()
}

// CalculateRoomPricing applies margin, then VAT on the marked-up price, then
// the fixed platform fee (not subject to VAT). Negative inputs are not
// rejected here; they propagate as negative results.
func CalculateRoomPricing(roomPrice float64, settings SiteSettings) Calculation {
	profit := roomPrice * settings.ProfitMargin / 100
	vat := (roomPrice + profit) * settings.DefaultVatRate / 100

	return Calculation{
		RoomPrice:    roomPrice,
		ProfitMargin: settings.ProfitMargin,
		Profit:       profit,
		VAT:          vat,
		ExtraFee:     settings.ExtraFee,
	}
}

// ApplyCouponDiscount removes 15% of the profit component. VAT is carried over
// from the original calculation unchanged even though the taxable base shrank.
func ApplyCouponDiscount(c Calculation) Calculation {
	couponDiscount := c.Profit * CouponDiscountRate
	discountedProfit := c.Profit - couponDiscount

	out := c
	out.Discount = &Discount{
		CouponDiscount:   couponDiscount,
		DiscountedProfit: discountedProfit,
		TotalWithCoupon:  c.RoomPrice + discountedProfit + c.VAT + c.ExtraFee,
	}
	return out
}

// ApplyCoupon is the selector-facing variant: no selection leaves the
// calculation untouched, any coupon type yields the same 15% profit discount.
func ApplyCoupon(c Calculation, selected *CouponType) Calculation {
	if selected == nil {
		return c
	}
	return ApplyCouponDiscount(c)
}

type Savings struct {
	Amount  float64
	Percent float64
}

// CalculateSavings does not guard originalPrice == 0; the caller must, or the
// percentage comes back as NaN or ±Inf.
func CalculateSavings(originalPrice, couponPrice float64) Savings {
	amount := originalPrice - couponPrice
	return Savings{
		Amount:  amount,
		Percent: amount / originalPrice * 100,
	}
}
