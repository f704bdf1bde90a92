package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// CouponPricesView is the public part of the site settings.
type CouponPricesView struct {
	OneTimeCouponPrice          float64
	AnnualCouponPrice           float64
	Currency                    string
	OneTimeCouponPriceFormatted string
	AnnualCouponPriceFormatted  string
}

type QuoteInput struct {
	RoomPrice  float64
	CouponType *string
}

// QuoteView is a priced room, optionally with the coupon discount applied.
type QuoteView struct {
	RoomPrice    float64
	ProfitMargin float64
	Profit       float64
	VAT          float64
	ExtraFee     float64
	Subtotal     float64
	Currency     string

	CouponType       *string
	CouponDiscount   *float64
	DiscountedProfit *float64
	TotalWithCoupon  *float64
	SavingsAmount    *float64
	SavingsPercent   *float64

	Total             float64
	SubtotalFormatted string
	TotalFormatted    string
}
