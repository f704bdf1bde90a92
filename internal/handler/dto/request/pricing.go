package request

type QuoteRequest struct {
	RoomPrice  *float64 `json:"room_price" binding:"required,gte=0,lte=1000000000"`
	CouponType *string  `json:"coupon_type" binding:"omitempty,max=20"`
}
