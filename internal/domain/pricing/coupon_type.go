package pricing

import (
	"errors"
	"strings"
)

var ErrInvalidCouponType = errors.New("invalid coupon type")

type CouponType string

const (
	CouponOneTime CouponType = "one-time"
	CouponAnnual  CouponType = "annual"
)

func (t CouponType) String() string {
	return string(t)
}

func (t CouponType) IsValid() bool {
	switch t {
	case CouponOneTime, CouponAnnual:
		return true
	default:
		return false
	}
}

func NewCouponType(s string) (CouponType, error) {
	t := CouponType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidCouponType
	}
	return t, nil
}

// ParseCouponSelection maps an optional selector value to a coupon type.
// nil or blank means "no coupon selected".
func ParseCouponSelection(s *string) (*CouponType, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := NewCouponType(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
