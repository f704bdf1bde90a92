//go:build unit || e2e

package builder

import (
	"hotel-storefront/internal/domain/pricing"
)

type SettingsBuilder struct {
	ProfitMargin       float64
	DefaultVatRate     float64
	ExtraFee           float64
	OneTimeCouponPrice float64
	AnnualCouponPrice  float64
	Currency           string
}

func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		ProfitMargin:       10,
		DefaultVatRate:     21,
		ExtraFee:           5,
		OneTimeCouponPrice: 9.99,
		AnnualCouponPrice:  49.99,
		Currency:           "EUR",
	}
}

func (b *SettingsBuilder) With(mutate func(*SettingsBuilder)) *SettingsBuilder {
	mutate(b)
	return b
}

func (b *SettingsBuilder) WithProfitMargin(v float64) *SettingsBuilder {
	b.ProfitMargin = v
	return b
}

func (b *SettingsBuilder) WithVatRate(v float64) *SettingsBuilder {
	b.DefaultVatRate = v
	return b
}

func (b *SettingsBuilder) WithExtraFee(v float64) *SettingsBuilder {
	b.ExtraFee = v
	return b
}

func (b *SettingsBuilder) WithCurrency(c string) *SettingsBuilder {
	b.Currency = c
	return b
}

func (b *SettingsBuilder) Build() pricing.SiteSettings {
	return pricing.SiteSettings{
		ProfitMargin:       b.ProfitMargin,
		DefaultVatRate:     b.DefaultVatRate,
		ExtraFee:           b.ExtraFee,
		OneTimeCouponPrice: b.OneTimeCouponPrice,
		AnnualCouponPrice:  b.AnnualCouponPrice,
		Currency:           b.Currency,
	}
}
