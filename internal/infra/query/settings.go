package query

import "context"

const getSiteSettings = `
SELECT profit_margin, default_vat_rate, extra_fee, one_time_coupon_price, annual_coupon_price, currency, updated_at
FROM site_settings
WHERE id = 1`

func (q *Queries) GetSiteSettings(ctx context.Context, db DBTX) (SiteSettings, error) {
	row := db.QueryRow(ctx, getSiteSettings)
	var s SiteSettings
	err := row.Scan(
		&s.ProfitMargin,
		&s.DefaultVatRate,
		&s.ExtraFee,
		&s.OneTimeCouponPrice,
		&s.AnnualCouponPrice,
		&s.Currency,
		&s.UpdatedAt,
	)
	return s, err
}
