package readstore

import (
	"context"

	"hotel-storefront/internal/domain/pricing"
	"hotel-storefront/internal/infra"
	"hotel-storefront/internal/infra/query"
	"hotel-storefront/internal/pkg/pgconv"
)

type SettingsReadQueries interface {
	GetSiteSettings(ctx context.Context, db query.DBTX) (query.SiteSettings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      query.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db query.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

// Get loads the single settings row. Rows that violate the settings
// invariants are refused rather than priced with.
func (r *SettingsReadStore) Get(ctx context.Context) (pricing.SiteSettings, error) {
	row, err := r.queries.GetSiteSettings(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pricing.SiteSettings{}, infra.WrapRepoErr("site settings not configured", err, infra.KindNotFound)
		}
		return pricing.SiteSettings{}, infra.WrapRepoErr("failed to load site settings", err)
	}

	settings := pricing.SiteSettings{
		ProfitMargin:       row.ProfitMargin,
		DefaultVatRate:     row.DefaultVatRate,
		ExtraFee:           row.ExtraFee,
		OneTimeCouponPrice: row.OneTimeCouponPrice,
		AnnualCouponPrice:  row.AnnualCouponPrice,
		Currency:           row.Currency,
	}
	if err := settings.Validate(); err != nil {
		return pricing.SiteSettings{}, infra.WrapRepoErr("stored site settings are invalid", err, infra.KindDBFailure)
	}
	return settings, nil
}
