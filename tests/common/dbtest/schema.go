//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-storefront/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// storefrontTables lists every table written by the API. site_settings is
// truncated too and reseeded so pricing tests can change it freely.
var storefrontTables = []string{
	"notification_jobs",
	"contact_messages",
	"users",
	"site_settings",
}

// SeedReferenceData writes the default settings row used by the pricing tests.
func SeedReferenceData(pool *pgxpool.Pool) error {
	s := builder.NewSettingsBuilder().Build()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO site_settings (id, profit_margin, default_vat_rate, extra_fee, one_time_coupon_price, annual_coupon_price, currency)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		s.ProfitMargin, s.DefaultVatRate, s.ExtraFee, s.OneTimeCouponPrice, s.AnnualCouponPrice, s.Currency,
	)
	return err
}

// ResetDB empties the storefront tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(storefrontTables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}

// UpdateSettings overwrites the pricing columns of the settings row.
func UpdateSettings(t *testing.T, db DBLike, profitMargin, vatRate, extraFee float64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE site_settings SET profit_margin = $1, default_vat_rate = $2, extra_fee = $3, updated_at = NOW() WHERE id = 1",
		profitMargin, vatRate, extraFee)
	require.NoError(t, err)
}
