//go:build unit

package password_test

import (
	"testing"

	"hotel-storefront/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(password.MinCost)

	t.Run("ハッシュと照合", func(t *testing.T) {
		hashed, err := h.Hash("correct-horse")
		require.NoError(t, err)
		assert.NotEqual(t, "correct-horse", hashed)

		require.NoError(t, h.Compare(hashed, "correct-horse"))
		require.ErrorIs(t, h.Compare(hashed, "wrong-horse"), password.ErrComparisonFailed)
	})

	t.Run("空入力", func(t *testing.T) {
		_, err := h.Hash("")
		require.ErrorIs(t, err, password.ErrInvalidPassword)
		require.ErrorIs(t, h.Compare("", "x"), password.ErrInvalidPassword)
	})

	t.Run("ダミー照合は常に失敗", func(t *testing.T) {
		require.ErrorIs(t, h.CompareDummy("anything"), password.ErrComparisonFailed)
	})

	t.Run("範囲外のコストはデフォルト", func(t *testing.T) {
		hashed, err := password.NewHasher(100).Hash("correct-horse")
		require.NoError(t, err)
		assert.Contains(t, hashed, "$10$")
	})
}
