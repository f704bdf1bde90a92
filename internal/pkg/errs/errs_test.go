//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("sentinel")
	cause := errors.New("driver: bad connection")

	t.Run("Markしたエラーを識別", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("Wrapを透過", func(t *testing.T) {
		wrapped := errs.Wrap(errs.Mark(cause, sentinel), "submit failed")

		assert.True(t, errs.Is(wrapped, sentinel))
		assert.Contains(t, wrapped.Error(), "submit failed")
	})

	t.Run("nilのMarkはマーカー自身", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
		assert.Nil(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("無関係なエラー", func(t *testing.T) {
		assert.False(t, errs.Is(cause, sentinel))
	})

	t.Run("スタックの行数制限", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.Wrap(cause, "outer"), 2)
		assert.Len(t, lines, 2)
		assert.Nil(t, errs.ExtractStackLines(nil, 2))
	})
}
