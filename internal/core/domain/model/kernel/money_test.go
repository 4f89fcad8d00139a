package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with positive amount", func(t *testing.T) {
		m, err := kernel.NewMoney(10000)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), m.Amount())
	})

	t.Run("should create money with zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestMoneyFromInt64(t *testing.T) {
	t.Run("should accept negative amounts for derived values", func(t *testing.T) {
		m := kernel.MoneyFromInt64(-500)

		assert.Equal(t, int64(-500), m.Amount())
		assert.True(t, m.IsNegative())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(4000)
		b, _ := kernel.NewMoney(500)

		assert.Equal(t, int64(4500), a.Add(b).Amount())
	})

	t.Run("Sub may produce a negative result", func(t *testing.T) {
		a, _ := kernel.NewMoney(300)
		b, _ := kernel.NewMoney(1000)

		diff := a.Sub(b)
		assert.Equal(t, int64(-700), diff.Amount())
		assert.True(t, diff.IsNegative())
	})

	t.Run("IsEqual compares amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(42)
		b, _ := kernel.NewMoney(42)
		c, _ := kernel.NewMoney(43)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("String renders minor units", func(t *testing.T) {
		a, _ := kernel.NewMoney(5200)

		assert.Equal(t, "5200", a.String())
	})
}
