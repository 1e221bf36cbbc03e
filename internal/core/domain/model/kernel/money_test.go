package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("3.56"))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "3.56", m.String())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("4.65")

		require.NoError(t, err)
		assert.Equal(t, "4.65", m.String())
	})

	t.Run("should fail on non-decimal input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("four euros")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on negative input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-1.00")

		require.Error(t, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("constructed value should pass validation", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum exactly without drift", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("7.84")
		b, _ := kernel.MoneyFromString("15.36")

		sum := a.Add(b)

		assert.Equal(t, "23.20", sum.String())
	})

	t.Run("adding zero should be identity", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("0.36")

		assert.True(t, a.Add(kernel.ZeroMoney()).IsEqual(a))
	})
}

func TestMoney_MultiplyBy(t *testing.T) {
	t.Run("should round half-up to two digits", func(t *testing.T) {
		// 3.92 x 2 = 7.84, already at scale 2
		unit, _ := kernel.MoneyFromString("3.92")
		assert.Equal(t, "7.84", unit.MultiplyBy(2).String())

		// half-way case rounds away from zero: 0.125 x 1 -> 0.13
		half, err := kernel.NewMoney(decimal.RequireFromString("0.125"))
		require.NoError(t, err)
		assert.Equal(t, "0.13", half.MultiplyBy(1).String())
	})

	t.Run("multiplying by zero quantity yields zero", func(t *testing.T) {
		unit, _ := kernel.MoneyFromString("5.12")

		assert.True(t, unit.MultiplyBy(0).IsEqual(kernel.ZeroMoney()))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare by numeric value regardless of scale", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("7.8")
		b, _ := kernel.MoneyFromString("7.80")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should report different values as unequal", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("7.84")
		b, _ := kernel.MoneyFromString("7.85")

		assert.False(t, a.IsEqual(b))
	})
}
