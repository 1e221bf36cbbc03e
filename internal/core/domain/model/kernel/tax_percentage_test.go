package kernel_test

import (
	"fmt"
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxPercentage(t *testing.T) {
	t.Run("should accept values within [0,100]", func(t *testing.T) {
		for _, value := range []string{"0", "10", "22.5", "100"} {
			t.Run(fmt.Sprintf("should accept %s", value), func(t *testing.T) {
				p, err := kernel.NewTaxPercentage(decimal.RequireFromString(value))

				require.NoError(t, err)
				require.NoError(t, p.Validate())
				assert.Equal(t, value, p.String())
			})
		}
	})

	t.Run("should reject values outside [0,100]", func(t *testing.T) {
		for _, value := range []string{"-0.01", "100.01", "150"} {
			t.Run(fmt.Sprintf("should reject %s", value), func(t *testing.T) {
				_, err := kernel.NewTaxPercentage(decimal.RequireFromString(value))

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestTaxPercentageFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		p, err := kernel.TaxPercentageFromString("10")

		require.NoError(t, err)
		assert.Equal(t, "10", p.String())
	})

	t.Run("should fail on non-decimal input", func(t *testing.T) {
		_, err := kernel.TaxPercentageFromString("ten percent")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTaxPercentage_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var p kernel.TaxPercentage

		err := p.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tax percentage must be created")
	})
}

func TestTaxPercentage_TaxOn(t *testing.T) {
	t.Run("should round half-up at the unit level", func(t *testing.T) {
		testCases := []struct {
			amount     string
			percentage string
			expected   string
		}{
			{"3.56", "10", "0.36"},  // 0.356 rounds up
			{"4.65", "10", "0.47"},  // 0.465 half-way rounds away from zero
			{"10.00", "22", "2.20"}, // exact
			{"1.00", "0", "0.00"},   // zero rate
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s%% of %s is %s", tc.percentage, tc.amount, tc.expected), func(t *testing.T) {
				amount, err := kernel.MoneyFromString(tc.amount)
				require.NoError(t, err)
				rate, err := kernel.TaxPercentageFromString(tc.percentage)
				require.NoError(t, err)

				assert.Equal(t, tc.expected, rate.TaxOn(amount).String())
			})
		}
	})
}
