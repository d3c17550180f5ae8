package fiscal_test

import (
	"testing"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func allProductsExist(int64) bool { return true }

func TestValidateLines_Success(t *testing.T) {
	lines := []fiscal.LineInput{
		{ProductCode: 1, Quantity: dec("2"), UnitPrice: dec("10.50")},
		{ProductCode: 2, Quantity: dec("1"), UnitPrice: dec("4.00")},
	}
	require.NoError(t, fiscal.ValidateLines(lines, dec("25.00"), allProductsExist))
}

func TestValidateLines_ToleranceBoundary(t *testing.T) {
	lines := []fiscal.LineInput{
		{ProductCode: 1, Quantity: dec("1"), UnitPrice: dec("100.00")},
	}

	// Exactly one cent off is accepted in either direction.
	require.NoError(t, fiscal.ValidateLines(lines, dec("100.01"), allProductsExist))
	require.NoError(t, fiscal.ValidateLines(lines, dec("99.99"), allProductsExist))

	// Beyond a cent is a mismatch.
	err := fiscal.ValidateLines(lines, dec("100.02"), allProductsExist)
	require.ErrorIs(t, err, fiscal.ErrTotalMismatch)
	err = fiscal.ValidateLines(lines, dec("99.98"), allProductsExist)
	require.ErrorIs(t, err, fiscal.ErrTotalMismatch)
}

func TestValidateLines_UnknownProduct(t *testing.T) {
	lines := []fiscal.LineInput{
		{ProductCode: 42, Quantity: dec("1"), UnitPrice: dec("5.00")},
	}
	err := fiscal.ValidateLines(lines, dec("5.00"), func(code int64) bool { return code != 42 })
	require.ErrorIs(t, err, fiscal.ErrUnknownProduct)
}

func TestValidateLines_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		line fiscal.LineInput
	}{
		{"no product", fiscal.LineInput{Quantity: dec("1"), UnitPrice: dec("5.00")}},
		{"no quantity", fiscal.LineInput{ProductCode: 1, UnitPrice: dec("5.00")}},
		{"no unit price", fiscal.LineInput{ProductCode: 1, Quantity: dec("1")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fiscal.ValidateLines([]fiscal.LineInput{tt.line}, decimal.Zero, allProductsExist)
			require.ErrorIs(t, err, fiscal.ErrMissingRequiredField)
		})
	}
}

func TestValidateLines_EmptyLinesMatchZeroTotal(t *testing.T) {
	require.NoError(t, fiscal.ValidateLines(nil, decimal.Zero, allProductsExist))
	require.ErrorIs(t, fiscal.ValidateLines(nil, dec("10.00"), allProductsExist), fiscal.ErrTotalMismatch)
}

func TestTaxAmount(t *testing.T) {
	require.True(t, fiscal.TaxAmount(dec("1000.00"), dec("18")).Equal(dec("180.00")))
	require.True(t, fiscal.TaxAmount(dec("99.99"), dec("1.65")).Equal(dec("1.65")))
	require.True(t, fiscal.TaxAmount(dec("100.00"), decimal.Zero).IsZero())
}
