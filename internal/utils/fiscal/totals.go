package fiscal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation failures for document line checks. All checks run before any
// mutation; a failing document is never partially persisted.
var (
	ErrTotalMismatch       = errors.New("declared total does not match sum of line items")
	ErrUnknownProduct      = errors.New("line references unknown product")
	ErrMissingRequiredField = errors.New("line is missing a required field")
)

// totalTolerance is the accepted absolute difference between the declared
// document total and the computed sum of its lines, in currency units.
var totalTolerance = decimal.NewFromFloat(0.01)

// LineInput is the minimal view of a document line the totals validator needs.
type LineInput struct {
	ProductCode int64
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// ValidateLines checks that every line is complete, references a known
// product, and that the lines sum to the declared total within a cent.
// productExists is a read-only probe against the product master.
func ValidateLines(lines []LineInput, declaredTotal decimal.Decimal, productExists func(code int64) bool) error {
	sum := decimal.Zero
	for i, line := range lines {
		if line.ProductCode == 0 || line.Quantity.IsZero() || line.UnitPrice.IsZero() {
			return fmt.Errorf("%w: line %d needs product, quantity and unit price", ErrMissingRequiredField, i+1)
		}
		if !productExists(line.ProductCode) {
			return fmt.Errorf("%w: product %d on line %d", ErrUnknownProduct, line.ProductCode, i+1)
		}
		sum = sum.Add(line.Quantity.Mul(line.UnitPrice))
	}
	if sum.Sub(declaredTotal).Abs().GreaterThan(totalTolerance) {
		return fmt.Errorf("%w: lines sum to %s, declared %s", ErrTotalMismatch, sum.String(), declaredTotal.String())
	}
	return nil
}

// TaxAmount computes base × rate / 100 rounded to cents, the formula shared
// by the ICMS, IPI, PIS and COFINS line fields.
func TaxAmount(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}
