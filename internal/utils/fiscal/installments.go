package fiscal

import (
	"errors"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidDate is returned when installment generation is asked to run
// against an unparseable or zero emission date. No installments are generated.
var ErrInvalidDate = errors.New("invalid emission date")

// EmissionDateLayout is the wire format for document dates.
const EmissionDateLayout = "2006-01-02"

var oneHundred = decimal.NewFromInt(100)

// GeneratedInstallment is one scheduled payment produced by the generator,
// before it is attached to a document and persisted as a receivable/payable.
type GeneratedInstallment struct {
	Number            int
	DueDate           time.Time
	Amount            decimal.Decimal
	PaymentMethodCode int64
}

// ParseEmissionDate parses a document date, mapping failures to ErrInvalidDate.
func ParseEmissionDate(s string) (time.Time, error) {
	t, err := time.Parse(EmissionDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// EqualSplit divides the document total into count equal installments of
// round(total/count, 2), due every 30 days after emission. The per-installment
// rounding is deliberate: 100.00 split three ways yields 3 × 33.33 = 99.99,
// one cent short of the original total.
func EqualSplit(total decimal.Decimal, emission time.Time, count int, fallbackMethod int64) ([]GeneratedInstallment, error) {
	if emission.IsZero() {
		return nil, ErrInvalidDate
	}
	if count <= 0 {
		return nil, nil
	}
	amount := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	out := make([]GeneratedInstallment, count)
	for i := 0; i < count; i++ {
		out[i] = GeneratedInstallment{
			Number:            i + 1,
			DueDate:           emission.AddDate(0, 0, (i+1)*30),
			Amount:            amount,
			PaymentMethodCode: fallbackMethod,
		}
	}
	return out, nil
}

// PercentageSplit applies each installment definition's percentage to the
// total (total × pct / 100, rounded to cents) with the definition's explicit
// day offset. Percentages are taken as-is: the sum-to-100 invariant is
// enforced when the payment condition is authored, not re-verified here.
// A definition without a payment method falls back to the document's method.
func PercentageSplit(total decimal.Decimal, emission time.Time, defs []domain.ConditionInstallment, fallbackMethod int64) ([]GeneratedInstallment, error) {
	if emission.IsZero() {
		return nil, ErrInvalidDate
	}
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]GeneratedInstallment, len(defs))
	for i, def := range defs {
		method := def.PaymentMethodCode
		if method == 0 {
			method = fallbackMethod
		}
		out[i] = GeneratedInstallment{
			Number:            def.Number,
			DueDate:           emission.AddDate(0, 0, def.Days),
			Amount:            total.Mul(def.Percentage).Div(oneHundred).Round(2),
			PaymentMethodCode: method,
		}
	}
	return out, nil
}

// Generate produces the installments for a document issued against a payment
// condition. Definitions that carry percentages use the percentage split;
// definitions without percentages fall back to an equal split over the
// definition count. An empty definition list generates nothing; conditions
// without installments are valid.
func Generate(total decimal.Decimal, emission time.Time, defs []domain.ConditionInstallment, fallbackMethod int64) ([]GeneratedInstallment, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	for _, def := range defs {
		if def.Percentage.IsPositive() {
			return PercentageSplit(total, emission, defs, fallbackMethod)
		}
	}
	return EqualSplit(total, emission, len(defs), fallbackMethod)
}
