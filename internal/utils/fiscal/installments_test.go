package fiscal_test

import (
	"testing"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEqualSplit_ThirtyDayOffsets(t *testing.T) {
	got, err := fiscal.EqualSplit(dec("300.00"), day("2024-01-01"), 3, 7)
	require.NoError(t, err)
	require.Len(t, got, 3)

	wantDue := []time.Time{day("2024-01-31"), day("2024-03-01"), day("2024-03-31")}
	sum := decimal.Zero
	for i, inst := range got {
		require.Equal(t, i+1, inst.Number)
		require.True(t, inst.Amount.Equal(dec("100.00")))
		require.True(t, inst.DueDate.Equal(wantDue[i]), "installment %d due %s", i+1, inst.DueDate)
		require.EqualValues(t, 7, inst.PaymentMethodCode)
		sum = sum.Add(inst.Amount)
	}
	require.True(t, sum.Equal(dec("300.00")))
}

// The equal split rounds each installment independently, so totals that do
// not divide evenly lose up to count-1 cents. 100.00 over three installments
// yields 3 × 33.33 = 99.99. This mirrors the issuing behavior in production;
// the one-cent drift is visible in the generated receivables.
func TestEqualSplit_RoundingDriftIsPreserved(t *testing.T) {
	got, err := fiscal.EqualSplit(dec("100.00"), day("2024-01-01"), 3, 1)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, inst := range got {
		require.True(t, inst.Amount.Equal(dec("33.33")))
		sum = sum.Add(inst.Amount)
	}
	require.True(t, sum.Equal(dec("99.99")))
	require.True(t, dec("100.00").Sub(sum).Equal(dec("0.01")))
}

func TestPercentageSplit(t *testing.T) {
	defs := []domain.ConditionInstallment{
		{Number: 1, Days: 0, Percentage: dec("50"), PaymentMethodCode: 2},
		{Number: 2, Days: 30, Percentage: dec("50")},
	}
	emission := day("2024-06-10")

	got, err := fiscal.PercentageSplit(dec("1000.00"), emission, defs, 9)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.True(t, got[0].Amount.Equal(dec("500.00")))
	require.True(t, got[0].DueDate.Equal(emission))
	require.EqualValues(t, 2, got[0].PaymentMethodCode)

	require.True(t, got[1].Amount.Equal(dec("500.00")))
	require.True(t, got[1].DueDate.Equal(emission.AddDate(0, 0, 30)))
	// Definition without a method falls back to the document's method.
	require.EqualValues(t, 9, got[1].PaymentMethodCode)
}

func TestPercentageSplit_PercentagesNotSummingTo100Accepted(t *testing.T) {
	defs := []domain.ConditionInstallment{
		{Number: 1, Days: 0, Percentage: dec("40")},
		{Number: 2, Days: 30, Percentage: dec("40")},
	}
	got, err := fiscal.PercentageSplit(dec("100.00"), day("2024-01-01"), defs, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Amount.Equal(dec("40.00")))
	require.True(t, got[1].Amount.Equal(dec("40.00")))
}

func TestGenerate_EmptyDefinitionsGeneratesNothing(t *testing.T) {
	got, err := fiscal.Generate(dec("500.00"), day("2024-01-01"), nil, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGenerate_PicksStrategyFromDefinitions(t *testing.T) {
	emission := day("2024-01-01")

	withPct := []domain.ConditionInstallment{
		{Number: 1, Days: 10, Percentage: dec("100"), PaymentMethodCode: 3},
	}
	got, err := fiscal.Generate(dec("250.00"), emission, withPct, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Amount.Equal(dec("250.00")))
	require.True(t, got[0].DueDate.Equal(day("2024-01-11")))

	// No percentages on the definitions: equal split over the count.
	noPct := []domain.ConditionInstallment{
		{Number: 1, Days: 0}, {Number: 2, Days: 0},
	}
	got, err = fiscal.Generate(dec("250.00"), emission, noPct, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Amount.Equal(dec("125.00")))
	require.True(t, got[0].DueDate.Equal(day("2024-01-31")))
	require.True(t, got[1].DueDate.Equal(day("2024-03-01")))
}

func TestGenerate_InvalidDate(t *testing.T) {
	_, err := fiscal.ParseEmissionDate("not-a-date")
	require.ErrorIs(t, err, fiscal.ErrInvalidDate)

	defs := []domain.ConditionInstallment{{Number: 1, Days: 0, Percentage: dec("100")}}
	got, err := fiscal.Generate(dec("100.00"), time.Time{}, defs, 1)
	require.ErrorIs(t, err, fiscal.ErrInvalidDate)
	require.Empty(t, got)
}
