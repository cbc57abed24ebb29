package amortization

import (
	"math"
	"testing"

	"payplan/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestTracker_RecomputesOnEveryChange(t *testing.T) {
	tr := NewTracker(entities.LoanTerms{})
	require.Equal(t, "", tr.Display())

	_, ok := tr.SetPrincipal(1_000_000)
	require.False(t, ok)
	_, ok = tr.SetAnnualRate(12)
	require.False(t, ok)

	payment, ok := tr.SetTermYears(1)
	require.True(t, ok)
	require.Equal(t, 88_848.79, Round2(payment))
	require.Equal(t, "88848.79", tr.Display())

	payment, ok = tr.SetAnnualRate(0)
	require.True(t, ok)
	require.Equal(t, 1_000_000.0/12, payment)
}

func TestTracker_InvalidInputKeepsLastPayment(t *testing.T) {
	tr := NewTracker(entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 12, TermYears: 1})
	before, ok := tr.MonthlyPayment()
	require.True(t, ok)

	t.Run("zero term", func(t *testing.T) {
		got, ok := tr.SetTermYears(0)
		require.True(t, ok)
		require.Equal(t, before, got)
		require.Equal(t, "88848.79", tr.Display())
	})

	t.Run("nan principal", func(t *testing.T) {
		tr.SetTermYears(1)
		got, ok := tr.SetPrincipal(math.NaN())
		require.True(t, ok)
		require.Equal(t, before, got)
	})

	t.Run("terms still reflect input", func(t *testing.T) {
		require.True(t, math.IsNaN(tr.Terms().Principal))
	})

	t.Run("recovers on next valid input", func(t *testing.T) {
		got, ok := tr.SetPrincipal(1_200_000)
		require.True(t, ok)
		require.NotEqual(t, before, got)
	})
}
