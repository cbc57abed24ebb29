package amortization

import (
	"math"
	"testing"

	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name  string
		terms entities.LoanTerms
		want  float64
	}{
		{
			name:  "one year at twelve percent",
			terms: entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 12, TermYears: 1},
			want:  88_848.79,
		},
		{
			name:  "zero rate is straight line",
			terms: entities.LoanTerms{Principal: 1_200_000, AnnualRatePercent: 0, TermYears: 1},
			want:  100_000.00,
		},
		{
			name:  "thirty year mortgage",
			terms: entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 2.5, TermYears: 30},
			want:  3951.21,
		},
		{
			name:  "five years at eight percent",
			terms: entities.LoanTerms{Principal: 2_000_000, AnnualRatePercent: 8, TermYears: 5},
			want:  40_552.79,
		},
		{
			name:  "factor rounds to one",
			terms: entities.LoanTerms{Principal: 1200, AnnualRatePercent: 1e-15, TermYears: 1},
			want:  100,
		},
		{
			name:  "negative rate falls back to straight line",
			terms: entities.LoanTerms{Principal: 2400, AnnualRatePercent: -3, TermYears: 2},
			want:  100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonthlyPayment(tt.terms)
			require.True(t, ok)
			require.Equal(t, tt.want, Round2(got))
		})
	}
}

func TestMonthlyPayment_ZeroRateIsExact(t *testing.T) {
	got, ok := MonthlyPayment(entities.LoanTerms{Principal: 1_200_000, TermYears: 1})
	require.True(t, ok)
	require.Equal(t, 100_000.0, got)
	require.Equal(t, "100000.00", FormatAmount(got))
}

func TestMonthlyPayment_NoResult(t *testing.T) {
	tests := []struct {
		name  string
		terms entities.LoanTerms
	}{
		{"zero term", entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: 0}},
		{"negative term", entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: -1}},
		{"zero principal", entities.LoanTerms{Principal: 0, AnnualRatePercent: 5, TermYears: 1}},
		{"negative principal", entities.LoanTerms{Principal: -10, AnnualRatePercent: 5, TermYears: 1}},
		{"nan principal", entities.LoanTerms{Principal: math.NaN(), AnnualRatePercent: 5, TermYears: 1}},
		{"nan rate", entities.LoanTerms{Principal: 1000, AnnualRatePercent: math.NaN(), TermYears: 1}},
		{"infinite term", entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: math.Inf(1)}},
		{"overflowing factor", entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 12, TermYears: 1e306}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := MonthlyPayment(tt.terms)
			require.False(t, ok)
		})
	}
}

func TestQuote(t *testing.T) {
	q, err := Quote(entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 12, TermYears: 1})
	require.NoError(t, err)
	require.Equal(t, 88_848.79, q.MonthlyPayment)
	require.Equal(t, 12.0, q.NumberOfPayments)
	require.InDelta(t, 1_066_185.46, q.TotalPayment, 0.01)
	require.InDelta(t, 66_185.46, q.TotalInterest, 0.01)

	_, err = Quote(entities.LoanTerms{Principal: 1000, TermYears: 0})
	require.ErrorIs(t, err, ErrInvalidTerms)
}

func TestSchedule(t *testing.T) {
	t.Run("balance ends at zero", func(t *testing.T) {
		rows, err := Schedule(entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 12, TermYears: 1})
		require.NoError(t, err)
		require.Len(t, rows, 12)

		first := rows[0]
		require.True(t, first.Interest.Equal(decimal.NewFromInt(10_000)), "interest %s", first.Interest)
		require.True(t, first.Principal.Equal(decimal.RequireFromString("78848.79")), "principal %s", first.Principal)

		paid := decimal.Zero
		for i, row := range rows {
			require.Equal(t, i+1, row.Period)
			require.True(t, row.Payment.Equal(row.Principal.Add(row.Interest)))
			paid = paid.Add(row.Principal)
		}
		require.True(t, paid.Equal(decimal.NewFromInt(1_000_000)), "paid %s", paid)
		require.True(t, rows[len(rows)-1].Balance.IsZero())
	})

	t.Run("zero rate splits evenly", func(t *testing.T) {
		rows, err := Schedule(entities.LoanTerms{Principal: 1200, TermYears: 1})
		require.NoError(t, err)
		for _, row := range rows {
			require.True(t, row.Interest.IsZero())
			require.True(t, row.Payment.Equal(decimal.NewFromInt(100)))
		}
	})

	t.Run("too long", func(t *testing.T) {
		_, err := Schedule(entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: 51})
		require.ErrorIs(t, err, ErrScheduleTooLong)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Schedule(entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5})
		require.ErrorIs(t, err, ErrInvalidTerms)
	})
}
