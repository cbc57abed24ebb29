package allocation

import (
	"testing"

	"payplan/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestSelection_Toggle(t *testing.T) {
	t.Run("fourth method is rejected", func(t *testing.T) {
		sel := mustSelection(t, entities.FundingCash, entities.FundingLoan, entities.FundingMortgage)

		next, err := sel.Toggle(entities.FundingCooperative, true)
		require.ErrorIs(t, err, ErrMethodLimitReached)
		require.Equal(t, 3, next.Len())
		require.Equal(t, sel.Methods(), next.Methods())
		require.False(t, next.Contains(entities.FundingCooperative))
	})

	t.Run("re-adding a selected method is a no-op", func(t *testing.T) {
		sel := mustSelection(t, entities.FundingCash, entities.FundingLoan, entities.FundingMortgage)
		next, err := sel.Toggle(entities.FundingLoan, true)
		require.NoError(t, err)
		require.Equal(t, sel.Methods(), next.Methods())
	})

	t.Run("removal always succeeds and keeps order", func(t *testing.T) {
		sel := mustSelection(t, entities.FundingMortgage, entities.FundingCash, entities.FundingLoan)
		next, err := sel.Toggle(entities.FundingCash, false)
		require.NoError(t, err)
		require.Equal(t, []entities.FundingMethod{entities.FundingMortgage, entities.FundingLoan}, next.Methods())

		again, err := next.Toggle(entities.FundingCash, false)
		require.NoError(t, err)
		require.Equal(t, next.Methods(), again.Methods())
	})

	t.Run("toggle does not mutate receiver", func(t *testing.T) {
		sel := mustSelection(t, entities.FundingCash)
		_, err := sel.Toggle(entities.FundingLoan, true)
		require.NoError(t, err)
		require.Equal(t, 1, sel.Len())
	})
}

func TestNewSelection(t *testing.T) {
	sel, err := NewSelection(entities.FundingCash, entities.FundingCash, entities.FundingLoan)
	require.NoError(t, err)
	require.Equal(t, []entities.FundingMethod{entities.FundingCash, entities.FundingLoan}, sel.Methods())

	_, err = NewSelection(entities.FundingCash, entities.FundingLoan, entities.FundingMortgage, entities.FundingCooperative)
	require.ErrorIs(t, err, ErrMethodLimitReached)

	_, err = NewSelection(entities.FundingMethod(42))
	require.ErrorIs(t, err, entities.ErrUnknownFundingMethod)
}
