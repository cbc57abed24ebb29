package allocation

import (
	"testing"

	"payplan/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestSanitizePercentageInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"50", "50"},
		{"50%", "50"},
		{" 4 5 ", "45"},
		{"007", "7"},
		{"00", "0"},
		{"0", "0"},
		{"000.5", "0.5"},
		{".5", "0.5"},
		{".", "0."},
		{"12.", "12."},
		{"12.345", "12.34"},
		{"1.2.3", "1.23"},
		{"-20", "20"},
		{"100", "100"},
		{"100.00", "100.00"},
		{"100.01", "100"},
		{"250", "100"},
		{"99999999999999999999", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizePercentageInput(tt.in))
		})
	}
}

func TestSanitizePercentageInput_Idempotent(t *testing.T) {
	inputs := []string{
		"", "0", "00", "0.", ".", "..", "0.0", "000.000", "1", "01.1", "9.999",
		"100", "100.", "100.0", "100.001", "101", "1e3", "-1.5", "abc12.3x4",
		"3,5", "50 %", "١٢", "0000000000000100.00", "12..34", ".0", "99.99",
	}
	for _, in := range inputs {
		once := SanitizePercentageInput(in)
		require.Equal(t, once, SanitizePercentageInput(once), "input %q", in)
	}
}

func TestParsePercentage(t *testing.T) {
	require.Equal(t, "0", ParsePercentage("").String())
	require.Equal(t, "0", ParsePercentage("  ").String())
	require.Equal(t, "0", ParsePercentage("x").String())
	require.Equal(t, "12", ParsePercentage("12.").String())
	require.Equal(t, "33.33", ParsePercentage(" 33.33 ").String())
}

func TestPercentages(t *testing.T) {
	var p Percentages
	require.Equal(t, "7", p.Enter(entities.FundingLoan, "007"))
	require.Equal(t, "7", p.Get(entities.FundingLoan))

	p.Set(entities.FundingCash, "raw text")
	require.Equal(t, "raw text", p.Get(entities.FundingCash))

	p.Set(entities.FundingMethod(0), "ignored")
	require.Equal(t, "", p.Get(entities.FundingMethod(0)))
}
