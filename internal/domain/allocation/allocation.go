// Package allocation splits a plan total across funding methods by percentage
// and validates the split.
//
// All arithmetic is done on shopspring decimals, so totals such as
// 33.33 + 33.33 + 33.34 compare equal to 100 exactly.
package allocation

import (
	"errors"

	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Blocking reasons. They prevent a mix plan from being submitted and are
// meant to be shown to the user as-is.
var (
	ErrTooFewMethods         = errors.New("select at least two funding methods for a mix plan")
	ErrIncompleteAllocations = errors.New("complete mix allocations: every selected method needs a percentage above zero")
	ErrAllocationTotal       = errors.New("mix allocations must add up to 100%")
	ErrMethodLimitReached    = errors.New("funding method limit reached: at most 3 methods can be combined")
)

// Allocation is the share of the plan total assigned to one method.
type Allocation struct {
	Method     entities.FundingMethod
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// Summary is everything a form needs to render and gate a mix allocation.
type Summary struct {
	Allocations    []Allocation
	AllocatedTotal decimal.Decimal
	Remaining      decimal.Decimal
	Valid          bool
	// Problem is the first blocking reason, nil when Valid.
	Problem error
}

// ComputeAllocationDetails returns one Allocation per selected method, in
// selection order. Blank or unparsable percentages count as 0.
func ComputeAllocationDetails(sel Selection, pct Percentages, total decimal.Decimal) []Allocation {
	out := make([]Allocation, 0, sel.Len())
	for _, m := range sel.methods {
		p := ParsePercentage(pct.Get(m))
		out = append(out, Allocation{
			Method:     m,
			Percentage: p,
			Amount:     total.Mul(p).Div(hundred).Round(2),
		})
	}
	return out
}

// AllocatedTotal is the sum of the selected methods' percentages.
func AllocatedTotal(sel Selection, pct Percentages) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range sel.methods {
		sum = sum.Add(ParsePercentage(pct.Get(m)))
	}
	return sum
}

// DistributeEvenly gives every method round(100/n, 2) percent and hands the
// last selected method whatever brings the total to exactly 100.00.
func DistributeEvenly(sel Selection) Percentages {
	var out Percentages
	n := sel.Len()
	if n == 0 {
		return out
	}

	share := hundred.Div(decimal.NewFromInt(int64(n))).Round(2)
	assigned := decimal.Zero
	for i, m := range sel.methods {
		v := share
		if i == n-1 {
			v = hundred.Sub(assigned)
		}
		assigned = assigned.Add(v)
		out.Set(m, v.StringFixed(2))
	}
	return out
}

// Validate returns the first reason the allocation cannot be submitted, or nil.
func Validate(sel Selection, pct Percentages) error {
	if sel.Len() < MinMethods {
		return ErrTooFewMethods
	}
	for _, m := range sel.methods {
		raw := pct.Get(m)
		if isBlank(raw) || !ParsePercentage(raw).IsPositive() {
			return ErrIncompleteAllocations
		}
	}
	if AllocatedTotal(sel, pct).Sub(hundred).Abs().GreaterThanOrEqual(tolerance) {
		return ErrAllocationTotal
	}
	return nil
}

func IsValid(sel Selection, pct Percentages) bool {
	return Validate(sel, pct) == nil
}

// Evaluate derives the full Summary for the current form state.
func Evaluate(sel Selection, pct Percentages, total decimal.Decimal) Summary {
	allocated := AllocatedTotal(sel, pct)
	problem := Validate(sel, pct)
	return Summary{
		Allocations:    ComputeAllocationDetails(sel, pct, total),
		AllocatedTotal: allocated,
		Remaining:      hundred.Sub(allocated),
		Valid:          problem == nil,
		Problem:        problem,
	}
}

// Submission is the {method: percentage} map a save request carries, each
// percentage rounded to two decimals.
func Submission(sel Selection, pct Percentages) map[entities.FundingMethod]decimal.Decimal {
	out := make(map[entities.FundingMethod]decimal.Decimal, sel.Len())
	for _, m := range sel.methods {
		out[m] = ParsePercentage(pct.Get(m)).Round(2)
	}
	return out
}
