// Package amortization computes fixed monthly installments of amortizing loans.
//
// Fixed Periodic Payment = P * [r * (1 + r)^n] / [(1 + r)^n - 1]
//
//	P = principal
//	r = monthly rate (annual percent / 100 / 12)
//	n = number of monthly payments (years * 12)
package amortization

import (
	"errors"
	"math"
	"strconv"

	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	// MaxScheduleMonths caps the size of a generated schedule (50 years).
	MaxScheduleMonths = 600

	monthsPerYear = 12.0
)

var (
	ErrInvalidTerms    = errors.New("invalid loan terms")
	ErrScheduleTooLong = errors.New("schedule exceeds maximum number of months")

	// annual percent -> monthly fraction
	percentMonthDivisor = decimal.NewFromInt(1200)
)

// MonthlyPayment returns the fixed monthly installment for terms.
//
// ok is false when the terms cannot produce a payment: a non-finite input,
// a non-positive principal or term, or a non-finite result. Callers keep
// whatever they displayed before in that case.
func MonthlyPayment(terms entities.LoanTerms) (payment float64, ok bool) {
	p := terms.Principal
	rate := terms.AnnualRatePercent
	years := terms.TermYears
	if !finite(p) || !finite(rate) || !finite(years) {
		return 0, false
	}
	if years <= 0 || p <= 0 {
		return 0, false
	}

	n := years * monthsPerYear
	r := rate / 100 / monthsPerYear

	if r <= 0 {
		payment = p / n
	} else {
		factor := math.Pow(1+r, n)
		if factor == 1 {
			// (1+r)^n rounded to exactly 1: straight-line avoids dividing by 0.
			payment = p / n
		} else {
			payment = p * (r * factor) / (factor - 1)
		}
	}

	if !finite(payment) || payment < 0 {
		return 0, false
	}
	return payment, true
}

// Quote derives the monthly payment and the totals paid over the term.
func Quote(terms entities.LoanTerms) (entities.MortgageQuote, error) {
	payment, ok := MonthlyPayment(terms)
	if !ok {
		return entities.MortgageQuote{}, ErrInvalidTerms
	}

	n := terms.TermYears * monthsPerYear
	total := payment * n
	return entities.MortgageQuote{
		Terms:            terms,
		MonthlyPayment:   Round2(payment),
		NumberOfPayments: n,
		TotalPayment:     Round2(total),
		TotalInterest:    Round2(total - terms.Principal),
	}, nil
}

// Schedule builds the month-by-month amortization table for terms.
//
// The installment is the rounded monthly payment. Interest is charged on the
// outstanding balance each month and the last period absorbs rounding so the
// balance ends at exactly zero. Fractional month counts round to the nearest
// whole month.
func Schedule(terms entities.LoanTerms) ([]entities.Installment, error) {
	payment, ok := MonthlyPayment(terms)
	if !ok {
		return nil, ErrInvalidTerms
	}

	periods := int(math.Round(terms.TermYears * monthsPerYear))
	if periods < 1 {
		return nil, ErrInvalidTerms
	}
	if periods > MaxScheduleMonths {
		return nil, ErrScheduleTooLong
	}

	monthlyRate := decimal.Zero
	if terms.AnnualRatePercent > 0 {
		monthlyRate = decimal.NewFromFloat(terms.AnnualRatePercent).Div(percentMonthDivisor)
	}
	installment := decimal.NewFromFloat(payment).Round(2)
	balance := decimal.NewFromFloat(terms.Principal)

	schedule := make([]entities.Installment, 0, periods)
	for period := 1; period <= periods; period++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principalPart := installment.Sub(interest)

		if period == periods || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		if principalPart.IsNegative() {
			principalPart = decimal.Zero
		}

		balance = balance.Sub(principalPart)
		schedule = append(schedule, entities.Installment{
			Period:    period,
			Payment:   principalPart.Add(interest),
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return schedule, nil
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders v with exactly two decimals for display.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
