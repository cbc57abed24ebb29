package entities

import "github.com/shopspring/decimal"

// LoanTerms are the inputs of a mortgage installment quote.
//
// AnnualRatePercent is expressed in percent (12.5 means 12.5% per year).
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         float64 `json:"term_years"`
}

// Installment is one month of an amortization schedule.
type Installment struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// MortgageQuote is the derived view of a set of LoanTerms.
//
// Quotes are never persisted; they are cached by their terms only.
type MortgageQuote struct {
	Terms            LoanTerms     `json:"terms"`
	MonthlyPayment   float64       `json:"monthly_payment"`
	NumberOfPayments float64       `json:"number_of_payments"`
	TotalPayment     float64       `json:"total_payment"`
	TotalInterest    float64       `json:"total_interest"`
	Schedule         []Installment `json:"schedule,omitempty"`
}
