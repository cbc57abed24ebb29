package response

import (
	"payplan/internal/domain/amortization"
	"payplan/internal/domain/entities"
)

type InstallmentResponse struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type MortgageQuoteResponse struct {
	Principal             float64               `json:"principal"`
	AnnualRatePercent     float64               `json:"annual_rate_percent"`
	TermYears             float64               `json:"term_years"`
	MonthlyPayment        float64               `json:"monthly_payment"`
	MonthlyPaymentDisplay string                `json:"monthly_payment_display"`
	NumberOfPayments      float64               `json:"number_of_payments"`
	TotalPayment          float64               `json:"total_payment"`
	TotalInterest         float64               `json:"total_interest"`
	Schedule              []InstallmentResponse `json:"schedule,omitempty"`
}

func FromMortgageQuote(q entities.MortgageQuote) MortgageQuoteResponse {
	out := MortgageQuoteResponse{
		Principal:             q.Terms.Principal,
		AnnualRatePercent:     q.Terms.AnnualRatePercent,
		TermYears:             q.Terms.TermYears,
		MonthlyPayment:        q.MonthlyPayment,
		MonthlyPaymentDisplay: amortization.FormatAmount(q.MonthlyPayment),
		NumberOfPayments:      q.NumberOfPayments,
		TotalPayment:          q.TotalPayment,
		TotalInterest:         q.TotalInterest,
	}
	if len(q.Schedule) > 0 {
		out.Schedule = make([]InstallmentResponse, 0, len(q.Schedule))
		for _, in := range q.Schedule {
			out.Schedule = append(out.Schedule, InstallmentResponse{
				Period:    in.Period,
				Payment:   in.Payment.InexactFloat64(),
				Principal: in.Principal.InexactFloat64(),
				Interest:  in.Interest.InexactFloat64(),
				Balance:   in.Balance.InexactFloat64(),
			})
		}
	}
	return out
}
