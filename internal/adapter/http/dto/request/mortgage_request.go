package request

import "payplan/internal/domain/entities"

// MortgageQuoteRequest carries the three loan inputs. Fields are pointers so
// a missing field is rejected while an explicit 0 rate is accepted.
type MortgageQuoteRequest struct {
	Principal         *float64 `json:"principal" binding:"required"`
	AnnualRatePercent *float64 `json:"annual_rate_percent" binding:"required"`
	TermYears         *float64 `json:"term_years" binding:"required"`
	IncludeSchedule   bool     `json:"include_schedule"`
}

func (r MortgageQuoteRequest) ToLoanTerms() entities.LoanTerms {
	return entities.LoanTerms{
		Principal:         deref(r.Principal),
		AnnualRatePercent: deref(r.AnnualRatePercent),
		TermYears:         deref(r.TermYears),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
