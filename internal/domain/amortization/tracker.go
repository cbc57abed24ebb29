package amortization

import "payplan/internal/domain/entities"

// Tracker keeps a monthly payment in sync with loan terms that change one
// field at a time.
//
// Every setter recomputes. When the current terms are invalid (a user still
// typing, a blank field) the last good payment stays in place.
type Tracker struct {
	terms   entities.LoanTerms
	payment float64
	has     bool
}

func NewTracker(terms entities.LoanTerms) *Tracker {
	t := &Tracker{}
	t.Update(terms)
	return t
}

func (t *Tracker) SetPrincipal(v float64) (float64, bool) {
	t.terms.Principal = v
	return t.recompute()
}

func (t *Tracker) SetAnnualRate(v float64) (float64, bool) {
	t.terms.AnnualRatePercent = v
	return t.recompute()
}

func (t *Tracker) SetTermYears(v float64) (float64, bool) {
	t.terms.TermYears = v
	return t.recompute()
}

// Update replaces all terms at once and recomputes.
func (t *Tracker) Update(terms entities.LoanTerms) (float64, bool) {
	t.terms = terms
	return t.recompute()
}

func (t *Tracker) Terms() entities.LoanTerms {
	return t.terms
}

// MonthlyPayment returns the last valid payment at full precision. ok is
// false until some set of terms has been valid.
func (t *Tracker) MonthlyPayment() (float64, bool) {
	return t.payment, t.has
}

// Display is the payment rounded to two decimals, or "" before any valid terms.
func (t *Tracker) Display() string {
	if !t.has {
		return ""
	}
	return FormatAmount(t.payment)
}

func (t *Tracker) recompute() (float64, bool) {
	if payment, ok := MonthlyPayment(t.terms); ok {
		t.payment = payment
		t.has = true
	}
	return t.payment, t.has
}
