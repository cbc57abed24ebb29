package allocation

import (
	"payplan/internal/domain/entities"
)

// MaxMethods is the most funding methods a mix plan can combine.
const MaxMethods = 3

// MinMethods is the fewest funding methods a mix plan can combine.
const MinMethods = 2

// Selection is an insertion-ordered set of funding methods, capped at MaxMethods.
//
// Selections are values; Toggle returns a new one and never mutates the receiver.
type Selection struct {
	methods []entities.FundingMethod
}

// NewSelection adds methods in order, ignoring duplicates.
//
// Invalid methods fail with entities.ErrUnknownFundingMethod. Going past
// MaxMethods fails with ErrMethodLimitReached.
func NewSelection(methods ...entities.FundingMethod) (Selection, error) {
	var s Selection
	for _, m := range methods {
		if !m.Valid() {
			return Selection{}, entities.ErrUnknownFundingMethod
		}
		next, err := s.Toggle(m, true)
		if err != nil {
			return Selection{}, err
		}
		s = next
	}
	return s, nil
}

// Toggle adds (checked) or removes a method.
//
// Adding a method beyond MaxMethods leaves the selection unchanged and
// returns ErrMethodLimitReached. Removing always succeeds.
func (s Selection) Toggle(m entities.FundingMethod, checked bool) (Selection, error) {
	if checked {
		if s.Contains(m) {
			return s, nil
		}
		if len(s.methods) >= MaxMethods {
			return s, ErrMethodLimitReached
		}
		out := make([]entities.FundingMethod, len(s.methods), len(s.methods)+1)
		copy(out, s.methods)
		return Selection{methods: append(out, m)}, nil
	}

	out := make([]entities.FundingMethod, 0, len(s.methods))
	for _, cur := range s.methods {
		if cur != m {
			out = append(out, cur)
		}
	}
	return Selection{methods: out}, nil
}

func (s Selection) Contains(m entities.FundingMethod) bool {
	for _, cur := range s.methods {
		if cur == m {
			return true
		}
	}
	return false
}

func (s Selection) Len() int {
	return len(s.methods)
}

// Methods returns a copy of the selected methods in selection order.
func (s Selection) Methods() []entities.FundingMethod {
	out := make([]entities.FundingMethod, len(s.methods))
	copy(out, s.methods)
	return out
}
