package allocation

import (
	"strings"

	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	hundred    = decimal.NewFromInt(100)
	tolerance  = decimal.RequireFromString("0.01")
	maxPercent = "100"
)

// Percentages holds the raw percentage text typed for each funding method.
//
// A blank entry means "not yet entered", which is distinct from "0".
type Percentages [entities.FundingMethodCount]string

func (p Percentages) Get(m entities.FundingMethod) string {
	if !m.Valid() {
		return ""
	}
	return p[m.Index()]
}

// Set stores raw as-is.
func (p *Percentages) Set(m entities.FundingMethod, raw string) {
	if !m.Valid() {
		return
	}
	p[m.Index()] = raw
}

// Enter applies one user edit, sanitizing the text first.
func (p *Percentages) Enter(m entities.FundingMethod, raw string) string {
	clean := SanitizePercentageInput(raw)
	p.Set(m, clean)
	return clean
}

// PercentagesFromMap builds Percentages from a method keyed map.
func PercentagesFromMap(in map[entities.FundingMethod]string) Percentages {
	var p Percentages
	for m, raw := range in {
		p.Set(m, raw)
	}
	return p
}

// SanitizePercentageInput filters one keystroke worth of percentage text.
//
// Only digits and the first decimal point survive, at most two decimals are
// kept, leading zeros are stripped (a single 0 stays before the point) and any
// value above 100 becomes "100". The empty string is returned unchanged.
func SanitizePercentageInput(raw string) string {
	if raw == "" {
		return raw
	}

	var whole, frac strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if !seenDot {
				whole.WriteRune(r)
			} else if frac.Len() < 2 {
				frac.WriteRune(r)
			}
		case r == '.' && !seenDot:
			seenDot = true
		}
	}
	if whole.Len() == 0 && !seenDot {
		return ""
	}

	intPart := strings.TrimLeft(whole.String(), "0")
	if intPart == "" {
		intPart = "0"
	}

	numeric := intPart
	out := intPart
	if seenDot {
		out += "." + frac.String()
		if frac.Len() > 0 {
			numeric += "." + frac.String()
		}
	}

	if v, err := decimal.NewFromString(numeric); err == nil && v.GreaterThan(hundred) {
		return maxPercent
	}
	return out
}

// ParsePercentage reads raw percentage text. Blank or unparsable text is 0.
func ParsePercentage(raw string) decimal.Decimal {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ".")
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
