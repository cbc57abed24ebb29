package entities

import (
	"errors"
	"strings"
)

var ErrUnknownFundingMethod = errors.New("unknown funding method")

// FundingMethod is one of the closed set of ways a plan can be paid for.
//
// The zero value is not a valid method. Valid methods are dense from 1 to
// FundingMethodCount so they can index fixed-size arrays.
type FundingMethod uint8

const (
	FundingCash FundingMethod = iota + 1
	FundingLoan
	FundingEquityWallet
	FundingMortgage
	FundingCooperative
)

// FundingMethodCount is the number of valid funding methods.
const FundingMethodCount = int(FundingCooperative)

var fundingMethodNames = [...]string{
	FundingCash:         "cash",
	FundingLoan:         "loan",
	FundingEquityWallet: "equity_wallet",
	FundingMortgage:     "mortgage",
	FundingCooperative:  "cooperative",
}

// AllFundingMethods lists every valid method in canonical order.
func AllFundingMethods() []FundingMethod {
	out := make([]FundingMethod, 0, FundingMethodCount)
	for m := FundingCash; m <= FundingCooperative; m++ {
		out = append(out, m)
	}
	return out
}

func ParseFundingMethod(s string) (FundingMethod, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m := FundingCash; m <= FundingCooperative; m++ {
		if fundingMethodNames[m] == s {
			return m, nil
		}
	}
	return 0, ErrUnknownFundingMethod
}

func (m FundingMethod) Valid() bool {
	return m >= FundingCash && m <= FundingCooperative
}

// Index maps a valid method onto [0, FundingMethodCount).
func (m FundingMethod) Index() int {
	return int(m) - 1
}

func (m FundingMethod) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return fundingMethodNames[m]
}

func (m FundingMethod) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownFundingMethod
	}
	return []byte(fundingMethodNames[m]), nil
}

func (m *FundingMethod) UnmarshalText(b []byte) error {
	parsed, err := ParseFundingMethod(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
