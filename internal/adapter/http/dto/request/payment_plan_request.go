package request

import (
	"errors"
	"strconv"
	"strings"

	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidTotalAmount = errors.New("invalid total_amount")

// PaymentPlanCreateRequest is the payload the console sends when saving a plan.
//
// Single plans set funding_method. Mix plans set mix_allocations as
// {method: percentage}; mix_methods optionally fixes the selection order,
// otherwise the canonical method order is used.
type PaymentPlanCreateRequest struct {
	MemberID       string             `json:"member_id" binding:"required"`
	Reference      string             `json:"reference"`
	TotalAmount    float64            `json:"total_amount" binding:"required"`
	FundingMode    string             `json:"funding_mode" binding:"required"`
	FundingMethod  string             `json:"funding_method"`
	MixMethods     []string           `json:"mix_methods"`
	MixAllocations map[string]float64 `json:"mix_allocations"`
}

func (r PaymentPlanCreateRequest) ResolveMode() entities.FundingMode {
	return entities.FundingMode(strings.ToLower(strings.TrimSpace(r.FundingMode)))
}

// ResolveMethod parses funding_method; blank yields the zero method.
func (r PaymentPlanCreateRequest) ResolveMethod() (entities.FundingMethod, error) {
	if strings.TrimSpace(r.FundingMethod) == "" {
		return 0, nil
	}
	return entities.ParseFundingMethod(r.FundingMethod)
}

func (r PaymentPlanCreateRequest) ResolveTotalAmount() (decimal.Decimal, error) {
	if r.TotalAmount <= 0 {
		return decimal.Zero, ErrInvalidTotalAmount
	}
	return decimal.NewFromFloat(r.TotalAmount), nil
}

func (r PaymentPlanCreateRequest) ResolveMix() ([]entities.FundingMethod, map[entities.FundingMethod]string, error) {
	return resolveMix(r.MixMethods, r.MixAllocations)
}

// MixAllocationsUpdateRequest replaces the allocations of a pending mix plan.
type MixAllocationsUpdateRequest struct {
	MixMethods     []string           `json:"mix_methods"`
	MixAllocations map[string]float64 `json:"mix_allocations" binding:"required"`
}

func (r MixAllocationsUpdateRequest) ResolveMix() ([]entities.FundingMethod, map[entities.FundingMethod]string, error) {
	return resolveMix(r.MixMethods, r.MixAllocations)
}

func resolveMix(order []string, allocations map[string]float64) ([]entities.FundingMethod, map[entities.FundingMethod]string, error) {
	pct := make(map[entities.FundingMethod]string, len(allocations))
	for name, v := range allocations {
		m, err := entities.ParseFundingMethod(name)
		if err != nil {
			return nil, nil, err
		}
		pct[m] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	if len(order) > 0 {
		methods, err := parseMethods(order)
		if err != nil {
			return nil, nil, err
		}
		return methods, pct, nil
	}

	methods := make([]entities.FundingMethod, 0, len(pct))
	for _, m := range entities.AllFundingMethods() {
		if _, ok := pct[m]; ok {
			methods = append(methods, m)
		}
	}
	return methods, pct, nil
}
