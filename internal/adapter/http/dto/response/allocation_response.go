package response

import (
	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"
)

type AllocationResponse struct {
	Method     string  `json:"method"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// AllocationSummaryResponse is the live view of a mix form. A blocked form
// is still a 200: is_valid is false and problem says why.
type AllocationSummaryResponse struct {
	Allocations    []AllocationResponse `json:"allocations"`
	AllocatedTotal float64              `json:"allocated_total"`
	Remaining      float64              `json:"remaining"`
	IsValid        bool                 `json:"is_valid"`
	Problem        string               `json:"problem,omitempty"`
}

func FromAllocationSummary(s allocation.Summary) AllocationSummaryResponse {
	out := AllocationSummaryResponse{
		Allocations:    make([]AllocationResponse, 0, len(s.Allocations)),
		AllocatedTotal: s.AllocatedTotal.InexactFloat64(),
		Remaining:      s.Remaining.InexactFloat64(),
		IsValid:        s.Valid,
	}
	if s.Problem != nil {
		out.Problem = s.Problem.Error()
	}
	for _, a := range s.Allocations {
		out.Allocations = append(out.Allocations, AllocationResponse{
			Method:     a.Method.String(),
			Percentage: a.Percentage.InexactFloat64(),
			Amount:     a.Amount.InexactFloat64(),
		})
	}
	return out
}

// DistributionResponse keeps percentages as the two-decimal text the form
// shows, keyed by method name.
type DistributionResponse struct {
	Methods     []string          `json:"methods"`
	Percentages map[string]string `json:"percentages"`
}

func FromDistribution(methods []entities.FundingMethod, pct map[entities.FundingMethod]string) DistributionResponse {
	out := DistributionResponse{
		Methods:     make([]string, 0, len(methods)),
		Percentages: make(map[string]string, len(pct)),
	}
	for _, m := range methods {
		out.Methods = append(out.Methods, m.String())
	}
	for m, v := range pct {
		out.Percentages[m.String()] = v
	}
	return out
}
