package request

import (
	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"
)

// AllocationPreviewRequest mirrors the live mix form: the methods in the
// order they were checked and the percentage text typed for each.
type AllocationPreviewRequest struct {
	Methods         []string          `json:"methods" binding:"required"`
	Percentages     map[string]string `json:"percentages"`
	TotalPlanAmount float64           `json:"total_plan_amount"`
}

// ResolveMethods parses method names, keeping their order.
func (r AllocationPreviewRequest) ResolveMethods() ([]entities.FundingMethod, error) {
	return parseMethods(r.Methods)
}

// ResolvePercentages parses method keys and sanitizes each typed value the
// same way the form does on every keystroke.
func (r AllocationPreviewRequest) ResolvePercentages() (map[entities.FundingMethod]string, error) {
	out := make(map[entities.FundingMethod]string, len(r.Percentages))
	for name, raw := range r.Percentages {
		m, err := entities.ParseFundingMethod(name)
		if err != nil {
			return nil, err
		}
		out[m] = allocation.SanitizePercentageInput(raw)
	}
	return out, nil
}

type AllocationDistributeRequest struct {
	Methods []string `json:"methods" binding:"required"`
}

func (r AllocationDistributeRequest) ResolveMethods() ([]entities.FundingMethod, error) {
	return parseMethods(r.Methods)
}

func parseMethods(names []string) ([]entities.FundingMethod, error) {
	out := make([]entities.FundingMethod, 0, len(names))
	for _, name := range names {
		m, err := entities.ParseFundingMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
