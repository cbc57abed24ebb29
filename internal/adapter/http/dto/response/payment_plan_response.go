package response

import (
	"time"

	"payplan/internal/domain/entities"
)

type PaymentPlanResponse struct {
	PlanID         string             `json:"plan_id"`
	ID             string             `json:"id"`
	MemberID       string             `json:"member_id"`
	Reference      string             `json:"reference,omitempty"`
	TotalAmount    float64            `json:"total_amount"`
	FundingMode    string             `json:"funding_mode"`
	FundingMethod  string             `json:"funding_method,omitempty"`
	MixAllocations map[string]float64 `json:"mix_allocations,omitempty"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromPaymentPlan(p entities.PaymentPlan) PaymentPlanResponse {
	out := PaymentPlanResponse{
		PlanID:      p.ID,
		ID:          p.ID,
		MemberID:    p.MemberID,
		Reference:   p.Reference,
		TotalAmount: p.TotalAmount.InexactFloat64(),
		FundingMode: string(p.Mode),
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Method.Valid() {
		out.FundingMethod = p.Method.String()
	}
	if len(p.MixAllocations) > 0 {
		out.MixAllocations = make(map[string]float64, len(p.MixAllocations))
		for m, pct := range p.MixAllocations {
			out.MixAllocations[m.String()] = pct.InexactFloat64()
		}
	}
	return out
}

func FromPaymentPlans(plans []entities.PaymentPlan) []PaymentPlanResponse {
	out := make([]PaymentPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPaymentPlan(p))
	}
	return out
}
