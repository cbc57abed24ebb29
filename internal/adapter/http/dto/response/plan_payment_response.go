package response

import (
	"time"

	"payplan/internal/domain/entities"
)

type PlanPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	PlanID      string    `json:"plan_id"`
	Method      string    `json:"method"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPlanPayment(p entities.PlanPayment) PlanPaymentResponse {
	return PlanPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		PlanID:             p.PlanID,
		Method:             p.Method.String(),
		Amount:             p.Amount.InexactFloat64(),
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPlanPayments(payments []entities.PlanPayment) []PlanPaymentResponse {
	out := make([]PlanPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPlanPayment(p))
	}
	return out
}
