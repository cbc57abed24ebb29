package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the gateway processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PlanPayment is a gateway charge for the cash portion of a payment plan.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (plan_id-index): plan_id
//
// ProviderPayloadRaw keeps the provider body as received; ProviderPayload is
// the parsed form for querying.
type PlanPayment struct {
	ID     string          `json:"id"`
	PlanID string          `json:"plan_id"`
	Method FundingMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Status PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago status onto PaymentStatus.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}
