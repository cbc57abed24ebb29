package request

import "encoding/json"

// PlanPaymentCreateRequest is the optional envelope for a cash payment.
//
// `payment_payload` is forwarded to Mercado Pago as-is; a bare Mercado Pago
// body is accepted too.
type PlanPaymentCreateRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}
