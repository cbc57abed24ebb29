package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingMode tells whether a plan is paid through one method or split.
type FundingMode string

const (
	FundingModeSingle FundingMode = "single"
	FundingModeMix    FundingMode = "mix"
)

// PlanStatus represents the review lifecycle of a payment plan.
//
// Plans are created pending; the console moves them to approved, rejected or
// cancelled. Only pending plans can change status or allocations.
type PlanStatus string

const (
	PlanStatusPending   PlanStatus = "pending"
	PlanStatusApproved  PlanStatus = "approved"
	PlanStatusRejected  PlanStatus = "rejected"
	PlanStatusCancelled PlanStatus = "cancelled"
)

// PaymentPlan is the payment plan persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (member_id-index): member_id
//
// Monetary representation:
//   - TotalAmount and MixAllocations are exact decimals, stored as strings.
//   - MixAllocations holds percentages (0-100, 2 decimals) and is only set
//     for FundingModeMix; Method is only set for FundingModeSingle.
type PaymentPlan struct {
	ID             string                            `json:"id"`
	MemberID       string                            `json:"member_id"`
	Reference      string                            `json:"reference"`
	TotalAmount    decimal.Decimal                   `json:"total_amount"`
	Mode           FundingMode                       `json:"funding_mode"`
	Method         FundingMethod                     `json:"funding_method,omitempty"`
	MixAllocations map[FundingMethod]decimal.Decimal `json:"mix_allocations,omitempty"`
	Status         PlanStatus                        `json:"status"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}
