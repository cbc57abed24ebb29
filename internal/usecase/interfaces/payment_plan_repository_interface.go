package interfaces

import (
	"context"
	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPaymentPlanRepository abstracts DynamoDB persistence for PaymentPlan.
//
// The plan service must be able to:
//   - create a plan when the console saves a new one
//   - list a member's plans
//   - move a plan through its review status
//   - replace the mix allocations of a pending plan
//
// Lookups return a zero PaymentPlan (empty ID) when nothing matches. Updates
// are conditional on the stored status still being expected and return a
// zero PaymentPlan when the plan is missing or its status has moved on.

type IPaymentPlanRepository interface {
	Create(ctx context.Context, p entities.PaymentPlan) (entities.PaymentPlan, error)
	GetByID(ctx context.Context, id string) (entities.PaymentPlan, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.PaymentPlan, error)
	UpdateStatus(ctx context.Context, id string, expected, status entities.PlanStatus) (entities.PaymentPlan, error)
	UpdateMixAllocations(ctx context.Context, id string, expected entities.PlanStatus, allocations map[entities.FundingMethod]decimal.Decimal) (entities.PaymentPlan, error)
}
