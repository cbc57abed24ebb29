package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"
	"payplan/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPlanNotFound         = errors.New("payment plan not found")
	ErrInvalidPlanID        = errors.New("invalid payment plan id")
	ErrInvalidMemberID      = errors.New("invalid member_id")
	ErrInvalidPlanAmount    = errors.New("invalid plan total amount")
	ErrInvalidFundingMode   = errors.New("invalid funding mode")
	ErrInvalidFundingMethod = errors.New("invalid funding method")
	ErrPlanNotPending       = errors.New("payment plan is not pending")
	ErrNotMixPlan           = errors.New("payment plan is not a mix plan")
)

// CreatePlanCommand is what the console submits when saving a new plan.
//
// Single plans set Method. Mix plans set Methods (selection order) and the
// raw Percentages typed for them.
type CreatePlanCommand struct {
	MemberID    string
	Reference   string
	TotalAmount decimal.Decimal
	Mode        entities.FundingMode
	Method      entities.FundingMethod
	Methods     []entities.FundingMethod
	Percentages map[entities.FundingMethod]string
}

// IPaymentPlanUseCase exposes payment plan operations.
//
// PreviewAllocation and DistributeEvenly are pure and back the live mix form;
// the remaining operations persist through the plan repository.
type IPaymentPlanUseCase interface {
	PreviewAllocation(methods []entities.FundingMethod, percentages map[entities.FundingMethod]string, total decimal.Decimal) (allocation.Summary, error)
	DistributeEvenly(methods []entities.FundingMethod) (map[entities.FundingMethod]string, error)
	CreatePlan(ctx context.Context, cmd CreatePlanCommand) (entities.PaymentPlan, error)
	UpdateMixAllocations(ctx context.Context, id string, methods []entities.FundingMethod, percentages map[entities.FundingMethod]string) (entities.PaymentPlan, error)
	Approve(ctx context.Context, id string) (entities.PaymentPlan, error)
	Reject(ctx context.Context, id string) (entities.PaymentPlan, error)
	Cancel(ctx context.Context, id string) (entities.PaymentPlan, error)
	GetByID(ctx context.Context, id string) (entities.PaymentPlan, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.PaymentPlan, error)
}

type PaymentPlanUseCase struct {
	repo interfaces.IPaymentPlanRepository
}

var _ IPaymentPlanUseCase = (*PaymentPlanUseCase)(nil)

func NewPaymentPlanUseCase(repo interfaces.IPaymentPlanRepository) *PaymentPlanUseCase {
	return &PaymentPlanUseCase{repo: repo}
}

func (u *PaymentPlanUseCase) PreviewAllocation(methods []entities.FundingMethod, percentages map[entities.FundingMethod]string, total decimal.Decimal) (allocation.Summary, error) {
	if total.IsNegative() {
		return allocation.Summary{}, ErrInvalidPlanAmount
	}
	sel, err := allocation.NewSelection(methods...)
	if err != nil {
		return allocation.Summary{}, err
	}
	return allocation.Evaluate(sel, allocation.PercentagesFromMap(percentages), total), nil
}

func (u *PaymentPlanUseCase) DistributeEvenly(methods []entities.FundingMethod) (map[entities.FundingMethod]string, error) {
	sel, err := allocation.NewSelection(methods...)
	if err != nil {
		return nil, err
	}
	pct := allocation.DistributeEvenly(sel)

	out := make(map[entities.FundingMethod]string, sel.Len())
	for _, m := range sel.Methods() {
		out[m] = pct.Get(m)
	}
	return out, nil
}

func (u *PaymentPlanUseCase) CreatePlan(ctx context.Context, cmd CreatePlanCommand) (entities.PaymentPlan, error) {
	memberID := strings.TrimSpace(cmd.MemberID)
	if memberID == "" {
		return entities.PaymentPlan{}, ErrInvalidMemberID
	}
	if !cmd.TotalAmount.IsPositive() {
		return entities.PaymentPlan{}, ErrInvalidPlanAmount
	}

	now := time.Now().UTC()
	p := entities.PaymentPlan{
		ID:          uuid.NewString(),
		MemberID:    memberID,
		Reference:   strings.TrimSpace(cmd.Reference),
		TotalAmount: cmd.TotalAmount.Round(2),
		Mode:        cmd.Mode,
		Status:      entities.PlanStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch cmd.Mode {
	case entities.FundingModeSingle:
		if !cmd.Method.Valid() {
			return entities.PaymentPlan{}, ErrInvalidFundingMethod
		}
		p.Method = cmd.Method
	case entities.FundingModeMix:
		allocations, err := validatedMix(cmd.Methods, cmd.Percentages)
		if err != nil {
			return entities.PaymentPlan{}, err
		}
		p.MixAllocations = allocations
	default:
		return entities.PaymentPlan{}, ErrInvalidFundingMode
	}

	return u.repo.Create(ctx, p)
}

func (u *PaymentPlanUseCase) UpdateMixAllocations(ctx context.Context, id string, methods []entities.FundingMethod, percentages map[entities.FundingMethod]string) (entities.PaymentPlan, error) {
	p, err := u.pendingPlan(ctx, id)
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if p.Mode != entities.FundingModeMix {
		return entities.PaymentPlan{}, ErrNotMixPlan
	}

	allocations, err := validatedMix(methods, percentages)
	if err != nil {
		return entities.PaymentPlan{}, err
	}

	updated, err := u.repo.UpdateMixAllocations(ctx, p.ID, entities.PlanStatusPending, allocations)
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if updated.ID == "" {
		return entities.PaymentPlan{}, u.lostUpdateError(ctx, p.ID)
	}
	return updated, nil
}

func (u *PaymentPlanUseCase) Approve(ctx context.Context, id string) (entities.PaymentPlan, error) {
	return u.updateStatus(ctx, id, entities.PlanStatusApproved)
}

func (u *PaymentPlanUseCase) Reject(ctx context.Context, id string) (entities.PaymentPlan, error) {
	return u.updateStatus(ctx, id, entities.PlanStatusRejected)
}

func (u *PaymentPlanUseCase) Cancel(ctx context.Context, id string) (entities.PaymentPlan, error) {
	return u.updateStatus(ctx, id, entities.PlanStatusCancelled)
}

func (u *PaymentPlanUseCase) updateStatus(ctx context.Context, id string, status entities.PlanStatus) (entities.PaymentPlan, error) {
	p, err := u.pendingPlan(ctx, id)
	if err != nil {
		return entities.PaymentPlan{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.PlanStatusPending, status)
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if updated.ID == "" {
		return entities.PaymentPlan{}, u.lostUpdateError(ctx, p.ID)
	}
	log.Printf("[plan][usecase] status changed plan_id=%s from=%s to=%s", p.ID, entities.PlanStatusPending, status)
	return updated, nil
}

// lostUpdateError explains a conditional update that matched nothing: the
// plan is gone, or another request moved it out of pending first.
func (u *PaymentPlanUseCase) lostUpdateError(ctx context.Context, id string) error {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrPlanNotFound
	}
	log.Printf("[plan][usecase] concurrent status change plan_id=%s status=%s", id, current.Status)
	return ErrPlanNotPending
}

func (u *PaymentPlanUseCase) GetByID(ctx context.Context, id string) (entities.PaymentPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentPlan{}, ErrInvalidPlanID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if p.ID == "" {
		return entities.PaymentPlan{}, ErrPlanNotFound
	}
	return p, nil
}

func (u *PaymentPlanUseCase) ListByMemberID(ctx context.Context, memberID string) ([]entities.PaymentPlan, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, ErrInvalidMemberID
	}
	return u.repo.ListByMemberID(ctx, memberID)
}

func (u *PaymentPlanUseCase) pendingPlan(ctx context.Context, id string) (entities.PaymentPlan, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if p.Status != entities.PlanStatusPending {
		return entities.PaymentPlan{}, ErrPlanNotPending
	}
	return p, nil
}

// validatedMix checks a mix selection and returns the percentages to store.
// Blocking reasons come back as the allocation package's sentinel errors.
func validatedMix(methods []entities.FundingMethod, percentages map[entities.FundingMethod]string) (map[entities.FundingMethod]decimal.Decimal, error) {
	sel, err := allocation.NewSelection(methods...)
	if err != nil {
		return nil, err
	}
	pct := allocation.PercentagesFromMap(percentages)
	if err := allocation.Validate(sel, pct); err != nil {
		return nil, err
	}
	return allocation.Submission(sel, pct), nil
}
