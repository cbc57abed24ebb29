package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"
	"payplan/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPlanPaymentNotFound            = errors.New("plan payment not found")
	ErrPlanAlreadyPaid                = errors.New("plan cash portion already paid")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment gateway payload")
	ErrPlanNotApproved                = errors.New("payment plan not approved")
	ErrNoCashPortion                  = errors.New("payment plan has no cash portion")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPlanPaymentUseCase charges the cash portion of approved payment plans.
//
// Other funding methods (loan, mortgage, equity wallet, cooperative) settle
// outside the gateway; only cash goes through Mercado Pago.
type IPlanPaymentUseCase interface {
	PayCashPortion(ctx context.Context, planID string, payload json.RawMessage) (entities.PlanPayment, error)
	GetByID(ctx context.Context, id string) (entities.PlanPayment, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error)
}

type PlanPaymentUseCase struct {
	repo     interfaces.IPlanPaymentRepository
	planRepo interfaces.IPaymentPlanRepository
	gateway  interfaces.IPaymentGateway
}

var _ IPlanPaymentUseCase = (*PlanPaymentUseCase)(nil)

func NewPlanPaymentUseCase(repo interfaces.IPlanPaymentRepository, planRepo interfaces.IPaymentPlanRepository, gateway interfaces.IPaymentGateway) *PlanPaymentUseCase {
	return &PlanPaymentUseCase{repo: repo, planRepo: planRepo, gateway: gateway}
}

func (u *PlanPaymentUseCase) PayCashPortion(ctx context.Context, planID string, payload json.RawMessage) (entities.PlanPayment, error) {
	log.Printf("[payment][usecase] pay-cash start raw_plan_id=%q payload_len=%d", planID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.PlanPayment{}, ErrInvalidPlanID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload plan_id=%s", planID)
			return entities.PlanPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.PlanPayment{}, ErrPaymentGatewayNotConfigured
	}

	plan, err := u.planRepo.GetByID(ctx, planID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading plan plan_id=%s err=%v", planID, err)
		return entities.PlanPayment{}, err
	}
	if plan.ID == "" {
		return entities.PlanPayment{}, ErrPlanNotFound
	}
	if plan.Status != entities.PlanStatusApproved {
		log.Printf("[payment][usecase] plan not approved plan_id=%s status=%s", planID, plan.Status)
		return entities.PlanPayment{}, ErrPlanNotApproved
	}

	amount, ok := CashAmount(plan)
	if !ok {
		return entities.PlanPayment{}, ErrNoCashPortion
	}
	log.Printf("[payment][usecase] plan loaded plan_id=%s mode=%s cash_amount=%s", planID, plan.Mode, amount.StringFixed(2))

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.PlanPayment{}, ErrInvalidPaymentPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id plan_id=%s", planID)
			return entities.PlanPayment{}, ErrInvalidPaymentPayload
		}
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer plan_id=%s", planID)
			return entities.PlanPayment{}, ErrInvalidPaymentPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = planID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Payment plan %s cash portion", planID)
	}
	// The plan in DB is the source of truth for the amount.
	reqMap["transaction_amount"] = amount.InexactFloat64()
	payload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.PlanPayment{}, err
	}

	if err := u.ensureNotPaid(ctx, planID); err != nil {
		return entities.PlanPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed plan_id=%s err=%v", planID, err)
		return entities.PlanPayment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway response plan_id=%s provider_id=%s provider_status=%s", planID, providerPaymentID, providerStatus)

	var parsed map[string]any
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Printf("[payment][usecase] provider response unmarshal failed plan_id=%s err=%v", planID, err)
		}
	}

	p := entities.PlanPayment{
		ID:                 providerPaymentID,
		PlanID:             planID,
		Method:             entities.FundingCash,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed plan_id=%s payment_id=%s err=%v", planID, p.ID, err)
		return entities.PlanPayment{}, err
	}
	log.Printf("[payment][usecase] pay-cash success plan_id=%s payment_id=%s status=%s", planID, created.ID, created.Status)
	return created, nil
}

// CashAmount returns the part of the plan total funded in cash.
// Mix plans get it from the cash allocation percentage.
func CashAmount(plan entities.PaymentPlan) (decimal.Decimal, bool) {
	switch plan.Mode {
	case entities.FundingModeSingle:
		if plan.Method != entities.FundingCash {
			return decimal.Zero, false
		}
		return plan.TotalAmount.Round(2), true
	case entities.FundingModeMix:
		if _, ok := plan.MixAllocations[entities.FundingCash]; !ok {
			return decimal.Zero, false
		}
		var methods []entities.FundingMethod
		var pct allocation.Percentages
		for _, m := range entities.AllFundingMethods() {
			if v, ok := plan.MixAllocations[m]; ok {
				methods = append(methods, m)
				pct.Set(m, v.String())
			}
		}
		sel, err := allocation.NewSelection(methods...)
		if err != nil {
			return decimal.Zero, false
		}
		for _, a := range allocation.ComputeAllocationDetails(sel, pct, plan.TotalAmount) {
			if a.Method == entities.FundingCash && a.Amount.IsPositive() {
				return a.Amount, true
			}
		}
	}
	return decimal.Zero, false
}

// ensureNotPaid refuses a new charge while an approved or still pending
// payment exists for the plan. Denied payments may be retried.
func (u *PlanPaymentUseCase) ensureNotPaid(ctx context.Context, planID string) error {
	existing, err := u.repo.ListByPlanID(ctx, planID)
	if err != nil {
		log.Printf("[payment][usecase] failed listing payments plan_id=%s err=%v", planID, err)
		return err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusApproved || p.Status == entities.PaymentStatusPending {
			log.Printf("[payment][usecase] plan already charged plan_id=%s payment_id=%s status=%s", planID, p.ID, p.Status)
			return ErrPlanAlreadyPaid
		}
	}
	return nil
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if isSandboxToken() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !isSandboxToken() {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isSandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}

func (u *PlanPaymentUseCase) GetByID(ctx context.Context, id string) (entities.PlanPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PlanPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PlanPayment{}, err
	}
	if p.ID == "" {
		return entities.PlanPayment{}, ErrPlanPaymentNotFound
	}
	return p, nil
}

func (u *PlanPaymentUseCase) ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, ErrInvalidPlanID
	}
	return u.repo.ListByPlanID(ctx, planID)
}
