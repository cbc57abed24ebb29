package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "payplan/internal/adapter/http/dto/request"
	response "payplan/internal/adapter/http/dto/response"
	"payplan/internal/domain/entities"
	"payplan/internal/usecase"
	"payplan/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid payment plan payload", http.StatusBadRequest)
)

// PaymentPlanHandler handles HTTP requests for payment plans.

type PaymentPlanHandler struct {
	usecase usecase.IPaymentPlanUseCase
}

func NewPaymentPlanHandler(uc usecase.IPaymentPlanUseCase) *PaymentPlanHandler {
	return &PaymentPlanHandler{usecase: uc}
}

// CreatePlan godoc
// @Summary      Create a payment plan
// @Description  Single plans name one funding_method; mix plans send mix_allocations that must cover 2 or 3 methods and add up to 100.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body      request.PaymentPlanCreateRequest  true  "Plan"
// @Success      201   {object}  response.PaymentPlanResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /plans [post]
func (h *PaymentPlanHandler) CreatePlan(c *gin.Context) {
	var payload request.PaymentPlanCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	total, err := payload.ResolveTotalAmount()
	if err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}
	method, err := payload.ResolveMethod()
	if err != nil {
		writePlanError(c, err)
		return
	}
	cmd := usecase.CreatePlanCommand{
		MemberID:    payload.MemberID,
		Reference:   payload.Reference,
		TotalAmount: total,
		Mode:        payload.ResolveMode(),
		Method:      method,
	}
	if cmd.Mode == entities.FundingModeMix {
		cmd.Methods, cmd.Percentages, err = payload.ResolveMix()
		if err != nil {
			writePlanError(c, err)
			return
		}
	}

	plan, err := h.usecase.CreatePlan(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[plan][handler] create failed member_id=%s mode=%s err=%v", payload.MemberID, cmd.Mode, err)
		writePlanError(c, err)
		return
	}
	log.Printf("[plan][handler] create success plan_id=%s mode=%s", plan.ID, plan.Mode)

	c.JSON(http.StatusCreated, response.FromPaymentPlan(plan))
}

// GetPlan godoc
// @Summary  Get a payment plan
// @Tags     plans
// @Produce  json
// @Param    id   path      string  true  "Plan ID"
// @Success  200  {object}  response.PaymentPlanResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /plans/{id} [get]
func (h *PaymentPlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentPlan(plan))
}

// ListMemberPlans godoc
// @Summary  List a member's payment plans
// @Tags     plans
// @Produce  json
// @Param    member_id  path  string  true  "Member ID"
// @Success  200  {array}   response.PaymentPlanResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /members/{member_id}/plans [get]
func (h *PaymentPlanHandler) ListMemberPlans(c *gin.Context) {
	plans, err := h.usecase.ListByMemberID(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentPlans(plans))
}

// UpdateMixAllocations godoc
// @Summary  Replace the allocations of a pending mix plan
// @Tags     plans
// @Accept   json
// @Produce  json
// @Param    id    path      string                               true  "Plan ID"
// @Param    body  body      request.MixAllocationsUpdateRequest  true  "Allocations"
// @Success  200   {object}  response.PaymentPlanResponse
// @Failure  409   {object}  pkg.HTTPError
// @Failure  422   {object}  pkg.HTTPError
// @Router   /plans/{id}/allocations [put]
func (h *PaymentPlanHandler) UpdateMixAllocations(c *gin.Context) {
	var payload request.MixAllocationsUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}
	methods, pct, err := payload.ResolveMix()
	if err != nil {
		writePlanError(c, err)
		return
	}

	plan, err := h.usecase.UpdateMixAllocations(c.Request.Context(), c.Param("id"), methods, pct)
	if err != nil {
		log.Printf("[plan][handler] update allocations failed plan_id=%s err=%v", c.Param("id"), err)
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentPlan(plan))
}

func (h *PaymentPlanHandler) ApprovePlan(c *gin.Context) {
	h.patchPlanStatus(c, h.usecase.Approve)
}

func (h *PaymentPlanHandler) RejectPlan(c *gin.Context) {
	h.patchPlanStatus(c, h.usecase.Reject)
}

func (h *PaymentPlanHandler) CancelPlan(c *gin.Context) {
	h.patchPlanStatus(c, h.usecase.Cancel)
}

func (h *PaymentPlanHandler) patchPlanStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.PaymentPlan, error),
) {
	id := c.Param("id")
	plan, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[plan][handler] status change failed plan_id=%s err=%v", id, err)
		writePlanError(c, err)
		return
	}
	log.Printf("[plan][handler] status changed plan_id=%s status=%s", plan.ID, plan.Status)
	c.JSON(http.StatusOK, response.FromPaymentPlan(plan))
}

func writePlanError(c *gin.Context, err error) {
	appErr := mapPaymentPlanError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentPlanError(err error) *pkg.AppError {
	if appErr := mapAllocationError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidMemberID), errors.Is(err, usecase.ErrInvalidFundingMode), errors.Is(err, usecase.ErrInvalidFundingMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Payment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotPending):
		return pkg.NewDomainErrorSimple("PLAN_NOT_PENDING", "Payment plan is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotMixPlan):
		return pkg.NewDomainErrorSimple("PLAN_NOT_MIX", "Payment plan is not a mix plan", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
