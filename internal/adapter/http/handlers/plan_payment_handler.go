package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "payplan/internal/adapter/http/dto/request"
	response "payplan/internal/adapter/http/dto/response"
	"payplan/internal/usecase"
	"payplan/pkg"

	"github.com/gin-gonic/gin"
)

// PlanPaymentHandler handles cash payments of approved plans.

type PlanPaymentHandler struct {
	usecase usecase.IPlanPaymentUseCase
}

func NewPlanPaymentHandler(uc usecase.IPlanPaymentUseCase) *PlanPaymentHandler {
	return &PlanPaymentHandler{usecase: uc}
}

// PayCashPortion godoc
// @Summary      Pay the cash portion of an approved plan
// @Description  Body is a Mercado Pago payment request, bare or wrapped in payment_payload. transaction_amount is always taken from the plan.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "Plan ID"
// @Param        body  body      request.PlanPaymentCreateRequest  false "Payment payload"
// @Success      200   {object}  response.PlanPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /plans/{id}/payments [post]
func (h *PlanPaymentHandler) PayCashPortion(c *gin.Context) {
	planID := c.Param("id")
	log.Printf("[payment][handler] pay-cash start plan_id=%s", planID)
	payload, err := readPaymentPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload plan_id=%s err=%v", planID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload plan_id=%s err=%v", planID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayCashPortion(c.Request.Context(), planID, payload)
	if err != nil {
		log.Printf("[payment][handler] pay-cash failed plan_id=%s err=%v", planID, err)
		appErr := mapPlanPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay-cash success plan_id=%s payment_id=%s status=%s", planID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPlanPayment(created))
}

// ListPlanPayments godoc
// @Summary  List payments of a plan, newest first
// @Tags     payments
// @Produce  json
// @Param    id   path     string  true  "Plan ID"
// @Success  200  {array}  response.PlanPaymentResponse
// @Router   /plans/{id}/payments [get]
func (h *PlanPaymentHandler) ListPlanPayments(c *gin.Context) {
	planID := c.Param("id")
	payments, err := h.usecase.ListByPlanID(c.Request.Context(), planID)
	if err != nil {
		log.Printf("[payment][handler] list failed plan_id=%s err=%v", planID, err)
		appErr := mapPlanPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.FromPlanPayments(payments)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].PaymentDate.After(out[j-1].PaymentDate); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	c.JSON(http.StatusOK, out)
}

// GetPayment godoc
// @Summary  Get a plan payment
// @Tags     payments
// @Produce  json
// @Param    payment_id  path      string  true  "Payment ID"
// @Success  200         {object}  response.PlanPaymentResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /payments/{payment_id} [get]
func (h *PlanPaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPlanPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlanPayment(payment))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.PlanPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.PaymentPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.PaymentPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("payment_payload cannot be empty")
		}
		return envelope.PaymentPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapPlanPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Payment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotApproved):
		return pkg.NewDomainErrorSimple("PLAN_NOT_APPROVED", "Payment plan not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoCashPortion):
		return pkg.NewDomainErrorSimple("PLAN_NO_CASH_PORTION", "Payment plan has no cash portion", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanAlreadyPaid):
		return pkg.NewDomainErrorSimple("PLAN_ALREADY_PAID", "Payment plan cash portion already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
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
