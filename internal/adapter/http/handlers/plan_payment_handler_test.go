package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payplan/internal/adapter/http/handlers/mocks"
	"payplan/internal/domain/entities"
	"payplan/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestPlanPaymentHandler_PayCashPortion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	newRouter := func(uc *mocks.MockIPlanPaymentUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/plans/:id/payments", NewPlanPaymentHandler(uc).PayCashPortion)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/plans/plan-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

		uc.EXPECT().PayCashPortion(gomock.Any(), "plan-1", json.RawMessage("{}")).Return(entities.PlanPayment{ID: "pay-1", PlanID: "plan-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/plans/plan-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "not approved", err: usecase.ErrPlanNotApproved, status: http.StatusConflict, code: "PLAN_NOT_APPROVED"},
		{name: "no cash portion", err: usecase.ErrNoCashPortion, status: http.StatusConflict, code: "PLAN_NO_CASH_PORTION"},
		{name: "already paid", err: usecase.ErrPlanAlreadyPaid, status: http.StatusConflict, code: "PLAN_ALREADY_PAID"},
		{name: "plan missing", err: usecase.ErrPlanNotFound, status: http.StatusNotFound, code: "PLAN_NOT_FOUND"},
		{name: "gateway unauthorized", err: usecase.ErrPaymentGatewayUnauthorized, status: http.StatusUnauthorized, code: "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{name: "gateway missing", err: usecase.ErrPaymentGatewayNotConfigured, status: http.StatusServiceUnavailable, code: "PAYMENT_PROVIDER_UNAVAILABLE"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

			uc.EXPECT().PayCashPortion(gomock.Any(), "plan-1", gomock.Any()).Return(entities.PlanPayment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/plans/plan-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, w.Body.String())
			}
		})
	}

	t.Run("success unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

		uc.EXPECT().PayCashPortion(gomock.Any(), "plan-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.PlanPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", string(payload))
				}
				return entities.PlanPayment{
					ID:     "pay-1",
					PlanID: "plan-1",
					Method: entities.FundingCash,
					Amount: decimal.RequireFromString("308.64"),
					Date:   time.Now().UTC(),
					Status: entities.PaymentStatusApproved,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/plans/plan-1/payments", bytes.NewBufferString(`{"payment_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["method"] != "cash" || body["amount"] != 308.64 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPlanPaymentHandler_ListPlanPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIPlanPaymentUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/plans/:id/payments", NewPlanPaymentHandler(uc).ListPlanPayments)
		return r
	}

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

		uc.EXPECT().ListByPlanID(gomock.Any(), "plan-1").Return(nil, usecase.ErrInvalidPlanID)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/plan-1/payments", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().ListByPlanID(gomock.Any(), "plan-1").Return([]entities.PlanPayment{
			{ID: "old", PlanID: "plan-1", Date: now.Add(-2 * time.Hour)},
			{ID: "new", PlanID: "plan-1", Date: now},
			{ID: "mid", PlanID: "plan-1", Date: now.Add(-time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/plan-1/payments", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 3 || body[0]["id"] != "new" || body[1]["id"] != "mid" || body[2]["id"] != "old" {
			t.Fatalf("unexpected order: %s", w.Body.String())
		}
	})
}

func TestPlanPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPlanPaymentUseCase(ctrl)

	r := gin.New()
	r.GET("/v1/payments/:payment_id", NewPlanPaymentHandler(uc).GetPayment)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PlanPayment{}, usecase.ErrPlanPaymentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReadPaymentPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(body string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readPaymentPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readPaymentPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readPaymentPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readPaymentPayload(makeCtx(`{"payment_payload":null}`)); err == nil {
		t.Fatalf("expected payment_payload empty error")
	}

	payload, err = readPaymentPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected bare payload, got payload=%s err=%v", string(payload), err)
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock mode off")
	}
	t.Setenv("MERCADOPAGO_MOCK", " Yes ")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock mode on")
	}
}
