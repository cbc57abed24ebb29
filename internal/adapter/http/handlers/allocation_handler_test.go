package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payplan/internal/adapter/http/handlers/mocks"
	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAllocationHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIPaymentPlanUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/allocations/preview", NewAllocationHandler(uc).Preview)
		return r
	}

	t.Run("unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/allocations/preview", bytes.NewBufferString(`{"methods":["cash","barter"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sanitizes typed percentages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)

		uc.EXPECT().PreviewAllocation(
			[]entities.FundingMethod{entities.FundingCash, entities.FundingMortgage},
			map[entities.FundingMethod]string{entities.FundingCash: "40.5", entities.FundingMortgage: "59.5"},
			gomock.Cond(func(x any) bool { return x.(decimal.Decimal).Equal(decimal.NewFromInt(1000)) }),
		).Return(allocation.Summary{
			Allocations: []allocation.Allocation{
				{Method: entities.FundingCash, Percentage: decimal.RequireFromString("40.5"), Amount: decimal.RequireFromString("405")},
				{Method: entities.FundingMortgage, Percentage: decimal.RequireFromString("59.5"), Amount: decimal.RequireFromString("595")},
			},
			AllocatedTotal: decimal.NewFromInt(100),
			Remaining:      decimal.Zero,
			Valid:          true,
		}, nil)

		body := `{"methods":["cash","mortgage"],"percentages":{"cash":" 40.5%","mortgage":"59.5"},"total_plan_amount":1000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/allocations/preview", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out["is_valid"] != true || out["allocated_total"] != float64(100) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("blocked mix is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)

		uc.EXPECT().PreviewAllocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(allocation.Summary{
			AllocatedTotal: decimal.NewFromInt(60),
			Remaining:      decimal.NewFromInt(40),
			Problem:        allocation.ErrAllocationTotal,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/allocations/preview", bytes.NewBufferString(`{"methods":["cash","loan"],"percentages":{"cash":"30","loan":"30"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out["is_valid"] != false || out["problem"] != allocation.ErrAllocationTotal.Error() {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("method limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPlanUseCase(ctrl)

		uc.EXPECT().PreviewAllocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(allocation.Summary{}, allocation.ErrMethodLimitReached)

		req := httptest.NewRequest(http.MethodPost, "/v1/allocations/preview", bytes.NewBufferString(`{"methods":["cash","loan","mortgage","cooperative"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestAllocationHandler_Distribute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentPlanUseCase(ctrl)

	r := gin.New()
	r.POST("/v1/allocations/distribute", NewAllocationHandler(uc).Distribute)

	methods := []entities.FundingMethod{entities.FundingCash, entities.FundingLoan, entities.FundingMortgage}
	uc.EXPECT().DistributeEvenly(methods).Return(map[entities.FundingMethod]string{
		entities.FundingCash:     "33.33",
		entities.FundingLoan:     "33.33",
		entities.FundingMortgage: "33.34",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/allocations/distribute", bytes.NewBufferString(`{"methods":["cash","loan","mortgage"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out struct {
		Methods     []string          `json:"methods"`
		Percentages map[string]string `json:"percentages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(out.Methods) != 3 || out.Methods[2] != "mortgage" || out.Percentages["mortgage"] != "33.34" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
