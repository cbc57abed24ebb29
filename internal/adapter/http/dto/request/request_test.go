package request

import (
	"errors"
	"testing"

	"payplan/internal/domain/entities"
)

func TestMortgageQuoteRequest_ToLoanTerms(t *testing.T) {
	p, rate := 1000.0, 0.0
	r := MortgageQuoteRequest{Principal: &p, AnnualRatePercent: &rate}
	got := r.ToLoanTerms()
	if got.Principal != 1000 || got.AnnualRatePercent != 0 || got.TermYears != 0 {
		t.Fatalf("unexpected terms: %+v", got)
	}
}

func TestAllocationPreviewRequest_Resolve(t *testing.T) {
	r := AllocationPreviewRequest{
		Methods:     []string{"mortgage", " Cash "},
		Percentages: map[string]string{"cash": "0060.555", "mortgage": "150"},
	}

	methods, err := r.ResolveMethods()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(methods) != 2 || methods[0] != entities.FundingMortgage || methods[1] != entities.FundingCash {
		t.Fatalf("expected order to be kept, got %v", methods)
	}

	pct, err := r.ResolvePercentages()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pct[entities.FundingCash] != "60.55" || pct[entities.FundingMortgage] != "100" {
		t.Fatalf("expected sanitized percentages, got %+v", pct)
	}

	bad := AllocationPreviewRequest{Methods: []string{"crypto"}}
	if _, err := bad.ResolveMethods(); !errors.Is(err, entities.ErrUnknownFundingMethod) {
		t.Fatalf("expected ErrUnknownFundingMethod, got %v", err)
	}
}

func TestPaymentPlanCreateRequest_Resolve(t *testing.T) {
	t.Run("mix without explicit order", func(t *testing.T) {
		r := PaymentPlanCreateRequest{
			FundingMode:    " MIX ",
			TotalAmount:    1000,
			MixAllocations: map[string]float64{"mortgage": 40, "cash": 60.5},
		}
		if r.ResolveMode() != entities.FundingModeMix {
			t.Fatalf("unexpected mode %q", r.ResolveMode())
		}
		methods, pct, err := r.ResolveMix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(methods) != 2 || methods[0] != entities.FundingCash || methods[1] != entities.FundingMortgage {
			t.Fatalf("expected canonical order, got %v", methods)
		}
		if pct[entities.FundingCash] != "60.5" || pct[entities.FundingMortgage] != "40" {
			t.Fatalf("unexpected percentages %+v", pct)
		}
	})

	t.Run("mix with explicit order", func(t *testing.T) {
		r := MixAllocationsUpdateRequest{
			MixMethods:     []string{"mortgage", "cash"},
			MixAllocations: map[string]float64{"mortgage": 40, "cash": 60},
		}
		methods, _, err := r.ResolveMix()
		if err != nil || methods[0] != entities.FundingMortgage {
			t.Fatalf("expected explicit order, err=%v methods=%v", err, methods)
		}
	})

	t.Run("single", func(t *testing.T) {
		r := PaymentPlanCreateRequest{FundingMethod: "loan", TotalAmount: 10}
		m, err := r.ResolveMethod()
		if err != nil || m != entities.FundingLoan {
			t.Fatalf("unexpected method=%v err=%v", m, err)
		}
		if m, err := (PaymentPlanCreateRequest{}).ResolveMethod(); err != nil || m.Valid() {
			t.Fatalf("expected zero method for blank, got %v err=%v", m, err)
		}
	})

	t.Run("amount", func(t *testing.T) {
		if _, err := (PaymentPlanCreateRequest{TotalAmount: -1}).ResolveTotalAmount(); !errors.Is(err, ErrInvalidTotalAmount) {
			t.Fatalf("expected ErrInvalidTotalAmount, got %v", err)
		}
	})
}
