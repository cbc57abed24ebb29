package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"payplan/internal/domain/entities"
	mock_interfaces "payplan/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMortgageUseCase_Quote_Validations(t *testing.T) {
	cases := []struct {
		name  string
		terms entities.LoanTerms
		want  error
	}{
		{name: "zero principal", terms: entities.LoanTerms{Principal: 0, AnnualRatePercent: 5, TermYears: 30}, want: ErrInvalidLoanTerms},
		{name: "zero years", terms: entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: 0}, want: ErrInvalidLoanTerms},
		{name: "term too long", terms: entities.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: 51}, want: ErrLoanTermTooLong},
		{name: "negative rate", terms: entities.LoanTerms{Principal: 1000, AnnualRatePercent: -1, TermYears: 10}, want: ErrLoanOutOfRange},
		{name: "huge principal", terms: entities.LoanTerms{Principal: 2e12, AnnualRatePercent: 5, TermYears: 10}, want: ErrLoanOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewMortgageUseCase(nil, 0)
			_, err := uc.Quote(context.Background(), tc.terms, false)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMortgageUseCase_Quote_WithoutCache(t *testing.T) {
	uc := NewMortgageUseCase(nil, 0)
	terms := entities.LoanTerms{Principal: 1_000_000, AnnualRatePercent: 12, TermYears: 1}

	q, err := uc.Quote(context.Background(), terms, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.MonthlyPayment != 88848.79 {
		t.Fatalf("expected 88848.79, got %v", q.MonthlyPayment)
	}
	if q.NumberOfPayments != 12 || len(q.Schedule) != 12 {
		t.Fatalf("expected 12 installments, got %g/%d", q.NumberOfPayments, len(q.Schedule))
	}
	if !q.Schedule[11].Balance.IsZero() {
		t.Fatalf("expected zero closing balance, got %s", q.Schedule[11].Balance)
	}
}

func TestMortgageUseCase_Quote_Cache(t *testing.T) {
	terms := entities.LoanTerms{Principal: 100000, AnnualRatePercent: 0, TermYears: 10}
	key := "mortgage-quote:100000:0:10:false"

	t.Run("miss stores quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := NewMortgageUseCase(cache, time.Hour)

		cache.EXPECT().Get(gomock.Any(), key).Return("", false, nil)
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).DoAndReturn(
			func(_ context.Context, _ string, value string, _ time.Duration) error {
				var q entities.MortgageQuote
				if err := json.Unmarshal([]byte(value), &q); err != nil {
					t.Fatalf("cached value should be json: %v", err)
				}
				if q.MonthlyPayment != 833.33 {
					t.Fatalf("unexpected cached payment %v", q.MonthlyPayment)
				}
				return nil
			},
		)

		q, err := uc.Quote(context.Background(), terms, false)
		if err != nil || q.MonthlyPayment != 833.33 {
			t.Fatalf("unexpected result err=%v q=%+v", err, q)
		}
	})

	t.Run("hit skips compute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := NewMortgageUseCase(cache, time.Hour)

		cache.EXPECT().Get(gomock.Any(), key).Return(`{"monthly_payment":1.23,"number_of_payments":120}`, true, nil)

		q, err := uc.Quote(context.Background(), terms, false)
		if err != nil || q.MonthlyPayment != 1.23 {
			t.Fatalf("expected cached quote, err=%v q=%+v", err, q)
		}
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := NewMortgageUseCase(cache, time.Hour)

		cache.EXPECT().Get(gomock.Any(), key).Return("", false, errors.New("redis down"))
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).Return(errors.New("redis down"))

		q, err := uc.Quote(context.Background(), terms, false)
		if err != nil || q.MonthlyPayment != 833.33 {
			t.Fatalf("unexpected result err=%v q=%+v", err, q)
		}
	})

	t.Run("unreadable entry is recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := NewMortgageUseCase(cache, time.Hour)

		cache.EXPECT().Get(gomock.Any(), key).Return("{", true, nil)
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).Return(nil)

		q, err := uc.Quote(context.Background(), terms, false)
		if err != nil || q.MonthlyPayment != 833.33 {
			t.Fatalf("unexpected result err=%v q=%+v", err, q)
		}
	})
}
