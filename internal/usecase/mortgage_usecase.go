package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"payplan/internal/domain/amortization"
	"payplan/internal/domain/entities"
	"payplan/internal/usecase/interfaces"
)

const (
	// MaxLoanTermMonths is the longest term a quote accepts (50 years).
	MaxLoanTermMonths = amortization.MaxScheduleMonths
	// MaxLoanPrincipal bounds principals to amounts the platform finances.
	MaxLoanPrincipal = 1_000_000_000_000.0
	// MaxAnnualRatePercent bounds the yearly rate.
	MaxAnnualRatePercent = 1000.0

	DefaultQuoteCacheTTL = 24 * time.Hour
)

var (
	ErrInvalidLoanTerms = errors.New("invalid loan terms")
	ErrLoanTermTooLong  = fmt.Errorf("loan term exceeds %d months", MaxLoanTermMonths)
	ErrLoanOutOfRange   = errors.New("loan principal or rate out of range")
)

// IMortgageUseCase exposes mortgage installment quotes.
type IMortgageUseCase interface {
	Quote(ctx context.Context, terms entities.LoanTerms, withSchedule bool) (entities.MortgageQuote, error)
}

type MortgageUseCase struct {
	cache interfaces.IQuoteCache
	ttl   time.Duration
}

var _ IMortgageUseCase = (*MortgageUseCase)(nil)

// NewMortgageUseCase builds the use case. cache may be nil.
func NewMortgageUseCase(cache interfaces.IQuoteCache, ttl time.Duration) *MortgageUseCase {
	if ttl <= 0 {
		ttl = DefaultQuoteCacheTTL
	}
	return &MortgageUseCase{cache: cache, ttl: ttl}
}

func (u *MortgageUseCase) Quote(ctx context.Context, terms entities.LoanTerms, withSchedule bool) (entities.MortgageQuote, error) {
	if _, ok := amortization.MonthlyPayment(terms); !ok {
		return entities.MortgageQuote{}, ErrInvalidLoanTerms
	}
	if terms.TermYears*12 > MaxLoanTermMonths {
		return entities.MortgageQuote{}, ErrLoanTermTooLong
	}
	if terms.Principal > MaxLoanPrincipal || terms.AnnualRatePercent < 0 || terms.AnnualRatePercent > MaxAnnualRatePercent {
		return entities.MortgageQuote{}, ErrLoanOutOfRange
	}

	key := quoteCacheKey(terms, withSchedule)
	if cached, ok := u.cachedQuote(ctx, key); ok {
		return cached, nil
	}

	quote, err := amortization.Quote(terms)
	if err != nil {
		return entities.MortgageQuote{}, ErrInvalidLoanTerms
	}
	if withSchedule {
		schedule, err := amortization.Schedule(terms)
		if err != nil {
			return entities.MortgageQuote{}, ErrInvalidLoanTerms
		}
		quote.Schedule = schedule
	}

	u.storeQuote(ctx, key, quote)
	return quote, nil
}

func (u *MortgageUseCase) cachedQuote(ctx context.Context, key string) (entities.MortgageQuote, bool) {
	if u.cache == nil {
		return entities.MortgageQuote{}, false
	}
	raw, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[mortgage][usecase] cache get failed key=%s err=%v", key, err)
		return entities.MortgageQuote{}, false
	}
	if !ok {
		return entities.MortgageQuote{}, false
	}

	var quote entities.MortgageQuote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		log.Printf("[mortgage][usecase] cache entry unreadable key=%s err=%v", key, err)
		return entities.MortgageQuote{}, false
	}
	return quote, true
}

func (u *MortgageUseCase) storeQuote(ctx context.Context, key string, quote entities.MortgageQuote) {
	if u.cache == nil {
		return
	}
	b, err := json.Marshal(quote)
	if err != nil {
		log.Printf("[mortgage][usecase] quote marshal failed key=%s err=%v", key, err)
		return
	}
	if err := u.cache.Set(ctx, key, string(b), u.ttl); err != nil {
		log.Printf("[mortgage][usecase] cache set failed key=%s err=%v", key, err)
	}
}

func quoteCacheKey(terms entities.LoanTerms, withSchedule bool) string {
	return "mortgage-quote:" +
		strconv.FormatFloat(terms.Principal, 'g', -1, 64) + ":" +
		strconv.FormatFloat(terms.AnnualRatePercent, 'g', -1, 64) + ":" +
		strconv.FormatFloat(terms.TermYears, 'g', -1, 64) + ":" +
		strconv.FormatBool(withSchedule)
}
