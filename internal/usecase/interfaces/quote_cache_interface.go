package interfaces

import (
	"context"
	"time"
)

// IQuoteCache stores serialized mortgage quotes keyed by their loan terms.
//
// A miss is ("", false, nil). Errors are reported so callers can log them;
// the quote is always recomputable.
type IQuoteCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
