package fetcher

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"github.com/nzai/stockapi/stores"
	"go.uber.org/zap"
)

// Cached serve records from store before asking the wrapped quoter
type Cached struct {
	quoter Quoter
	store  stores.Store
	ttl    time.Duration
}

// NewCached create cached quoter, only successful records are stored
func NewCached(quoter Quoter, store stores.Store, ttl time.Duration) *Cached {
	return &Cached{quoter: quoter, store: store, ttl: ttl}
}

// Fetch load record from store, fall back to wrapped quoter
func (c Cached) Fetch(ctx context.Context, ticker string) (*quotes.Record, error) {
	symbol := strings.ToUpper(ticker)

	record, err := c.store.Load(symbol)
	if err == nil {
		zap.L().Debug("cache hit", zap.String("symbol", symbol))
		return record, nil
	}

	if !errors.Is(err, constants.ErrRecordNotFound) {
		zap.L().Warn("load cached record failed", zap.Error(err), zap.String("symbol", symbol))
	}

	record, err = c.quoter.Fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}

	err = c.store.Save(symbol, record, c.ttl)
	if err != nil {
		zap.L().Warn("save cached record failed", zap.Error(err), zap.String("symbol", symbol))
	}

	return record, nil
}
