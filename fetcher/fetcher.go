package fetcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"github.com/nzai/stockapi/sources"
	"go.uber.org/zap"
)

// Quoter define single ticker lookup
//
//go:generate mockgen -package=fetcher -destination=mock_quoter_test.go -source=fetcher.go Quoter
//go:generate mockgen -package=api -destination=../api/mock_quoter_test.go -source=fetcher.go Quoter
type Quoter interface {
	Fetch(ctx context.Context, ticker string) (*quotes.Record, error)
}

// Fetcher resolve ticker to full name and close prices
type Fetcher struct {
	source sources.Source
}

// NewFetcher create fetcher over source
func NewFetcher(source sources.Source) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch query full name and close prices of ticker.
// Returned errors are *quotes.Error, classify them with quotes.KindOf.
// NotFound messages name the upper-cased symbol, so "aapl" is reported
// as "could not retrieve full name for AAPL".
func (f Fetcher) Fetch(ctx context.Context, ticker string) (record *quotes.Record, err error) {
	symbol := strings.ToUpper(ticker)

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("fetch panic recovered", zap.Any("panic", r), zap.String("symbol", symbol), zap.Stack("stack"))
			record, err = nil, quotes.Internal(symbol, fmt.Errorf("%v", r))
		}
	}()

	metadata, err := f.source.Metadata(ctx, symbol)
	if err != nil {
		zap.L().Warn("query metadata failed", zap.Error(err), zap.String("symbol", symbol))
		return nil, quotes.Internal(symbol, err)
	}

	fullName, found := metadata.String(quotes.FieldLongName)
	if !found || fullName == "" || fullName == constants.NotAvailable {
		return nil, quotes.NotFound(symbol, "could not retrieve full name for %s", symbol)
	}

	series, err := f.history(ctx, symbol, sources.Period1Year)
	if err != nil {
		return nil, quotes.Internal(symbol, err)
	}

	if series.Empty() {
		zap.L().Debug("1y history empty, try max", zap.String("symbol", symbol))

		series, err = f.history(ctx, symbol, sources.PeriodMax)
		if err != nil {
			return nil, quotes.Internal(symbol, err)
		}
	}

	if series.Empty() {
		return nil, quotes.NotFound(symbol, "no historical data available for %s", symbol)
	}

	record = &quotes.Record{
		FullName:    fullName,
		ClosePrices: series.ClosePrices(constants.DatePattern),
	}

	zap.L().Debug("fetch success",
		zap.String("symbol", symbol),
		zap.String("fullName", fullName),
		zap.Int("rows", len(series)),
		zap.Int("prices", len(record.ClosePrices)))

	return record, nil
}

func (f Fetcher) history(ctx context.Context, symbol string, period sources.Period) (quotes.Series, error) {
	series, err := f.source.History(ctx, symbol, period, sources.Interval1Day)
	if err != nil {
		zap.L().Warn("query history failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("period", string(period)))
		return nil, err
	}

	return series, nil
}
