package fetcher

import (
	"context"
	"strings"

	"github.com/nzai/stockapi/quotes"
	"go.uber.org/zap"
)

// Aggregator fetch comma separated tickers one by one
type Aggregator struct {
	quoter Quoter
}

// NewAggregator create aggregator over quoter
func NewAggregator(quoter Quoter) *Aggregator {
	return &Aggregator{quoter: quoter}
}

// ParseTickers split, trim and upper case comma separated tickers
func ParseTickers(tickers string) []string {
	parts := strings.Split(tickers, ",")

	symbols := make([]string, 0, len(parts))
	for _, part := range parts {
		symbols = append(symbols, strings.ToUpper(strings.TrimSpace(part)))
	}

	return symbols
}

// FetchMany fetch every ticker in order, failures are recorded per symbol
func (a Aggregator) FetchMany(ctx context.Context, tickers string) quotes.Batch {
	symbols := ParseTickers(tickers)

	batch := make(quotes.Batch, len(symbols))
	for _, symbol := range symbols {
		record, err := a.quoter.Fetch(ctx, symbol)
		if err == nil {
			batch[symbol] = quotes.Entry{Record: record}
			continue
		}

		switch quotes.KindOf(err) {
		case quotes.KindNotFound:
			zap.L().Info("symbol not found", zap.String("symbol", symbol), zap.String("reason", err.Error()))
		default:
			zap.L().Warn("fetch symbol failed", zap.Error(err), zap.String("symbol", symbol))
		}

		batch[symbol] = quotes.Entry{Error: err.Error()}
	}

	return batch
}
