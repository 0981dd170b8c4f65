package sources

import (
	"context"

	"github.com/nzai/stockapi/quotes"
)

// Period define history range
type Period string

// Interval define history bar size
type Interval string

const (
	Period5Days Period = "5d"
	Period1Year Period = "1y"
	PeriodMax   Period = "max"

	Interval1Day Interval = "1d"
)

// Source define market data provider
//
//go:generate mockgen -package=fetcher -destination=../fetcher/mock_source_test.go -source=source.go Source
type Source interface {
	// Metadata query descriptive fields of symbol
	Metadata(ctx context.Context, symbol string) (quotes.Metadata, error)
	// History query daily bars of symbol in period
	History(ctx context.Context, symbol string, period Period, interval Interval) (quotes.Series, error)
}
