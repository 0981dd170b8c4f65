package quotes

import (
	"math"
	"time"
)

// Bar define one row of daily history
type Bar struct {
	Date  time.Time
	Close *float64
}

// Series define ordered daily history
type Series []Bar

// Empty check series has no rows
func (s Series) Empty() bool {
	return len(s) == 0
}

// ClosePrices return close prices keyed by date, missing values dropped
func (s Series) ClosePrices(pattern string) map[string]float64 {
	prices := make(map[string]float64, len(s))
	for _, bar := range s {
		if bar.Close == nil {
			continue
		}

		price := *bar.Close
		if math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}

		prices[bar.Date.Format(pattern)] = price
	}

	return prices
}
