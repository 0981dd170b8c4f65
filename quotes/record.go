package quotes

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/nzai/bio"
	"go.uber.org/zap"
)

// maxPreallocPrices caps map preallocation from untrusted counts
const maxPreallocPrices = 1 << 16

// Record define single ticker response
type Record struct {
	FullName    string             `json:"full_name"`
	ClosePrices map[string]float64 `json:"close_prices"`
}

// Dates return sorted close price dates
func (r Record) Dates() []string {
	dates := make([]string, 0, len(r.ClosePrices))
	for date := range r.ClosePrices {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	return dates
}

// Encode encode record to io.Writer
func (r Record) Encode(w io.Writer) error {
	bw := bio.NewBinaryWriter(w)

	_, err := bw.String(r.FullName)
	if err != nil {
		zap.L().Error("encode record full name failed", zap.Error(err), zap.String("fullName", r.FullName))
		return err
	}

	_, err = bw.Int(len(r.ClosePrices))
	if err != nil {
		zap.L().Error("encode close prices count failed", zap.Error(err), zap.Int("count", len(r.ClosePrices)))
		return err
	}

	for _, date := range r.Dates() {
		_, err = bw.String(date)
		if err != nil {
			zap.L().Error("encode close price date failed", zap.Error(err), zap.String("date", date))
			return err
		}

		_, err = bw.UInt64(math.Float64bits(r.ClosePrices[date]))
		if err != nil {
			zap.L().Error("encode close price failed", zap.Error(err), zap.String("date", date))
			return err
		}
	}

	return nil
}

// Decode decode record from io.Reader
func (r *Record) Decode(rd io.Reader) error {
	br := bio.NewBinaryReader(rd)

	fullName, err := br.String()
	if err != nil {
		zap.L().Error("decode record full name failed", zap.Error(err))
		return err
	}

	count, err := br.Int()
	if err != nil {
		zap.L().Error("decode close prices count failed", zap.Error(err))
		return err
	}

	if count < 0 {
		zap.L().Error("close prices count invalid", zap.Int("count", count))
		return fmt.Errorf("close prices count %d invalid", count)
	}

	prices := make(map[string]float64, min(count, maxPreallocPrices))
	for index := 0; index < count; index++ {
		date, err := br.String()
		if err != nil {
			zap.L().Error("decode close price date failed", zap.Error(err), zap.Int("index", index))
			return err
		}

		bits, err := br.UInt64()
		if err != nil {
			zap.L().Error("decode close price failed", zap.Error(err), zap.String("date", date))
			return err
		}

		prices[date] = math.Float64frombits(bits)
	}

	r.FullName = fullName
	r.ClosePrices = prices

	return nil
}

// Equal check record is equal
func (r Record) Equal(s Record) error {
	if r.FullName != s.FullName {
		return fmt.Errorf("full name %s is different from %s", r.FullName, s.FullName)
	}

	if len(r.ClosePrices) != len(s.ClosePrices) {
		return fmt.Errorf("close prices count %d is different from %d", len(r.ClosePrices), len(s.ClosePrices))
	}

	for date, price := range r.ClosePrices {
		other, found := s.ClosePrices[date]
		if !found {
			return fmt.Errorf("close price of %s not found", date)
		}

		if price != other {
			return fmt.Errorf("close price of %s %f is different from %f", date, price, other)
		}
	}

	return nil
}
