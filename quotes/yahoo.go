package quotes

import (
	"errors"
	"time"
)

var (
	// YahooNotFoundCode define errors raised by yahoo finace on code not found
	YahooNotFoundCode = "Not Found"
	// ErrYahooSymbolNotFound define errors raised by yahoo finace on symblo not found
	ErrYahooSymbolNotFound = errors.New("symbol not found")
)

// YahooChart define yahoo finance v8 chart response structure
type YahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency             string `json:"currency"`
				Symbol               string `json:"symbol"`
				ExchangeName         string `json:"exchangeName"`
				InstrumentType       string `json:"instrumentType"`
				LongName             string `json:"longName"`
				ShortName            string `json:"shortName"`
				GMTOffset            int    `json:"gmtoffset"`
				Timezone             string `json:"timezone"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
				DataGranularity      string `json:"dataGranularity"`
				Range                string `json:"range"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quotes []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Err *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Validate validate response is valid
func (q YahooChart) Validate() error {
	// yahoo error
	if q.Chart.Err != nil {
		if q.Chart.Err.Code == YahooNotFoundCode {
			return ErrYahooSymbolNotFound
		}
		return errors.New(q.Chart.Err.Description)
	}

	if len(q.Chart.Result) == 0 {
		return errors.New("chart.result is null")
	}

	result := q.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		// listed but nothing traded in range
		return nil
	}

	if len(result.Indicators.Quotes) == 0 {
		return errors.New("chart.result[0].indicators.quote is null")
	}

	// quotes count mismatch
	if len(result.Timestamp) != len(result.Indicators.Quotes[0].Close) {
		return errors.New("quotes count dismatch")
	}

	return nil
}

// Metadata extract descriptive fields, call after Validate
func (q YahooChart) Metadata() Metadata {
	meta := q.Chart.Result[0].Meta

	metadata := make(Metadata)
	metadata.Set(FieldLongName, meta.LongName)
	metadata.Set(FieldShortName, meta.ShortName)
	metadata.Set(FieldCurrency, meta.Currency)
	metadata.Set(FieldExchangeName, meta.ExchangeName)
	metadata.Set(FieldInstrumentType, meta.InstrumentType)
	metadata.Set(FieldTimezone, meta.ExchangeTimezoneName)

	return metadata
}

// Location return exchange location of quote timestamps
func (q YahooChart) Location() *time.Location {
	meta := q.Chart.Result[0].Meta

	if meta.ExchangeTimezoneName != "" {
		location, err := time.LoadLocation(meta.ExchangeTimezoneName)
		if err == nil {
			return location
		}
	}

	return time.FixedZone(meta.Timezone, meta.GMTOffset)
}

// Series convert response to daily series, call after Validate
func (q YahooChart) Series() Series {
	result := q.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return nil
	}

	location := q.Location()
	closes := result.Indicators.Quotes[0].Close

	series := make(Series, 0, len(result.Timestamp))
	for index, ts := range result.Timestamp {
		series = append(series, Bar{
			Date:  time.Unix(ts, 0).In(location),
			Close: closes[index],
		})
	}

	return series
}
