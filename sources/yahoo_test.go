package sources

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nzai/stockapi/quotes"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const appleChart = `{
  "chart": {
    "result": [{
      "meta": {
        "currency": "USD",
        "symbol": "AAPL",
        "exchangeName": "NMS",
        "instrumentType": "EQUITY",
        "longName": "Apple Inc.",
        "shortName": "Apple Inc.",
        "gmtoffset": -18000,
        "timezone": "EST",
        "exchangeTimezoneName": "America/New_York",
        "dataGranularity": "1d",
        "range": "1y"
      },
      "timestamp": [1704205800, 1704292200, 1704378600],
      "indicators": {"quote": [{"close": [185.63999938964844, null, 181.91000366210938]}]}
    }],
    "error": null
  }
}`

const emptyChart = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "NEWCO", "gmtoffset": 0, "timezone": "UTC", "exchangeTimezoneName": "UTC"},
      "indicators": {"quote": [{}]}
    }],
    "error": null
  }
}`

const notFoundChart = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

func newChartServer(t *testing.T, handler http.HandlerFunc) *YahooFinance {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewYahooFinance(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
}

func TestYahooFinanceMetadata(t *testing.T) {
	t.Parallel()

	var gotPath, gotRange, gotAgent string
	yahoo := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		gotAgent = r.Header.Get("User-Agent")
		io.WriteString(w, appleChart)
	})

	metadata, err := yahoo.Metadata(context.Background(), "AAPL")
	require.NoError(t, err)

	name, found := metadata.String(quotes.FieldLongName)
	require.True(t, found)
	require.Equal(t, "Apple Inc.", name)

	currency, _ := metadata.String(quotes.FieldCurrency)
	require.Equal(t, "USD", currency)

	require.Equal(t, "/v8/finance/chart/AAPL", gotPath)
	require.Equal(t, string(Period5Days), gotRange)
	require.NotEmpty(t, gotAgent)
}

func TestYahooFinanceHistory(t *testing.T) {
	t.Parallel()

	var gotRange, gotInterval string
	yahoo := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.URL.Query().Get("range")
		gotInterval = r.URL.Query().Get("interval")
		io.WriteString(w, appleChart)
	})

	series, err := yahoo.History(context.Background(), "AAPL", Period1Year, Interval1Day)
	require.NoError(t, err)
	require.Len(t, series, 3)
	require.Equal(t, "1y", gotRange)
	require.Equal(t, "1d", gotInterval)

	require.Equal(t, map[string]float64{
		"2024-01-02": 185.63999938964844,
		"2024-01-04": 181.91000366210938,
	}, series.ClosePrices("2006-01-02"))
}

func TestYahooFinanceHistoryEmpty(t *testing.T) {
	t.Parallel()

	yahoo := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, emptyChart)
	})

	series, err := yahoo.History(context.Background(), "NEWCO", Period1Year, Interval1Day)
	require.NoError(t, err)
	require.True(t, series.Empty())
}

func TestYahooFinanceNotFound(t *testing.T) {
	t.Parallel()

	yahoo := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, notFoundChart)
	})

	metadata, err := yahoo.Metadata(context.Background(), "ZZZZ")
	require.NoError(t, err)
	_, found := metadata.String(quotes.FieldLongName)
	require.False(t, found)

	series, err := yahoo.History(context.Background(), "ZZZZ", PeriodMax, Interval1Day)
	require.NoError(t, err)
	require.True(t, series.Empty())
}

func TestYahooFinanceUnexpectedStatus(t *testing.T) {
	t.Parallel()

	yahoo := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := yahoo.History(context.Background(), "AAPL", Period1Year, Interval1Day)
	require.ErrorIs(t, err, ErrUnexpectedStatusCode)
	require.ErrorContains(t, err, "429")
}

func TestYahooFinanceMalformed(t *testing.T) {
	t.Parallel()

	yahoo := newChartServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"chart":{"result":[{"meta":{},"timestamp":[1,2],"indicators":{"quote":[{"close":[1.0]}]}}]}}`)
	})

	_, err := yahoo.History(context.Background(), "AAPL", Period1Year, Interval1Day)
	require.ErrorContains(t, err, "dismatch")
}

func TestYahooFinanceTransportError(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	client := NewMockHTTPClient(ctrl)
	client.EXPECT().
		Do(gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused")).
		Times(1)

	yahoo := NewYahooFinance(WithHTTPClient(client))

	// Act
	_, err := yahoo.Metadata(context.Background(), "AAPL")

	// Assert
	require.ErrorContains(t, err, "connection refused")
}

func TestYahooFinanceEmptySymbol(t *testing.T) {
	t.Parallel()

	// no outbound call expected
	ctrl := gomock.NewController(t)
	yahoo := NewYahooFinance(WithHTTPClient(NewMockHTTPClient(ctrl)))

	metadata, err := yahoo.Metadata(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, metadata)

	series, err := yahoo.History(context.Background(), "", Period1Year, Interval1Day)
	require.NoError(t, err)
	require.True(t, series.Empty())
}

func TestYahooFinanceChartURL(t *testing.T) {
	t.Parallel()

	yahoo := NewYahooFinance(WithBaseURL("https://example.com/"))
	chartURL := yahoo.chartURL("BRK-B", PeriodMax, Interval1Day)

	require.True(t, strings.HasPrefix(chartURL, "https://example.com/v8/finance/chart/BRK-B?"))
	require.Contains(t, chartURL, "range=max")
	require.Contains(t, chartURL, "interval=1d")
}
