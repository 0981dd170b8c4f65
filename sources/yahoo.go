package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/quotes"
	"go.uber.org/zap"
)

var (
	// ErrUnexpectedStatusCode yahoo responded with neither 200 nor 404
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// HTTPClient define outbound http client
//
//go:generate mockgen -package=sources -destination=mock_http_client_test.go -source=yahoo.go HTTPClient
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// YahooFinance yahoo finance source
type YahooFinance struct {
	client    HTTPClient
	baseURL   string
	userAgent string
}

// Option configure yahoo finance source
type Option func(*YahooFinance)

// WithHTTPClient replace outbound http client
func WithHTTPClient(client HTTPClient) Option {
	return func(y *YahooFinance) {
		y.client = client
	}
}

// WithBaseURL replace api base url
func WithBaseURL(baseURL string) Option {
	return func(y *YahooFinance) {
		y.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent replace request user agent
func WithUserAgent(userAgent string) Option {
	return func(y *YahooFinance) {
		y.userAgent = userAgent
	}
}

// WithTimeout set timeout of the default http client
func WithTimeout(timeout time.Duration) Option {
	return func(y *YahooFinance) {
		y.client = &http.Client{Timeout: timeout}
	}
}

// NewYahooFinance create yahoo finance source
func NewYahooFinance(options ...Option) *YahooFinance {
	yahoo := &YahooFinance{
		client:    &http.Client{Timeout: constants.DefaultRequestTimeout},
		baseURL:   constants.DefaultYahooBaseURL,
		userAgent: constants.DefaultUserAgent,
	}

	for _, option := range options {
		option(yahoo)
	}

	return yahoo
}

// Metadata query descriptive fields of symbol
func (y YahooFinance) Metadata(ctx context.Context, symbol string) (quotes.Metadata, error) {
	if symbol == "" {
		return quotes.Metadata{}, nil
	}

	chart, err := y.chart(ctx, symbol, Period5Days, Interval1Day)
	if err != nil {
		if errors.Is(err, quotes.ErrYahooSymbolNotFound) {
			zap.L().Debug("symbol not found", zap.String("symbol", symbol))
			return quotes.Metadata{}, nil
		}
		return nil, err
	}

	return chart.Metadata(), nil
}

// History query daily bars of symbol in period
func (y YahooFinance) History(ctx context.Context, symbol string, period Period, interval Interval) (quotes.Series, error) {
	if symbol == "" {
		return nil, nil
	}

	chart, err := y.chart(ctx, symbol, period, interval)
	if err != nil {
		if errors.Is(err, quotes.ErrYahooSymbolNotFound) {
			zap.L().Debug("symbol not found", zap.String("symbol", symbol), zap.String("period", string(period)))
			return nil, nil
		}
		return nil, err
	}

	return chart.Series(), nil
}

func (y YahooFinance) chartURL(symbol string, period Period, interval Interval) string {
	query := url.Values{}
	query.Set("range", string(period))
	query.Set("interval", string(interval))
	query.Set("includePrePost", "false")

	return fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.baseURL, url.PathEscape(symbol), query.Encode())
}

func (y YahooFinance) chart(ctx context.Context, symbol string, period Period, interval Interval) (*quotes.YahooChart, error) {
	chartURL := y.chartURL(symbol, period, interval)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", y.userAgent)

	response, err := y.client.Do(request)
	if err != nil {
		zap.L().Warn("query yahoo chart failed", zap.Error(err), zap.String("url", chartURL))
		return nil, err
	}
	defer response.Body.Close()

	// yahoo answers unknown symbols with 404 and a chart error body
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNotFound {
		zap.L().Warn("unexpected status code",
			zap.Int("statusCode", response.StatusCode),
			zap.String("url", chartURL))
		return nil, fmt.Errorf("%w %d from yahoo finance", ErrUnexpectedStatusCode, response.StatusCode)
	}

	chart := new(quotes.YahooChart)
	err = sonic.ConfigFastest.NewDecoder(response.Body).Decode(chart)
	if err != nil {
		zap.L().Warn("unmarshal yahoo chart failed", zap.Error(err), zap.String("url", chartURL))
		return nil, fmt.Errorf("decode yahoo chart of %s: %w", symbol, err)
	}

	err = chart.Validate()
	if err != nil {
		if !errors.Is(err, quotes.ErrYahooSymbolNotFound) {
			zap.L().Warn("yahoo chart validate failed", zap.Error(err), zap.String("url", chartURL))
		}
		return nil, err
	}

	zap.L().Debug("query yahoo chart success",
		zap.String("symbol", symbol),
		zap.String("period", string(period)),
		zap.Int("rows", len(chart.Chart.Result[0].Timestamp)))

	return chart, nil
}
