package constants

import "time"

const (
	// Title service title
	Title = "Stock Market API"
	// Description service description
	Description = "An API to fetch stock market data using Yahoo Finance"
	// Version service version
	Version = "v1.0.0"

	// DatePattern define close price date key pattern
	DatePattern = "2006-01-02"
	// NotAvailable define the placeholder provider returns for missing fields
	NotAvailable = "N/A"

	// DefaultHost define default listen host
	DefaultHost = "0.0.0.0"
	// DefaultPort define default listen port
	DefaultPort = 8000
	// DefaultYahooBaseURL define default yahoo finance api base url
	DefaultYahooBaseURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent define default user agent of outbound requests
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	// DefaultRequestTimeout define default outbound request timeout
	DefaultRequestTimeout = time.Second * 15
	// ShutdownTimeout define graceful shutdown timeout
	ShutdownTimeout = time.Second * 5
	// SlowRequestThreshold requests slower than this are logged as warnings
	SlowRequestThreshold = time.Second * 10
)
