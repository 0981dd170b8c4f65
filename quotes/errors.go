package quotes

import (
	"errors"
	"fmt"
)

// ErrorKind define failure category of a quote request
type ErrorKind int

const (
	// KindNotFound symbol unknown or has no usable data
	KindNotFound ErrorKind = iota + 1
	// KindInternal any other failure
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error define quote request failure
type Error struct {
	Kind    ErrorKind
	Ticker  string
	Message string
	Err     error
}

// NotFound create not found error
func NotFound(ticker, format string, args ...any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Ticker:  ticker,
		Message: fmt.Sprintf(format, args...),
	}
}

// Internal create internal error carrying the cause message
func Internal(ticker string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Ticker:  ticker,
		Message: err.Error(),
		Err:     err,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classify error, unclassified errors are internal
func KindOf(err error) ErrorKind {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}

	return KindInternal
}
