package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeScheme indicates a request URL scheme the engine cannot
	// dispatch (anything other than http or https).
	ErrCodeScheme ErrorCode = iota
	// ErrCodeHeader indicates a header name or value one representation
	// accepts and the other rejects.
	ErrCodeHeader
	// ErrCodeBodyRead indicates a failure reading the caller-supplied
	// request body stream.
	ErrCodeBodyRead
	// ErrCodeGateway indicates a failure reading the response body from
	// the network.
	ErrCodeGateway
	// ErrCodeConnection indicates an engine transport failure (DNS,
	// connect, TLS handshake, protocol violation).
	ErrCodeConnection
	// ErrCodeTimeout indicates the context was cancelled or its deadline
	// expired during the exchange.
	ErrCodeTimeout
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeScheme:
		return "scheme"
	case ErrCodeHeader:
		return "header"
	case ErrCodeBodyRead:
		return "body_read"
	case ErrCodeGateway:
		return "gateway"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is the unified error type surfaced by Send. It carries an
// HTTP-equivalent status code for errors that map naturally to one
// (scheme errors are 400-class, gateway errors 502-class) and a Retryable
// hint; retry policy itself is a caller concern.
type Error struct {
	// StatusCode is the HTTP-equivalent status code, 0 when none applies.
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether retrying could plausibly succeed.
	Retryable bool
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewSchemeError reports a request URL scheme the engine cannot dispatch.
func NewSchemeError(scheme string) *Error {
	return &Error{
		StatusCode: 400,
		Code:       ErrCodeScheme,
		Message:    fmt.Sprintf("unsupported scheme %q (want http or https)", scheme),
		Retryable:  false,
	}
}

// NewHeaderError reports a header the native representation rejected.
func NewHeaderError(name string, err error) *Error {
	return &Error{
		Code:      ErrCodeHeader,
		Message:   fmt.Sprintf("invalid header %q", name),
		Retryable: false,
		Err:       err,
	}
}

// NewBodyReadError reports a failure draining the request body.
func NewBodyReadError(err error) *Error {
	return &Error{
		Code:      ErrCodeBodyRead,
		Message:   err.Error(),
		Retryable: false,
		Err:       err,
	}
}

// NewGatewayError reports a failure reading the response body.
func NewGatewayError(err error) *Error {
	return &Error{
		StatusCode: 502,
		Code:       ErrCodeGateway,
		Message:    "unable to read response body",
		Retryable:  true,
		Err:        err,
	}
}

// NewConnectionError reports an engine transport failure.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:      ErrCodeConnection,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewTimeoutError reports a cancelled or expired exchange.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// IsScheme checks if an error is a scheme error.
func IsScheme(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeScheme
}

// IsHeader checks if an error is a header format error.
func IsHeader(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeHeader
}

// IsBodyRead checks if an error is a request body read error.
func IsBodyRead(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeBodyRead
}

// IsGateway checks if an error is a response body read error.
func IsGateway(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeGateway
}

// IsConnection checks if an error is a transport error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
