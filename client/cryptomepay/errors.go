package cryptomepay

import (
	"errors"
	"fmt"
	"net"
)

// SDKError is the base of the client's error taxonomy. RequestID is
// set when the gateway attributed one to the failed exchange.
type SDKError struct {
	Message   string
	RequestID string
}

func (e *SDKError) Error() string {
	return "cryptomepay: " + e.Message
}

// NetworkError reports a transport-level failure: the request never
// produced an HTTP response. It is surfaced immediately and never
// retried.
type NetworkError struct {
	SDKError
	// Code classifies the failure: "timeout", a net.OpError op such as
	// "dial" or "read", or "transport".
	Code string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cryptomepay: network failure (%s): %s", e.Code, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a delivered response whose body is not valid JSON.
type APIError struct {
	SDKError
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cryptomepay: invalid gateway response (status %d): %s", e.StatusCode, e.Message)
}

func newNetworkError(err error) *NetworkError {
	code := "transport"
	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &netErr) && netErr.Timeout() {
		code = "timeout"
	} else if errors.As(err, &opErr) {
		code = opErr.Op
	}
	return &NetworkError{
		SDKError: SDKError{Message: err.Error()},
		Code:     code,
		Err:      err,
	}
}
