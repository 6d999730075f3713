package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError reports a request that produced no usable reply.
//
// Message is the human-readable description shown to users; Err keeps the
// underlying cause for errors.Is / errors.As.
type TransportError struct {
	Path       string
	StatusCode int
	Message    string
	Err        error

	badBody bool
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// gotResponse reports whether the server answered at all.
func (e *TransportError) gotResponse() bool {
	return e.StatusCode != 0 || e.badBody
}

// Timeout reports whether the request ran out of time.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// newTransportError classifies a client.Do failure.
func newTransportError(path string, err error) *TransportError {
	te := &TransportError{Path: path, Err: err, Message: err.Error()}

	if te.Timeout() {
		te.Message = "timeout"

		return te
	}

	if errors.Is(err, context.Canceled) {
		te.Message = "canceled"

		return te
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		te.Message = opErr.Err.Error()
	}

	return te
}

func newStatusError(path string, status int) *TransportError {
	return &TransportError{
		Path:       path,
		StatusCode: status,
		Message:    fmt.Sprintf("Request failed with status code %d", status),
	}
}

func newDecodeError(path string, err error) *TransportError {
	return &TransportError{
		Path:    path,
		Message: fmt.Sprintf("invalid response body: %v", err),
		Err:     err,
		badBody: true,
	}
}
