package gateway

import (
	"errors"
	"fmt"
)

// maxErrorBody caps how much of a failed response body is kept for logs.
const maxErrorBody = 512

// TransportError is the only failure kind the gateway recognizes: the request
// could not be sent or the server answered with a non-2xx status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s %s: server returned status %d: %s", e.Op, e.URL, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s %s: server returned status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

var (
	// ErrEmptyID is returned for operations that need a customer ID.
	ErrEmptyID = errors.New("customer id is empty")
	// ErrSyncFailed is returned when the server reports a failed mail sync.
	ErrSyncFailed = errors.New("mail sync failed")
)
