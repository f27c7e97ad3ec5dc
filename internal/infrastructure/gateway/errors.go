package gateway

import (
	"fmt"
	"net/http"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// RequestFailedError is returned for any non-2xx response. Message carries the
// server's own message when it sent one, otherwise a per-operation fallback.
type RequestFailedError struct {
	Op      string
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
}

// Is matches domain.ErrRequestFailed, and domain.ErrNotFound for 404 responses.
func (e *RequestFailedError) Is(target error) bool {
	switch target {
	case domain.ErrRequestFailed:
		return true
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// NetworkError is returned when no response was received at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == domain.ErrNetwork }
