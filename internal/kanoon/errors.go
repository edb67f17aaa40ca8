package kanoon

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying API call failures. Callers distinguish them
// with errors.Is for user-facing messaging.
var (
	// ErrAuth indicates a rejected or missing API token (HTTP 401/403).
	ErrAuth = errors.New("api authentication failed")
	// ErrRateLimited indicates HTTP 429 persisted past the retry ceiling.
	ErrRateLimited = errors.New("api rate limit exhausted")
	// ErrUpstream indicates any other non-2xx response.
	ErrUpstream = errors.New("api request failed")
	// ErrNetwork indicates a network-level failure past the retry ceiling.
	ErrNetwork = errors.New("network failure")
)

// StatusError carries the HTTP status alongside the classified sentinel.
type StatusError struct {
	Endpoint string
	Status   int
	kind     error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d", e.kind.Error(), e.Endpoint, e.Status)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StatusError) Unwrap() error {
	return e.kind
}

func classifyStatus(endpoint string, status int) *StatusError {
	kind := ErrUpstream
	switch {
	case status == 401 || status == 403:
		kind = ErrAuth
	case status == 429:
		kind = ErrRateLimited
	}
	return &StatusError{Endpoint: endpoint, Status: status, kind: kind}
}
