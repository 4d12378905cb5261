package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"leaguehub/pkg/messages"
)

// ConfigurationError is returned when the client can't authenticate, before any network call.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// UpstreamError is a non success answer from the upstream, status and body kept verbatim.
type UpstreamError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}

// Details returns the body as JSON when it's valid JSON, else as a string.
func (e *UpstreamError) Details() any {
	if json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}

// TransportError is a network level failure: DNS, connection, timeout or an unreadable body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf(messages.RequestFailedMsg, e.URL) + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsStatus reports if err is an UpstreamError with one of the given status codes.
func IsStatus(err error, codes ...int) bool {
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		return false
	}

	for _, code := range codes {
		if upstreamErr.StatusCode == code {
			return true
		}
	}
	return false
}
