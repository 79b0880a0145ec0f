package stackexchange

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a request rejected before any network call.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError reports a failure attributed to the Stack Exchange API: a
// transport error, a non-2xx status, an error envelope in the body, or a body
// that could not be decoded. Upstream detail is kept whenever available.
type RemoteError struct {
	StatusCode int    // HTTP status, 0 for transport-level failures
	ErrorID    int    // upstream error_id (e.g. 502 for throttle_violation)
	Name       string // upstream error_name
	Message    string // upstream error_message
	Err        error  // wrapped cause
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		if e.Name != "" {
			return fmt.Sprintf("stack exchange api error %d (%s): %s", e.ErrorID, e.Name, e.Message)
		}
		return "stack exchange api: " + e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("stack exchange api: http %d", e.StatusCode)
	}
	if e.Err != nil {
		return "stack exchange api: " + e.Err.Error()
	}
	return "stack exchange api request failed"
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsInvalidArgument checks if the error is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var invalidErr *InvalidArgumentError
	return errors.As(err, &invalidErr)
}

// IsRemoteError checks if the error is a RemoteError.
func IsRemoteError(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}
