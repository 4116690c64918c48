package remote

import "errors"

var (
	// ErrServerUnavailable indicates the task server is unreachable.
	ErrServerUnavailable = errors.New("task server unavailable")

	// ErrTimeout indicates a request exceeded the configured timeout.
	ErrTimeout = errors.New("task server request timed out")

	// ErrNotFound indicates the server has no such record.
	ErrNotFound = errors.New("record not found on server")

	// ErrRejected indicates the server refused the request as invalid.
	ErrRejected = errors.New("request rejected by server")

	// ErrUnexpectedStatus indicates any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response from task server")
)
