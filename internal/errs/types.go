package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError is returned when a referenced entity does not exist upstream.
type NotFoundError struct {
	ErrorMessage
}

// ValidationError is malformed or out-of-range caller input. Code is the wire
// error code written to the response body.
type ValidationError struct {
	ErrorMessage
	Code string
}

// UpstreamError is a non-success response (or unreachability) from the data
// facade or the export service. Status and Body are the upstream's, kept for
// logging; they are never written to the caller verbatim.
type UpstreamError struct {
	ErrorMessage
	Service string
	Status  int
	Body    string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
		Code:         "invalid_input",
	}
}

// NewInvalidEntityIDError covers every id-taking route: non-numeric, zero and
// negative ids all map to the same code before any upstream call is made.
func NewInvalidEntityIDError() *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: "Invalid entity ID provided."},
		Code:         "INVALID_ENTITY_ID",
	}
}

func NewUpstreamError(service string, status int, body string) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s request failed: %d", service, status)},
		Service:      service,
		Status:       status,
		Body:         body,
	}
}

// NewUnreachableError wraps a transport-level failure talking to an external
// collaborator, before any status code exists.
func NewUnreachableError(service string, err error) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s unreachable: %v", service, err)},
		Service:      service,
	}
}
