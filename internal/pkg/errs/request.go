package errs

import (
	"errors"
	"net/http"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("resource not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Kind classifies a RequestError for the boundary renderer.
type Kind int

const (
	// KindUnknown is the zero value and is never produced by the constructors.
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindMethodNotAllowed
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindNotFound:
		return "NotFound"
	case KindMethodNotAllowed:
		return "MethodNotAllowed"
	case KindUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// HTTPStatus maps the kind to its response status code.
// KindUnknown maps to 500.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RequestError is the failure a pipeline stage hands back to short-circuit a request.
// Message is client-facing and rendered verbatim.
type RequestError struct {
	Kind    Kind
	Message string
	Cause   error
}

func NewValidationError(message string) *RequestError {
	return &RequestError{Kind: KindValidation, Message: message}
}

func NewValidationErrorWithCause(message string, cause error) *RequestError {
	return &RequestError{Kind: KindValidation, Message: message, Cause: cause}
}

func NewNotFoundError(message string) *RequestError {
	return &RequestError{Kind: KindNotFound, Message: message}
}

func NewNotFoundErrorWithCause(message string, cause error) *RequestError {
	return &RequestError{Kind: KindNotFound, Message: message, Cause: cause}
}

func NewMethodNotAllowedError(message string) *RequestError {
	return &RequestError{Kind: KindMethodNotAllowed, Message: message}
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return e.Message + " (cause: " + e.Cause.Error() + ")"
	}
	return e.Message
}

// Unwrap returns the sentinel matching the error kind.
func (e *RequestError) Unwrap() error {
	switch e.Kind {
	case KindValidation:
		return ErrValidationFailed
	case KindNotFound:
		return ErrNotFound
	case KindMethodNotAllowed:
		return ErrMethodNotAllowed
	case KindUnknown:
		return nil
	default:
		return nil
	}
}

// AsRequestError extracts a RequestError from err's chain.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
