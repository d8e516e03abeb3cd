package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeStatus  ErrorType = "status"
	ErrorTypeSetup   ErrorType = "setup"
	ErrorTypeStorage ErrorType = "storage"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeUnknown ErrorType = "unknown"
)

// Error carries the failure class, the HTTP status when one was received
// (0 otherwise) and the URL involved.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	URL     string
	Err     error
}

func (e *Error) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s error (code %d) on %s: %s", e.Type, e.Code, e.URL, e.Message)
	}
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given type
func New(errType ErrorType, code int, url, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Code:    code,
		URL:     url,
		Err:     cause,
	}
}

// TypeOf returns the ErrorType of err, or ErrorTypeUnknown
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsNetwork reports whether err is a connection-level failure
func IsNetwork(err error) bool {
	return TypeOf(err) == ErrorTypeNetwork
}

// IsStatus reports whether err is a non-success HTTP status
func IsStatus(err error) bool {
	return TypeOf(err) == ErrorTypeStatus
}

// IsSetup reports whether err happened before any network activity
func IsSetup(err error) bool {
	return TypeOf(err) == ErrorTypeSetup
}

// IsStorage reports whether err is a local write failure
func IsStorage(err error) bool {
	return TypeOf(err) == ErrorTypeStorage
}

// StatusCode extracts the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return 0
}

// DescribeStatus returns a hint for a non-success answers page status.
// The crawl stops on all of them alike.
func DescribeStatus(statusCode int) string {
	switch statusCode {
	case http.StatusNoContent:
		return "no more answers"
	case http.StatusNotFound:
		return "unknown username"
	case http.StatusBadRequest:
		return "malformed username"
	case http.StatusTooManyRequests:
		return "rate limited"
	default:
		if statusCode >= 500 {
			return "server error"
		}
		return "unexpected status"
	}
}
