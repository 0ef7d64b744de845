package spread

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-checkable error category.
type Code string

const (
	CodeRemoteUnavailable Code = "remote_unavailable"
	CodeInsufficientData  Code = "insufficient_data"
	CodeInvalidAlertType  Code = "invalid_alert_type"
	CodeInvalidValue      Code = "invalid_value"
	CodeAlertNotFound     Code = "alert_not_found"
	CodeInternal          Code = "internal"
)

// Error carries an error category, a human-readable message, and, for
// remote failures, the upstream HTTP status when known.
type Error struct {
	Code           Code
	Message        string
	UpstreamStatus int
	cause          error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the error to the status code the caller reports.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeRemoteUnavailable:
		if e.UpstreamStatus > 0 {
			return e.UpstreamStatus
		}
		return http.StatusInternalServerError
	case CodeInsufficientData, CodeInvalidAlertType, CodeInvalidValue, CodeAlertNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RemoteUnavailable reports a failed call to the exchange API. Pass zero
// for the status when the failure happened before a response arrived.
func RemoteUnavailable(status int, cause error) *Error {
	return &Error{
		Code:           CodeRemoteUnavailable,
		Message:        "External API request failed.",
		UpstreamStatus: status,
		cause:          cause,
	}
}

// InsufficientData reports an order book with an empty ask or bid side.
func InsufficientData() *Error {
	return &Error{Code: CodeInsufficientData, Message: "Insufficient data for spread calculation."}
}

// InvalidAlertType reports an alert type outside {GREATER, LESS}.
func InvalidAlertType(value string) *Error {
	return &Error{Code: CodeInvalidAlertType, Message: "Type of Alert Invalid", cause: fmt.Errorf("got %q", value)}
}

// InvalidValue reports a threshold that is not a plain signed decimal.
func InvalidValue(value string) *Error {
	return &Error{Code: CodeInvalidValue, Message: "Invalid request: value need to be a number", cause: fmt.Errorf("got %q", value)}
}

// AlertNotFound reports an evaluation against an alert that was never set.
func AlertNotFound() *Error {
	return &Error{Code: CodeAlertNotFound, Message: "Alert not found"}
}

// Internal wraps an unexpected failure behind a generic message so callers
// never see internal detail.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "Internal server error.", cause: cause}
}

// Classify returns err as *Error, degrading anything unclassified to an
// internal error.
func Classify(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
