package failure

import (
	"errors"
	"net/http"
)

const (
	MessageServerError  = "The server could not complete the request, please retry"
	MessageNetworkError = "Unable to reach the server, please retry"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var SessionExpiredError = &Failure{Code: http.StatusUnauthorized, Message: "Session has expired, please sign in again"}
var SubmissionInFlightError = &Failure{Code: http.StatusConflict, Message: "A submission is already in progress"}
var DeletionInFlightError = &Failure{Code: http.StatusConflict, Message: "A deletion is already in progress"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any, to errors.Is and errors.As.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a Failure carrying a rejection message exactly as the server phrased it.
func Validation(code int, msg string) error {
	if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
		code = http.StatusBadRequest
	}

	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// ServerError returns a retryable Failure for 5xx answers. The cause is kept for logging only.
func ServerError(code int, cause error) error {
	if code < http.StatusInternalServerError {
		code = http.StatusInternalServerError
	}

	return &Failure{
		Code:    code,
		Message: MessageServerError,
		cause:   cause,
	}
}

// Network returns a retryable Failure for transport errors.
func Network(cause error) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: MessageNetworkError,
		cause:   cause,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsUnauthorized(err error) bool {
	return err != nil && GetCode(err) == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}

// IsValidation reports whether err is a client-side rejection other than auth or not-found.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}

	code := GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError &&
		code != http.StatusUnauthorized && code != http.StatusNotFound
}

// IsRetryable reports whether a manual retry of the same call may succeed.
func IsRetryable(err error) bool {
	return err != nil && GetCode(err) >= http.StatusInternalServerError
}
