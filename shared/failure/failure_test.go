package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"staytrack/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "SessionExpiredError",
			failure: failure.SessionExpiredError,
			code:    http.StatusUnauthorized,
			message: "Session has expired, please sign in again",
		},
		{
			name:    "SubmissionInFlightError",
			failure: failure.SubmissionInFlightError,
			code:    http.StatusConflict,
			message: "A submission is already in progress",
		},
		{
			name:    "DeletionInFlightError",
			failure: failure.DeletionInFlightError,
			code:    http.StatusConflict,
			message: "A deletion is already in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}

	cause := errors.New("validation failed")
	result := failure.BadRequest(cause)

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}
	if f.Code != http.StatusBadRequest || f.Message != "validation failed" {
		t.Errorf("unexpected failure %+v", f)
	}
	if !errors.Is(result, cause) {
		t.Error("expected failure to unwrap to its cause")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{name: "bad request keeps code", code: http.StatusBadRequest, expected: http.StatusBadRequest},
		{name: "unprocessable keeps code", code: http.StatusUnprocessableEntity, expected: http.StatusUnprocessableEntity},
		{name: "server code is coerced", code: http.StatusBadGateway, expected: http.StatusBadRequest},
		{name: "success code is coerced", code: http.StatusOK, expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.Validation(tt.code, "Email already exists")

			if failure.GetCode(err) != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, failure.GetCode(err))
			}
			if err.Error() != "Email already exists" {
				t.Errorf("expected server message verbatim, got %s", err.Error())
			}
		})
	}
}

func TestServerErrorAndNetwork(t *testing.T) {
	cause := errors.New("connection reset by peer")

	serverErr := failure.ServerError(http.StatusBadGateway, cause)
	if serverErr.Error() != failure.MessageServerError {
		t.Errorf("expected generic message, got %s", serverErr.Error())
	}
	if failure.GetCode(serverErr) != http.StatusBadGateway {
		t.Errorf("expected %d, got %d", http.StatusBadGateway, failure.GetCode(serverErr))
	}
	if !errors.Is(serverErr, cause) {
		t.Error("expected server error to keep its cause")
	}

	if failure.GetCode(failure.ServerError(0, cause)) != http.StatusInternalServerError {
		t.Error("expected zero code to become 500")
	}

	netErr := failure.Network(cause)
	if netErr.Error() != failure.MessageNetworkError {
		t.Errorf("expected generic network message, got %s", netErr.Error())
	}
	if !failure.IsRetryable(netErr) {
		t.Error("expected network failure to be retryable")
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusUnauthorized {
			t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
		}
		if f.Message != "token expired" {
			t.Errorf("expected message to be 'token expired', got %s", f.Message)
		}
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("guest not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
		if f.Message != "guest not found" {
			t.Errorf("expected message to be 'guest not found', got %s", f.Message)
		}
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		unauthorized bool
		notFound     bool
		validation   bool
		retryable    bool
	}{
		{name: "nil", err: nil},
		{name: "unauthorized", err: failure.Unauthorized("expired"), unauthorized: true},
		{name: "not found", err: failure.NotFound("room not found"), notFound: true},
		{name: "validation", err: failure.Validation(http.StatusBadRequest, "bad"), validation: true},
		{name: "conflict", err: failure.Conflict("busy"), validation: true},
		{name: "server", err: failure.ServerError(http.StatusInternalServerError, nil), retryable: true},
		{name: "plain error", err: errors.New("boom"), retryable: true},
		{name: "wrapped not found", err: fmt.Errorf("update: %w", failure.NotFound("gone")), notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.IsUnauthorized(tt.err); got != tt.unauthorized {
				t.Errorf("IsUnauthorized = %v, want %v", got, tt.unauthorized)
			}
			if got := failure.IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, tt.notFound)
			}
			if got := failure.IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation = %v, want %v", got, tt.validation)
			}
			if got := failure.IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.BadRequestFromString("test")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
