package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode is the machine readable error code returned to API clients
type ErrorCode string

const (
	ErrorCode_INTERNAL                   ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT           ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_ID                 ErrorCode = "INVALID_ID"
	ErrorCode_VALIDATION_FAILED          ErrorCode = "VALIDATION_FAILED"
	ErrorCode_INVALID_PAYLOAD            ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND                  ErrorCode = "NOT_FOUND"
	ErrorCode_TRANSCRIPT_EMPTY           ErrorCode = "TRANSCRIPT_EMPTY"
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = "INTEGRATION_STORAGE_FAILED"
)

// String returns the code as a plain string
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the application error type rendered by the HTTP layer
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// WithDetails merges a set of details into the error
func (e AppError) WithDetails(details map[string]string) AppError {
	for k, v := range details {
		e = e.WithDetail(k, v)
	}
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// ErrInvalidID is returned when a path id is not numeric
func ErrInvalidID(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ID,
		Message:  fmt.Sprintf("Invalid %s ID", resource),
	}
}

// ErrValidation carries field level validation failures
func ErrValidation(resource string, fields map[string]string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION_FAILED,
		Message:  fmt.Sprintf("Invalid %s data", resource),
	}.WithDetails(fields)
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Analysis Errors
func ErrTranscriptEmpty() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_EMPTY,
		Message:  "Transcript is empty",
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}
