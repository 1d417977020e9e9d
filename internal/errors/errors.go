// Package errors defines the stable error codes proofscan reports.
package errors

import "fmt"

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ReportNotFound indicates no report files were found under the scan root
	ReportNotFound ErrorCode = "REPORT_NOT_FOUND"
	// ReportMalformed indicates a report file could not be parsed or validated
	ReportMalformed ErrorCode = "REPORT_MALFORMED"
	// CalibrationInvalid indicates the calibration file is unreadable or inconsistent
	CalibrationInvalid ErrorCode = "CALIBRATION_INVALID"
	// HistoryUnavailable indicates the run-history database could not be opened
	HistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error is a proofscan error with a stable code, a message, and an optional
// underlying cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error
}

// New creates a coded error.
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf returns the stable code of err, or InternalError for uncoded errors.
func CodeOf(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return InternalError
}
