package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeNetwork          ErrorType = "network"
	ErrorTypeTimeout          ErrorType = "timeout"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeInvalidImage     ErrorType = "invalid_image"
	ErrorTypeOCRUnavailable   ErrorType = "ocr_unavailable"
	ErrorTypeNoTextExtracted  ErrorType = "no_text_extracted"
	ErrorTypeModelUnavailable ErrorType = "model_unavailable"
	ErrorTypeAnalyzerFailure  ErrorType = "analyzer_failure"
	ErrorTypeEnsembleFailure  ErrorType = "ensemble_failure"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"status_code"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewNetworkError creates a new network error
func NewNetworkError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeNetwork,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    message,
		StatusCode: http.StatusGatewayTimeout,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInvalidImageError signals malformed or undecodable image bytes
func NewInvalidImageError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidImage,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewOCRUnavailableError signals that no usable tesseract installation exists.
// Classification requests still complete with empty text; the transport maps
// this to 503 only when extraction itself is the requested operation.
func NewOCRUnavailableError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeOCRUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewNoTextExtractedError signals an exhausted extraction grid with zero
// usable candidates. Distinct from OCRUnavailable: the engine ran and found nothing.
func NewNoTextExtractedError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeNoTextExtracted,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewModelUnavailableError signals a backing classifier that failed to load.
// Non-fatal: the affected analyzer falls back to rule-only scoring.
func NewModelUnavailableError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeModelUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewAnalyzerFailureError signals an unexpected failure inside one analyzer.
// The failed analyzer is excluded from the ensemble vote; the request continues.
func NewAnalyzerFailureError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeAnalyzerFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewEnsembleFailureError signals that every analyzer failed. Terminal.
func NewEnsembleFailureError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeEnsembleFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode extracts the HTTP status code from an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
