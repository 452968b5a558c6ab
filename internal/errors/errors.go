package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error markers used across the application
var (
	ErrNotFound           = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists      = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation         = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation   = new(ErrCodeInvalidOperation, "invalid operation")
	ErrUnauthorized       = new(ErrCodeUnauthorized, "unauthorized")
	ErrPermissionDenied   = new(ErrCodePermissionDenied, "permission denied")
	ErrTenantProvisioning = new(ErrCodeTenantProvisioning, "tenant not provisioned")
	ErrDatabase           = new(ErrCodeDatabase, "database error")
	ErrAllocation         = new(ErrCodeAllocation, "sequence allocation failed")
	ErrAuditWrite         = new(ErrCodeAuditWrite, "history write failed")
	ErrRateLimited        = new(ErrCodeRateLimited, "too many requests")
	ErrHTTPClient         = new(ErrCodeHTTPClient, "http client error")
	ErrSystem             = new(ErrCodeSystemError, "system error")

	// ordered from most to least specific, the first match wins
	statusCodes = []struct {
		err    error
		status int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrInvalidOperation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrTenantProvisioning, http.StatusForbidden},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrRateLimited, http.StatusTooManyRequests},
		{ErrAllocation, http.StatusInternalServerError},
		{ErrAuditWrite, http.StatusInternalServerError},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrHTTPClient, http.StatusInternalServerError},
		{ErrSystem, http.StatusInternalServerError},
	}
)

const (
	ErrCodeHTTPClient         = "http_client_error"
	ErrCodeSystemError        = "system_error"
	ErrCodeNotFound           = "not_found"
	ErrCodeAlreadyExists      = "already_exists"
	ErrCodeValidation         = "validation_error"
	ErrCodeInvalidOperation   = "invalid_operation"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodePermissionDenied   = "permission_denied"
	ErrCodeTenantProvisioning = "tenant_provisioning_error"
	ErrCodeDatabase           = "database_error"
	ErrCodeAllocation         = "allocation_error"
	ErrCodeAuditWrite         = "audit_write_error"
	ErrCodeRateLimited        = "rate_limited"
)

// InternalError represents a domain error marker
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsTenantProvisioning(err error) bool {
	return errors.Is(err, ErrTenantProvisioning)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func IsAllocation(err error) bool {
	return errors.Is(err, ErrAllocation)
}

// HTTPStatusFromErr maps a marked error to its HTTP status, 500 when unmarked
func HTTPStatusFromErr(err error) int {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}

// CodeFromErr returns the machine readable code of the first marker the error carries
func CodeFromErr(err error) string {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			var ie *InternalError
			if errors.As(sc.err, &ie) {
				return ie.Code
			}
		}
	}
	return ErrCodeSystemError
}
