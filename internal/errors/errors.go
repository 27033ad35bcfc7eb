package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrPeriodNotFound   = new(ErrCodePeriodNotFound, "billing period not found")
	ErrContractNotFound = new(ErrCodeContractNotFound, "contract not found")
	ErrCustomerNotFound = new(ErrCodeCustomerNotFound, "customer not found")
	// ErrStandalonePeriod is a redirect signal, not a failure: the period is
	// not tied to a contract lifecycle and must be handled by the standalone path.
	ErrStandalonePeriod = new(ErrCodeStandalonePeriod, "standalone billing period")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrNetwork          = new(ErrCodeNetwork, "network error")
	ErrDatabase         = new(ErrCodeDatabase, "database error")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:         http.StatusNotFound,
		ErrPeriodNotFound:   http.StatusNotFound,
		ErrContractNotFound: http.StatusUnprocessableEntity,
		ErrCustomerNotFound: http.StatusUnprocessableEntity,
		ErrStandalonePeriod: http.StatusSeeOther,
		ErrAlreadyExists:    http.StatusConflict,
		ErrValidation:       http.StatusBadRequest,
		ErrInvalidOperation: http.StatusBadRequest,
		ErrPermissionDenied: http.StatusForbidden,
		ErrNetwork:          http.StatusBadGateway,
		ErrDatabase:         http.StatusInternalServerError,
		ErrSystem:           http.StatusInternalServerError,
	}

	// nonRetryable marks structural data-integrity failures: retrying the same
	// request cannot fix a missing contract or customer, and a denied
	// permission will stay denied. Everything else defaults to retryable.
	nonRetryable = map[error]bool{
		ErrContractNotFound: true,
		ErrCustomerNotFound: true,
		ErrPermissionDenied: true,
		ErrValidation:       true,
		ErrInvalidOperation: true,
	}
)

const (
	ErrCodeNotFound         = "not_found"
	ErrCodePeriodNotFound   = "period_not_found"
	ErrCodeContractNotFound = "contract_not_found"
	ErrCodeCustomerNotFound = "customer_not_found"
	ErrCodeStandalonePeriod = "standalone_period"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeNetwork          = "network_error"
	ErrCodeDatabase         = "database_error"
	ErrCodeSystemError      = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
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

// new creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsNotFound checks if an error is any of the not found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPeriodNotFound) ||
		errors.Is(err, ErrContractNotFound) ||
		errors.Is(err, ErrCustomerNotFound)
}

// IsPeriodNotFound checks if an error is a period not found error
func IsPeriodNotFound(err error) bool {
	return errors.Is(err, ErrPeriodNotFound)
}

// IsStandalonePeriod checks if an error is the standalone-period redirect signal
func IsStandalonePeriod(err error) bool {
	return errors.Is(err, ErrStandalonePeriod)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsDatabase checks if an error is a database error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// CanRetry reports whether retrying the failed operation could help.
// Structural integrity failures are never retryable; everything else is
// retryable by default so callers can offer a "try again" affordance.
func CanRetry(err error) bool {
	if err == nil {
		return false
	}
	for sentinel, structural := range nonRetryable {
		if structural && errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
