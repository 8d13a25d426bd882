package model

// Standard error codes used in logs and domain errors.
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodePoolUnavailable = "POOL_UNAVAILABLE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrProductNotFound means the store confirmed that no row has the requested ID.
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "product not found")

	// ErrPoolUnavailable means no connection could be acquired from the pool in time.
	ErrPoolUnavailable = NewDomainError(ErrCodePoolUnavailable, "database connection unavailable")
)
