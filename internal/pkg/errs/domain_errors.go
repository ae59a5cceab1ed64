package errs

import "errors"

// Cross-layer sentinel errors shared by the usecase and handler layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Service availability
	ErrMaintenanceMode = errors.New("service is under maintenance")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
