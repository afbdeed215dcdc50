// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package realizes the core error taxonomy:
//   - ObjectNotFoundError: a referenced order/courier/business/product does not exist
//   - InvalidStateError: an operation is not permitted in the current state
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// The presentation layer relies on the sentinels to translate error kinds
// into protocol-specific responses; the core itself never swallows them.
package errs
