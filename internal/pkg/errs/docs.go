// Package errs provides standardized error types for the meal order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types that together form the error taxonomy
// of the order core:
//   - ObjectNotFoundError: an order, item, address, menu or user is absent (NotFound)
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: a caller supplied
//     a bad value (InvalidArgument)
//   - StateIsInvalidError: the operation is not allowed in the current state, for example an
//     unavailable item, insufficient stock or an illegal status transition (InvalidState)
//   - ForbiddenError: the acting user lacks the permission for the operation (Forbidden)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels or with the Is* helpers.
package errs
