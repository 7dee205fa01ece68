// Package errs provides standardized error types for the mineral transport
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - CapacityExceededError: For when a load is heavier than its vehicle allows
//   - InvalidStateError: For when an object's state forbids the attempted action
//
// Every type follows the same shape: a sentinel error variable (e.g.
// ErrValueIsRequired), a struct carrying the error details, constructors with
// and without a cause, an Error() method that renders a single-line message,
// and an Unwrap() method that returns the sentinel so callers can classify
// errors with errors.Is without depending on concrete types.
package errs
