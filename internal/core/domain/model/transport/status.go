package transport

import (
	"fmt"

	"orehaul/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport operation.
// It implements a state machine with defined transitions to ensure
// operations follow the correct business workflow.
//
// State transitions:
//
//	Open ──> Finalized
//	             │
//	             └──> Finalized (repeat finalization is a no-op)
//
// Status is a value object that validates state transitions
// and provides string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an operation is created.
	// Open operations are in progress and not yet accountable stock.
	Open

	// Finalized indicates the haul is done and the load may be ingested.
	// Finalizing an already finalized operation changes nothing.
	Finalized
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Finalized: "Finalized",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Finalized: "Finalized",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Open, Finalized.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateFinalize checks if the status allows finalization without
// performing the transition.
//
// Valid statuses for finalization:
//   - Open (the normal close-out)
//   - Finalized (repeat finalization is tolerated and changes nothing)
//
// Unknown and any other values are invalid.
func (s Status) ValidateFinalize() error {
	if s != Open && s != Finalized {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finalize", s.String()),
		)
	}
	return nil
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - Open -> Finalized (haul closed out)
//   - Finalized -> Finalized (idempotent repeat)
//
// Returns:
//   - (Finalized, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Finalize() (Status, error) {
	if err := s.ValidateFinalize(); err != nil {
		return 0, err
	}

	return Finalized, nil
}
