package vehicle

import (
	"fmt"

	"orehaul/internal/pkg/errs"
)

// State represents the operational availability of a vehicle.
//
// Unlike a lifecycle state machine, availability has no mandated transition
// order: dispatch moves a truck between Available, InTransit and Maintenance
// as the yard requires. The value object still validates membership so that
// unknown states never enter the model.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// StateAvailable means the vehicle is parked and ready for dispatch.
	// Freshly registered vehicles start in this state.
	StateAvailable

	// StateInTransit means the vehicle is currently hauling a load.
	StateInTransit

	// StateMaintenance means the vehicle is withdrawn for service work.
	StateMaintenance
)

// getStateStrings returns a map of State values to their string representations.
// All states are included for string conversion.
func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:     "Unknown",
		StateAvailable:   "Available",
		StateInTransit:   "InTransit",
		StateMaintenance: "Maintenance",
	}
}

// getValidStateStrings returns a map of only valid State values.
// Only valid states are included to support validation.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		StateAvailable:   "Available",
		StateInTransit:   "InTransit",
		StateMaintenance: "Maintenance",
	}
}

// Validate checks if the State value is valid.
//
// Valid states are: Available, InTransit, Maintenance.
// Unknown (0) and any other values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
//
// Returns "Unknown" for invalid state values. This method implements the
// fmt.Stringer interface and is safe to call on any State value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseState converts a string representation to a State value.
//
// Returns an error for strings that do not name a valid state; the zero
// State is never produced from user input.
func ParseState(s string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%q is not a valid state", s))
}
