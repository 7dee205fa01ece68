package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate() when
// the caller passes a nil validation error, so a misconstructed object always
// fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. Commands and value objects embed one and set it inside the
// constructor; anything assembled as a struct literal carries the zero guard
// and fails Validate.
//
// Example usage:
//
//	var ErrHaulTicketIsNotConstructed = errors.New("HaulTicket must be created via NewHaulTicket")
//
//	type HaulTicket struct {
//	    vehicleID  string
//	    weightTons float64
//
//	    guard guard.ConstructorGuard
//	}
//
//	func NewHaulTicket(vehicleID string, weightTons float64) (HaulTicket, error) {
//	    if vehicleID == "" {
//	        return HaulTicket{}, errors.New("vehicle id is required")
//	    }
//	    if weightTons <= 0 {
//	        return HaulTicket{}, errors.New("weight must be positive")
//	    }
//	    return HaulTicket{
//	        vehicleID:  vehicleID,
//	        weightTons: weightTons,
//	        guard:      guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (t HaulTicket) Validate() error {
//	    return t.guard.Validate(ErrHaulTicketIsNotConstructed)
//	}
//
// The guard is a single bool, safe to copy and safe for concurrent reads.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as properly
// constructed. Call it in every constructor that should be mandatory.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
