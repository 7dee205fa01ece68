package vehicle

import (
	"errors"
	"fmt"
	"math"

	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrIDIsRequired is returned when attempting to create a vehicle without an identifier.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized vehicle.
	ErrVehicleIsNotConstructed = errors.New("vehicle must be created via its New* constructor")
)

// Kind identifies the truck variant. The fleet is a closed set: every vehicle
// is exactly one of the three kinds below.
type Kind string

const (
	// KindTippingTruck is a tipper whose yield depends on chassis resistance.
	KindTippingTruck Kind = "tipping_truck"
	// KindArticulatedDumper is an articulated dumper whose yield grows with axle count.
	KindArticulatedDumper Kind = "articulated_dumper"
	// KindLightTruck is a light truck with a characterized suspension.
	KindLightTruck Kind = "light_truck"
)

// ParseKind converts a string representation to a Kind value.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTippingTruck, KindArticulatedDumper, KindLightTruck:
		return Kind(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a known vehicle kind", s))
	}
}

// Vehicle is the common contract of all truck variants in the fleet.
//
// Every variant shares identity, capacity and availability management; they
// differ in the variant parameter they carry and in how they project yield
// for a given load and distance.
type Vehicle interface {
	// ID returns the immutable fleet identifier (e.g. "T001").
	ID() string
	// Kind returns the variant discriminator.
	Kind() Kind
	// CapacityTons returns the maximum load weight the vehicle may carry.
	CapacityTons() float64
	// SetCapacityTons re-rates the vehicle capacity. Negative values are rejected.
	SetCapacityTons(capacityTons float64) error
	// State returns the current operational availability.
	State() State
	// ChangeState moves the vehicle to another valid availability state.
	ChangeState(state State) error
	// CalculateYield projects the transport yield for a load of the given
	// weight hauled over the given distance, rounded to three decimals.
	CalculateYield(distanceKm, weightTons float64) float64
	// IsEqual compares vehicles by their fleet identifier.
	IsEqual(other Vehicle) bool
	// Validate ensures the vehicle was created through a constructor.
	Validate() error
}

// truck carries the attributes and behavior shared by every variant.
// It is embedded by the concrete truck types and never used on its own.
type truck struct {
	// id is the fleet identifier of the vehicle
	id string
	// capacityTons is the maximum allowed load weight in metric tons
	capacityTons float64
	// state is the current operational availability
	state State
	// guard ensures the vehicle was created via a constructor
	guard guard.ConstructorGuard
}

// ID returns the fleet identifier of the vehicle.
// The identifier is immutable and set during construction.
func (t *truck) ID() string {
	return t.id
}

// CapacityTons returns the maximum load weight in metric tons.
func (t *truck) CapacityTons() float64 {
	return t.capacityTons
}

// SetCapacityTons re-rates the vehicle's capacity, for example after a
// structural inspection. Zero is allowed (vehicle withdrawn from loading);
// negative capacities are rejected.
func (t *truck) SetCapacityTons(capacityTons float64) error {
	return t.setCapacityTons(capacityTons)
}

// State returns the current operational availability of the vehicle.
func (t *truck) State() State {
	return t.state
}

// ChangeState moves the vehicle to another availability state.
// The target state must be a valid member of the State set; there is no
// mandated transition order between valid states.
func (t *truck) ChangeState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	t.state = state
	return nil
}

// IsEqual compares vehicles by their fleet identifier.
func (t *truck) IsEqual(other Vehicle) bool {
	return other != nil && t.id == other.ID()
}

// loadFraction returns how full the vehicle is for the given weight,
// clamped to at most 1.0 so that overloading cannot inflate a yield
// beyond the fully-loaded projection.
//
// Degenerate inputs stay finite: a non-positive weight contributes no
// fill, and a zero-capacity vehicle counts as fully loaded for any
// positive weight.
func (t *truck) loadFraction(weightTons float64) float64 {
	if weightTons <= 0 {
		return 0
	}
	if t.capacityTons <= 0 {
		return 1
	}
	return math.Min(weightTons/t.capacityTons, 1.0)
}

// setID validates and sets the vehicle's fleet identifier.
// This is a private method used only during construction.
func (t *truck) setID(id string) error {
	if id == "" {
		return ErrIDIsRequired
	}
	t.id = id
	return nil
}

// setCapacityTons validates and sets the vehicle's capacity.
// Capacity must not be negative; zero is a legal (unloadable) rating.
func (t *truck) setCapacityTons(capacityTons float64) error {
	if capacityTons < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%g is less than 0", capacityTons))
	}
	t.capacityTons = capacityTons
	return nil
}

// roundYield rounds a projected yield to three decimal places, the
// precision the checkpoint scale reports.
func roundYield(v float64) float64 {
	return math.Round(v*1000) / 1000
}
