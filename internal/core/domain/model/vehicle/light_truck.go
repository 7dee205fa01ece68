package vehicle

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

// LightTruck is a light truck used for small hauls. Its yield starts from a
// reduced base rate and degrades quickly as the fill grows; a sufficiently
// heavy fill drives the projection to zero rather than negative.
type LightTruck struct {
	truck
	// suspension describes the fitted suspension (e.g. "Hidráulica")
	suspension string
}

// NewLightTruck creates a light truck with the given fleet identifier,
// capacity and suspension description.
//
// Parameters:
//   - id: Fleet identifier (must be non-empty)
//   - capacityTons: Maximum load weight (must not be negative)
//   - suspension: Free-form suspension description from the registration card
//
// Returns:
//   - *LightTruck: A vehicle in Available state ready for dispatch
//   - error: Validation error if any parameter is invalid
func NewLightTruck(id string, capacityTons float64, suspension string) (*LightTruck, error) {
	lt := &LightTruck{
		suspension: suspension,
	}
	lt.state = StateAvailable
	lt.guard = guard.NewConstructorGuard()

	if err := errors.Join(
		lt.setID(id),
		lt.setCapacityTons(capacityTons),
	); err != nil {
		return nil, err
	}

	return lt, nil
}

// Kind returns KindLightTruck.
func (lt *LightTruck) Kind() Kind {
	return KindLightTruck
}

// Suspension returns the suspension description of the truck.
func (lt *LightTruck) Suspension() string {
	return lt.suspension
}

// CalculateYield projects the transport yield for the given distance and
// load weight:
//
//	yield = max(0, distance * 0.6 - f * 0.8 * distance)
//
// where f is the capacity-clamped load fraction. The result is rounded to
// three decimals and never negative.
func (lt *LightTruck) CalculateYield(distanceKm, weightTons float64) float64 {
	f := lt.loadFraction(weightTons)
	yield := distanceKm*0.6 - f*0.8*distanceKm
	if yield < 0 {
		yield = 0
	}
	return roundYield(yield)
}

// Validate ensures the truck was created through NewLightTruck.
func (lt *LightTruck) Validate() error {
	if lt == nil {
		return ErrVehicleIsNotConstructed
	}
	return lt.guard.Validate(ErrVehicleIsNotConstructed)
}
