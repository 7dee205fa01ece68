package vehicle

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

// ArticulatedDumper is an articulated dump truck. Extra axles beyond the
// base pair improve its yield, while a heavy fill applies a linear penalty.
type ArticulatedDumper struct {
	truck
	// axleCount is the number of axles on the dumper
	axleCount int
}

// NewArticulatedDumper creates an articulated dumper with the given fleet
// identifier, capacity and axle count.
//
// Parameters:
//   - id: Fleet identifier (must be non-empty)
//   - capacityTons: Maximum load weight (must not be negative)
//   - axleCount: Number of axles, recorded as provided by the registration card
//
// Returns:
//   - *ArticulatedDumper: A vehicle in Available state ready for dispatch
//   - error: Validation error if any parameter is invalid
func NewArticulatedDumper(id string, capacityTons float64, axleCount int) (*ArticulatedDumper, error) {
	ad := &ArticulatedDumper{
		axleCount: axleCount,
	}
	ad.state = StateAvailable
	ad.guard = guard.NewConstructorGuard()

	if err := errors.Join(
		ad.setID(id),
		ad.setCapacityTons(capacityTons),
	); err != nil {
		return nil, err
	}

	return ad, nil
}

// Kind returns KindArticulatedDumper.
func (ad *ArticulatedDumper) Kind() Kind {
	return KindArticulatedDumper
}

// AxleCount returns the number of axles on the dumper.
func (ad *ArticulatedDumper) AxleCount() int {
	return ad.axleCount
}

// CalculateYield projects the transport yield for the given distance and
// load weight:
//
//	yield = distance * (1 + (axles - 2) * 0.05) * (1 - 0.2 * f)
//
// where f is the capacity-clamped load fraction. The result is rounded to
// three decimals.
func (ad *ArticulatedDumper) CalculateYield(distanceKm, weightTons float64) float64 {
	f := ad.loadFraction(weightTons)
	axleBonus := 1 + float64(ad.axleCount-2)*0.05
	return roundYield(distanceKm * axleBonus * (1 - 0.2*f))
}

// Validate ensures the dumper was created through NewArticulatedDumper.
func (ad *ArticulatedDumper) Validate() error {
	if ad == nil {
		return ErrVehicleIsNotConstructed
	}
	return ad.guard.Validate(ErrVehicleIsNotConstructed)
}
