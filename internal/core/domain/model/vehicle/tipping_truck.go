package vehicle

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

// TippingTruck is a tipper truck. Its yield is dominated by how well the
// chassis resists the load: a heavier fill drags the projection down
// hyperbolically, scaled by the chassis resistance rating.
type TippingTruck struct {
	truck
	// chassisResistancePct is the chassis resistance rating in percent
	chassisResistancePct float64
}

// NewTippingTruck creates a tipper truck with the given fleet identifier,
// capacity and chassis resistance rating.
//
// Parameters:
//   - id: Fleet identifier (must be non-empty)
//   - capacityTons: Maximum load weight (must not be negative)
//   - chassisResistancePct: Chassis resistance rating in percent, recorded as
//     provided by the manufacturer sheet
//
// Returns:
//   - *TippingTruck: A vehicle in Available state ready for dispatch
//   - error: Validation error if any parameter is invalid
func NewTippingTruck(id string, capacityTons, chassisResistancePct float64) (*TippingTruck, error) {
	tt := &TippingTruck{
		chassisResistancePct: chassisResistancePct,
	}
	tt.state = StateAvailable
	tt.guard = guard.NewConstructorGuard()

	if err := errors.Join(
		tt.setID(id),
		tt.setCapacityTons(capacityTons),
	); err != nil {
		return nil, err
	}

	return tt, nil
}

// Kind returns KindTippingTruck.
func (tt *TippingTruck) Kind() Kind {
	return KindTippingTruck
}

// ChassisResistancePct returns the chassis resistance rating in percent.
func (tt *TippingTruck) ChassisResistancePct() float64 {
	return tt.chassisResistancePct
}

// CalculateYield projects the transport yield for the given distance and
// load weight:
//
//	yield = (1 / (1 + f)) * distance * (resistance / 100)
//
// where f is the capacity-clamped load fraction. The result is rounded to
// three decimals.
func (tt *TippingTruck) CalculateYield(distanceKm, weightTons float64) float64 {
	f := tt.loadFraction(weightTons)
	return roundYield((1 / (1 + f)) * distanceKm * (tt.chassisResistancePct / 100))
}

// Validate ensures the truck was created through NewTippingTruck.
func (tt *TippingTruck) Validate() error {
	if tt == nil {
		return ErrVehicleIsNotConstructed
	}
	return tt.guard.Validate(ErrVehicleIsNotConstructed)
}
