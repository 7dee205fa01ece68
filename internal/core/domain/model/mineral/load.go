package mineral

import (
	"errors"
	"fmt"

	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/guard"
)

// Domain errors for mineral load operations.
var (
	// ErrMineralTypeIsRequired is returned when attempting to create a load without a mineral type.
	ErrMineralTypeIsRequired = errs.NewValueIsRequiredError("mineral type")
	// ErrLoadIsNotConstructed is returned when using an improperly initialized Load.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")
)

// Load represents a batch of extracted mineral prepared for haulage.
//
// A load binds a mineral type to its measured weight and humidity at the
// moment it leaves the pit. The mineral type and humidity are fixed once the
// load is weighed in; only the weight may be corrected afterwards, for example
// after a re-weighing at the checkpoint scale.
//
// Invariants:
//   - Mineral type must be non-empty
//   - Weight must be positive (greater than 0 tons)
//   - Humidity is recorded as measured and is not range-checked at this stage
type Load struct {
	// mineralType names the transported mineral (e.g. "Cobre", "Plata")
	mineralType string
	// humidityPct is the measured humidity percentage at weigh-in
	humidityPct float64
	// weightTons is the load weight in metric tons (must be positive)
	weightTons float64
	// guard ensures the load was created via NewLoad
	guard guard.ConstructorGuard
}

// NewLoad creates a validated mineral load.
//
// Parameters:
//   - mineralType: Name of the mineral (must be non-empty)
//   - humidityPct: Humidity percentage as measured at weigh-in
//   - weightTons: Weight in tons (must be greater than 0)
//
// Returns:
//   - *Load: The created load if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLoad(mineralType string, humidityPct, weightTons float64) (*Load, error) {
	load := &Load{
		humidityPct: humidityPct,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		load.setMineralType(mineralType),
		load.setWeightTons(weightTons),
	); err != nil {
		return nil, err
	}

	return load, nil
}

// Validate ensures the Load instance was properly constructed through NewLoad.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares two loads by value: mineral type, humidity and weight.
func (l *Load) IsEqual(other *Load) bool {
	if other == nil {
		return false
	}
	return l.mineralType == other.mineralType &&
		l.humidityPct == other.humidityPct &&
		l.weightTons == other.weightTons
}

// MineralType returns the name of the transported mineral.
func (l *Load) MineralType() string {
	return l.mineralType
}

// HumidityPct returns the humidity percentage measured at weigh-in.
func (l *Load) HumidityPct() float64 {
	return l.humidityPct
}

// WeightTons returns the load weight in metric tons.
func (l *Load) WeightTons() float64 {
	return l.weightTons
}

// SetWeightTons corrects the load weight, for example after a control
// re-weighing. The corrected weight must still be positive.
func (l *Load) SetWeightTons(weightTons float64) error {
	return l.setWeightTons(weightTons)
}

// setMineralType validates and sets the mineral type.
// This is a private method used only during construction.
func (l *Load) setMineralType(mineralType string) error {
	if mineralType == "" {
		return ErrMineralTypeIsRequired
	}
	l.mineralType = mineralType
	return nil
}

// setWeightTons validates and sets the load weight.
// Weight must be positive (greater than 0).
func (l *Load) setWeightTons(weightTons float64) error {
	if weightTons <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%g is not greater than 0", weightTons))
	}
	l.weightTons = weightTons
	return nil
}
