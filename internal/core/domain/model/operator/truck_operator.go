package operator

import (
	"errors"

	"orehaul/internal/pkg/guard"

	"go.uber.org/zap"
)

// truckOperatorBonus is the per-operation bonus the truck operator role earns.
// Bonus amounts are role policy, not derived from operation data.
const truckOperatorBonus = 100.0

// TruckOperator drives a truck and records the hauls it runs.
type TruckOperator struct {
	crewMember
}

// NewTruckOperator creates a truck operator with the given identity.
//
// Parameters:
//   - name: Display name (must be non-empty)
//   - nationalID: National identity number (must be non-empty)
//   - license: License code (must be non-empty)
//   - logger: Logger for registration side effects (nil falls back to no-op)
//
// Returns:
//   - *TruckOperator: The created operator with an empty roster and journal
//   - error: Validation error if any identity field is missing
func NewTruckOperator(name, nationalID, license string, logger *zap.Logger) (*TruckOperator, error) {
	to := &TruckOperator{}
	to.logger = namedLogger(logger, "truck_operator")
	to.guard = guard.NewConstructorGuard()

	if err := errors.Join(
		to.setName(name),
		to.setNationalID(nationalID),
		to.setLicense(license),
	); err != nil {
		return nil, err
	}

	return to, nil
}

// Role returns RoleTruckOperator.
func (to *TruckOperator) Role() Role {
	return RoleTruckOperator
}

// RegisterOperation journals the haul and logs it from the driver's seat.
// The operation itself is never mutated.
func (to *TruckOperator) RegisterOperation(op Operation) {
	if op == nil {
		return
	}
	to.recordOperation(op.ID())
	to.logger.Info("truck operator recorded the haul",
		zap.Uint64("operation_id", op.ID()),
		zap.String("operator", to.name),
		zap.String("national_id", to.nationalID),
	)
}

// CalculateBonus returns the per-operation bonus for the truck operator role.
func (to *TruckOperator) CalculateBonus() float64 {
	return truckOperatorBonus
}

// Validate ensures the operator was created through NewTruckOperator.
func (to *TruckOperator) Validate() error {
	if to == nil {
		return ErrOperatorIsNotConstructed
	}
	return to.guard.Validate(ErrOperatorIsNotConstructed)
}
