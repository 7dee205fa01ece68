package operator

import (
	"errors"

	"orehaul/internal/pkg/guard"

	"go.uber.org/zap"
)

// warehouseControllerBonus is the per-operation bonus the controller role earns.
const warehouseControllerBonus = 80.0

// WarehouseController checks finished operations into the warehouse and
// records their arrival.
type WarehouseController struct {
	crewMember
}

// NewWarehouseController creates a warehouse controller with the given identity.
// See NewTruckOperator for parameter semantics.
func NewWarehouseController(name, nationalID, license string, logger *zap.Logger) (*WarehouseController, error) {
	wc := &WarehouseController{}
	wc.logger = namedLogger(logger, "warehouse_controller")
	wc.guard = guard.NewConstructorGuard()

	if err := errors.Join(
		wc.setName(name),
		wc.setNationalID(nationalID),
		wc.setLicense(license),
	); err != nil {
		return nil, err
	}

	return wc, nil
}

// Role returns RoleWarehouseController.
func (wc *WarehouseController) Role() Role {
	return RoleWarehouseController
}

// RegisterOperation journals the haul and logs the check-in record.
// The operation itself is never mutated.
func (wc *WarehouseController) RegisterOperation(op Operation) {
	if op == nil {
		return
	}
	wc.recordOperation(op.ID())
	wc.logger.Info("warehouse controller checked the haul in",
		zap.Uint64("operation_id", op.ID()),
		zap.String("operator", wc.name),
		zap.String("national_id", wc.nationalID),
	)
}

// CalculateBonus returns the per-operation bonus for the controller role.
func (wc *WarehouseController) CalculateBonus() float64 {
	return warehouseControllerBonus
}

// Validate ensures the operator was created through NewWarehouseController.
func (wc *WarehouseController) Validate() error {
	if wc == nil {
		return ErrOperatorIsNotConstructed
	}
	return wc.guard.Validate(ErrOperatorIsNotConstructed)
}
