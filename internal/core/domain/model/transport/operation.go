package transport

import (
	"errors"
	"fmt"
	"sync/atomic"

	"orehaul/internal/core/domain/model/mineral"
	"orehaul/internal/core/domain/model/operator"
	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/guard"
)

var (
	// ErrOperationIsNotConstructed is returned when an Operation instance was not created
	// through the NewOperation factory method. This ensures all operations are properly validated.
	ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation constructor")
)

// operationSequence issues process-wide operation identifiers. The first
// operation created in a process gets id 1; ids are unique and monotonically
// increasing no matter which goroutine opens the operation.
var operationSequence atomic.Uint64

// nextOperationID reserves the next operation identifier.
func nextOperationID() uint64 {
	return operationSequence.Add(1)
}

// Operation represents a single mineral haul. It is the aggregate root that
// binds the responsible operator, the assigned vehicle, the mineral load and
// the haul distance, and manages the lifecycle from opening to finalization.
//
// Operation follows these invariants:
//   - Must reference a constructed operator, vehicle and load
//   - Distance must not be negative
//   - The identifier is process-unique and assigned at construction
//   - Status transitions follow the Open -> Finalized state machine
//   - Can only be created through the NewOperation constructor
type Operation struct {
	// id is the process-unique identifier of the operation
	id uint64

	// operator is the crew member responsible for the haul
	operator operator.Operator

	// vehicle is the truck assigned to the haul
	vehicle vehicle.Vehicle

	// load is the mineral batch being hauled
	load *mineral.Load

	// distanceKm is the haul distance in kilometers
	distanceKm float64

	// status represents the current state in the operation lifecycle
	status Status

	// guard ensures the operation was created via NewOperation
	guard guard.ConstructorGuard
}

// Report is the accountability snapshot of an operation: what was hauled,
// by which vehicle, and the yield the haul projects. Reports can be taken
// at any point in the lifecycle and never mutate the operation.
type Report struct {
	OperationID uint64  `json:"operation_id"`
	VehicleID   string  `json:"vehicle_id"`
	WeightTons  float64 `json:"weight_tons"`
	Yield       float64 `json:"yield"`
}

// NewOperation creates a new Operation with validation. This is the only way
// to create a valid Operation, ensuring all business invariants are maintained.
//
// Parameters:
//   - op: The responsible operator (must be constructed)
//   - v: The assigned vehicle (must be constructed)
//   - load: The mineral load (must be constructed)
//   - distanceKm: Haul distance in kilometers (must not be negative)
//
// Returns:
//   - *Operation: The created operation in Open status with a fresh id
//   - error: Validation error if any parameter is invalid
//
// The identifier is reserved only after all validations pass, so failed
// constructions do not leave gaps in the operation sequence.
func NewOperation(op operator.Operator, v vehicle.Vehicle, load *mineral.Load, distanceKm float64) (*Operation, error) {
	operation := &Operation{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		operation.setOperator(op),
		operation.setVehicle(v),
		operation.setLoad(load),
		operation.setDistanceKm(distanceKm),
	); err != nil {
		return nil, err
	}

	operation.id = nextOperationID()
	return operation, nil
}

// Validate ensures the Operation instance was properly constructed through
// NewOperation. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Operation) Validate() error {
	if o == nil {
		return ErrOperationIsNotConstructed
	}
	return o.guard.Validate(ErrOperationIsNotConstructed)
}

// IsEqual compares two operations by their unique identifiers.
func (o *Operation) IsEqual(other *Operation) bool {
	return other != nil && o.id == other.id
}

// ID returns the operation's process-unique identifier.
func (o *Operation) ID() uint64 {
	return o.id
}

// Operator returns the crew member responsible for the haul.
func (o *Operation) Operator() operator.Operator {
	return o.operator
}

// Vehicle returns the truck assigned to the haul.
func (o *Operation) Vehicle() vehicle.Vehicle {
	return o.vehicle
}

// Load returns the mineral batch being hauled.
func (o *Operation) Load() *mineral.Load {
	return o.load
}

// DistanceKm returns the haul distance in kilometers.
func (o *Operation) DistanceKm() float64 {
	return o.distanceKm
}

// Status returns the current status of the operation.
func (o *Operation) Status() Status {
	return o.status
}

// Finalized reports whether the operation has been closed out.
func (o *Operation) Finalized() bool {
	return o.status == Finalized
}

// ValidateWeight checks the load weight against the vehicle capacity.
//
// This is a pure check: it never mutates the operation and may be called
// repeatedly at any point in the lifecycle.
//
// Returns:
//   - nil if the load fits the vehicle
//   - CapacityExceededError carrying vehicle id, weight and capacity otherwise
func (o *Operation) ValidateWeight() error {
	if o.load.WeightTons() > o.vehicle.CapacityTons() {
		return errs.NewCapacityExceededError(o.vehicle.ID(), o.load.WeightTons(), o.vehicle.CapacityTons())
	}
	return nil
}

// Finalize closes the operation out.
//
// Finalization is idempotent: finalizing an already finalized operation
// returns nil and leaves the status unchanged. Only finalized operations
// are accountable stock for warehouse ingestion.
func (o *Operation) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// GenerateReport produces the accountability snapshot for the operation.
//
// The yield is projected through the assigned vehicle's own formula at the
// operation's distance and load weight. Reports work for open and finalized
// operations alike and never mutate state.
func (o *Operation) GenerateReport() Report {
	return Report{
		OperationID: o.id,
		VehicleID:   o.vehicle.ID(),
		WeightTons:  o.load.WeightTons(),
		Yield:       o.vehicle.CalculateYield(o.distanceKm, o.load.WeightTons()),
	}
}

// setOperator validates and sets the responsible operator.
// This is a private method used only during construction.
func (o *Operation) setOperator(op operator.Operator) error {
	if op == nil {
		return errs.NewValueIsRequiredError("operator")
	}
	if err := op.Validate(); err != nil {
		return err
	}
	o.operator = op
	return nil
}

// setVehicle validates and sets the assigned vehicle.
// This is a private method used only during construction.
func (o *Operation) setVehicle(v vehicle.Vehicle) error {
	if v == nil {
		return errs.NewValueIsRequiredError("vehicle")
	}
	if err := v.Validate(); err != nil {
		return err
	}
	o.vehicle = v
	return nil
}

// setLoad validates and sets the mineral load.
// This is a private method used only during construction.
func (o *Operation) setLoad(load *mineral.Load) error {
	if load == nil {
		return errs.NewValueIsRequiredError("load")
	}
	if err := load.Validate(); err != nil {
		return err
	}
	o.load = load
	return nil
}

// setDistanceKm validates and sets the haul distance.
// Distance must not be negative.
func (o *Operation) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid", fmt.Errorf("%g is less than 0", distanceKm))
	}
	o.distanceKm = distanceKm
	return nil
}
