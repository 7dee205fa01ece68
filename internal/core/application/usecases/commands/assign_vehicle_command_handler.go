package commands

import (
	"context"
	"errors"

	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
)

var (
	ErrOperatorNotFound = errors.New("operator not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
)

// AssignVehicleCommandHandler handles the business logic for rostering a
// vehicle with an operator. Re-associating an already rostered vehicle is a
// no-op, so repeated assignments are safe.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(operatorRepository, vehicleRepository)
//	cmd, _ := NewAssignVehicleCommand("123", "T001")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOperatorNotFound):
//	    log.Println("Unknown operator")
//	case errors.Is(err, ErrVehicleNotFound):
//	    log.Println("Unknown vehicle")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignVehicleCommandHandler struct {
	operatorRepository ports.OperatorRepository
	vehicleRepository  ports.VehicleRepository
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment
// operations.
func NewAssignVehicleCommandHandler(
	operatorRepository ports.OperatorRepository,
	vehicleRepository ports.VehicleRepository,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		operatorRepository: operatorRepository,
		vehicleRepository:  vehicleRepository,
	}
}

// Handle processes the vehicle assignment command.
// Loads both aggregates, adds the vehicle to the operator's roster and
// re-persists the operator. Returns ErrOperatorNotFound or
// ErrVehicleNotFound when either identifier is unknown.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	member, err := h.operatorRepository.Get(ctx, cmd.OperatorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOperatorNotFound
	}
	if err != nil {
		return err
	}

	v, err := h.vehicleRepository.Get(ctx, cmd.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrVehicleNotFound
	}
	if err != nil {
		return err
	}

	if err := member.AssociateVehicle(v); err != nil {
		return err
	}

	return h.operatorRepository.Update(ctx, member)
}
