// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, domain orchestration,
// and persistence.
package commands

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var (
	ErrAssignVehicleCommandIsNotConstructed = errors.New(
		"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
	)
	ErrOperatorIDIsRequired = errors.New("operator national id is required")
	ErrVehicleIDIsRequired  = errors.New("vehicle id is required")
)

// AssignVehicleCommand represents a request to add a vehicle to an
// operator's roster. The roster drives automatic vehicle selection when an
// operation is opened without a pinned vehicle.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand("123", "T001")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewAssignVehicleCommandHandler(operatorRepository, vehicleRepository)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign vehicle: %w", err)
//	}
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	operatorID string
	vehicleID  string

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to roster a vehicle with an
// operator. Validates that both identifiers are present.
func NewAssignVehicleCommand(operatorID, vehicleID string) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOperatorID(operatorID),
		command.setVehicleID(vehicleID),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignVehicleCommandIsNotConstructed if validation fails.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// OperatorID returns the national id of the target operator.
func (c AssignVehicleCommand) OperatorID() string {
	return c.operatorID
}

// VehicleID returns the fleet identifier of the vehicle to roster.
func (c AssignVehicleCommand) VehicleID() string {
	return c.vehicleID
}

func (c *AssignVehicleCommand) setOperatorID(operatorID string) error {
	if operatorID == "" {
		return ErrOperatorIDIsRequired
	}

	c.operatorID = operatorID
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return ErrVehicleIDIsRequired
	}

	c.vehicleID = vehicleID
	return nil
}
