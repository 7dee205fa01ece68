package commands

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var ErrFinalizeOperationCommandIsNotConstructed = errors.New(
	"FinalizeOperationCommand must be created via NewFinalizeOperationCommand constructor",
)

// FinalizeOperationCommand represents a request to close an open transport
// operation. Finalization journals the haul with its operator and makes the
// operation eligible for warehouse ingestion.
type FinalizeOperationCommand struct { //nolint:recvcheck //using for validation
	operationID uint64

	guard guard.ConstructorGuard
}

// NewFinalizeOperationCommand creates a command to finalize an operation.
// Operation ids start at 1, so zero is rejected as missing.
func NewFinalizeOperationCommand(operationID uint64) (FinalizeOperationCommand, error) {
	command := FinalizeOperationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOperationID(operationID); err != nil {
		return FinalizeOperationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinalizeOperationCommandIsNotConstructed if validation fails.
func (c FinalizeOperationCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOperationCommandIsNotConstructed)
}

// OperationID returns the id of the operation to finalize.
func (c FinalizeOperationCommand) OperationID() uint64 {
	return c.operationID
}

func (c *FinalizeOperationCommand) setOperationID(operationID uint64) error {
	if operationID == 0 {
		return ErrOperationIDIsRequired
	}

	c.operationID = operationID
	return nil
}
