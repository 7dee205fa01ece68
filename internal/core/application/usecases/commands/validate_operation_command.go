package commands

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var (
	ErrValidateOperationCommandIsNotConstructed = errors.New(
		"ValidateOperationCommand must be created via NewValidateOperationCommand constructor",
	)
	ErrOperationIDIsRequired = errors.New("operation id is required")
)

// ValidateOperationCommand represents a request to run the capacity check
// on an open transport operation.
type ValidateOperationCommand struct { //nolint:recvcheck //using for validation
	operationID uint64

	guard guard.ConstructorGuard
}

// NewValidateOperationCommand creates a command to validate an operation's
// load weight against its vehicle capacity. Operation ids start at 1, so
// zero is rejected as missing.
func NewValidateOperationCommand(operationID uint64) (ValidateOperationCommand, error) {
	command := ValidateOperationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOperationID(operationID); err != nil {
		return ValidateOperationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrValidateOperationCommandIsNotConstructed if validation fails.
func (c ValidateOperationCommand) Validate() error {
	return c.guard.Validate(ErrValidateOperationCommandIsNotConstructed)
}

// OperationID returns the id of the operation to validate.
func (c ValidateOperationCommand) OperationID() uint64 {
	return c.operationID
}

func (c *ValidateOperationCommand) setOperationID(operationID uint64) error {
	if operationID == 0 {
		return ErrOperationIDIsRequired
	}

	c.operationID = operationID
	return nil
}
