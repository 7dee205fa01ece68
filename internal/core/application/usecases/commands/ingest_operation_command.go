package commands

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var ErrIngestOperationCommandIsNotConstructed = errors.New(
	"IngestOperationCommand must be created via NewIngestOperationCommand constructor",
)

// IngestOperationCommand represents a request to check a finalized
// operation's cargo into the warehouse.
type IngestOperationCommand struct { //nolint:recvcheck //using for validation
	operationID uint64

	guard guard.ConstructorGuard
}

// NewIngestOperationCommand creates a command to ingest an operation's
// cargo. Operation ids start at 1, so zero is rejected as missing.
func NewIngestOperationCommand(operationID uint64) (IngestOperationCommand, error) {
	command := IngestOperationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOperationID(operationID); err != nil {
		return IngestOperationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIngestOperationCommandIsNotConstructed if validation fails.
func (c IngestOperationCommand) Validate() error {
	return c.guard.Validate(ErrIngestOperationCommandIsNotConstructed)
}

// OperationID returns the id of the operation to ingest.
func (c IngestOperationCommand) OperationID() uint64 {
	return c.operationID
}

func (c *IngestOperationCommand) setOperationID(operationID uint64) error {
	if operationID == 0 {
		return ErrOperationIDIsRequired
	}

	c.operationID = operationID
	return nil
}
