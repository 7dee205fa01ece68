package commands

import (
	"errors"

	"orehaul/internal/core/domain/model/operator"
	"orehaul/internal/pkg/guard"
)

var (
	ErrRegisterOperatorCommandIsNotConstructed = errors.New(
		"RegisterOperatorCommand must be created via NewRegisterOperatorCommand constructor",
	)
	ErrNameIsRequired       = errors.New("name is required")
	ErrNationalIDIsRequired = errors.New("national id is required")
	ErrLicenseIsRequired    = errors.New("license is required")
)

// RegisterOperatorCommand represents a request to add a new crew member.
// Encapsulates the identity attributes plus the role determining which
// personnel variant gets constructed.
//
// Example:
//
//	cmd, err := NewRegisterOperatorCommand("truck_operator", "Juan", "123", "AII")
//	if err != nil {
//	    return fmt.Errorf("invalid operator data: %w", err)
//	}
//
//	handler := NewRegisterOperatorCommandHandler(operatorRepository, logger, appMetrics)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register operator: %w", err)
//	}
type RegisterOperatorCommand struct { //nolint:recvcheck //using for validation
	role       operator.Role
	name       string
	nationalID string
	license    string

	guard guard.ConstructorGuard
}

// NewRegisterOperatorCommand creates a command to register a new crew
// member. Validates that the role is a known variant and that every
// identity field is present.
func NewRegisterOperatorCommand(role, name, nationalID, license string) (RegisterOperatorCommand, error) {
	command := RegisterOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRole(role),
		command.setName(name),
		command.setNationalID(nationalID),
		command.setLicense(license),
	); err != nil {
		return RegisterOperatorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterOperatorCommandIsNotConstructed if validation fails.
func (c RegisterOperatorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOperatorCommandIsNotConstructed)
}

// Role returns the personnel variant to construct.
func (c RegisterOperatorCommand) Role() operator.Role {
	return c.role
}

// Name returns the operator's display name.
func (c RegisterOperatorCommand) Name() string {
	return c.name
}

// NationalID returns the operator's national identity number.
func (c RegisterOperatorCommand) NationalID() string {
	return c.nationalID
}

// License returns the operator's license code.
func (c RegisterOperatorCommand) License() string {
	return c.license
}

func (c *RegisterOperatorCommand) setRole(role string) error {
	parsed, err := operator.ParseRole(role)
	if err != nil {
		return err
	}

	c.role = parsed
	return nil
}

func (c *RegisterOperatorCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterOperatorCommand) setNationalID(nationalID string) error {
	if nationalID == "" {
		return ErrNationalIDIsRequired
	}

	c.nationalID = nationalID
	return nil
}

func (c *RegisterOperatorCommand) setLicense(license string) error {
	if license == "" {
		return ErrLicenseIsRequired
	}

	c.license = license
	return nil
}
