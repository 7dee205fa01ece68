package commands

import (
	"errors"

	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/pkg/guard"
)

var (
	ErrRegisterVehicleCommandIsNotConstructed = errors.New(
		"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
	)
	ErrCapacityIsInvalid = errors.New("capacity must not be negative")
)

// VehicleSpec carries the variant-specific parameters of a vehicle being
// registered. Only the field matching the requested kind is read; the others
// are ignored.
type VehicleSpec struct {
	// ChassisResistancePct is the chassis resistance rating of a tipping truck.
	ChassisResistancePct float64
	// AxleCount is the number of axles of an articulated dumper.
	AxleCount int
	// Suspension is the suspension description of a light truck.
	Suspension string
}

// RegisterVehicleCommand represents a request to add a new vehicle to the
// fleet. Encapsulates the common vehicle attributes plus the variant
// parameters needed to construct the concrete truck type.
//
// Example:
//
//	spec := VehicleSpec{ChassisResistancePct: 85}
//	cmd, err := NewRegisterVehicleCommand("tipping_truck", "T001", 20, spec)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewRegisterVehicleCommandHandler(vehicleRepository, appMetrics)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	kind         vehicle.Kind
	vehicleID    string
	capacityTons float64
	spec         VehicleSpec

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a new fleet
// vehicle. Validates that the kind is a known variant, the id is present and
// the capacity is not negative. Variant parameters are recorded as provided.
func NewRegisterVehicleCommand(
	kind, vehicleID string,
	capacityTons float64,
	spec VehicleSpec,
) (RegisterVehicleCommand, error) {
	command := RegisterVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setVehicleID(vehicleID),
		command.setCapacityTons(capacityTons),
		command.setSpec(spec),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterVehicleCommandIsNotConstructed if validation fails.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// Kind returns the vehicle variant to construct.
func (c RegisterVehicleCommand) Kind() vehicle.Kind {
	return c.kind
}

// VehicleID returns the fleet identifier for the new vehicle.
func (c RegisterVehicleCommand) VehicleID() string {
	return c.vehicleID
}

// CapacityTons returns the capacity rating for the new vehicle.
func (c RegisterVehicleCommand) CapacityTons() float64 {
	return c.capacityTons
}

// Spec returns the variant parameters for the new vehicle.
func (c RegisterVehicleCommand) Spec() VehicleSpec {
	return c.spec
}

func (c *RegisterVehicleCommand) setKind(kind string) error {
	parsed, err := vehicle.ParseKind(kind)
	if err != nil {
		return err
	}

	c.kind = parsed
	return nil
}

func (c *RegisterVehicleCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return ErrVehicleIDIsRequired
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *RegisterVehicleCommand) setCapacityTons(capacityTons float64) error {
	if capacityTons < 0 {
		return ErrCapacityIsInvalid
	}

	c.capacityTons = capacityTons
	return nil
}

func (c *RegisterVehicleCommand) setSpec(spec VehicleSpec) error {
	c.spec = spec
	return nil
}
