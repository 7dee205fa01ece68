package commands

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var (
	ErrOpenOperationCommandIsNotConstructed = errors.New(
		"OpenOperationCommand must be created via NewOpenOperationCommand constructor",
	)
	ErrMineralTypeIsRequired = errors.New("mineral type is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
	ErrDistanceIsInvalid     = errors.New("distance must not be negative")
)

// OpenOperationCommand represents a request to open a new transport
// operation for a mineral load. The vehicle may be pinned explicitly by its
// fleet identifier or left empty to let the dispatcher pick the best
// available vehicle from the operator's roster.
//
// Example:
//
//	cmd, err := NewOpenOperationCommand("123", "T001", "Cobre", 2.5, 15, 12)
//	if err != nil {
//	    return fmt.Errorf("invalid operation data: %w", err)
//	}
//
//	operationID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to open operation: %w", err)
//	}
//	fmt.Printf("Opened operation %d", operationID)
type OpenOperationCommand struct { //nolint:recvcheck //using for validation
	operatorID  string
	vehicleID   string
	mineralType string
	humidityPct float64
	weightTons  float64
	distanceKm  float64

	guard guard.ConstructorGuard
}

// NewOpenOperationCommand creates a command to open a transport operation.
// Validates that the operator and mineral type are present, the weight is
// positive and the distance is not negative. The vehicle id is optional;
// humidity is recorded as provided.
func NewOpenOperationCommand(
	operatorID, vehicleID, mineralType string,
	humidityPct, weightTons, distanceKm float64,
) (OpenOperationCommand, error) {
	command := OpenOperationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOperatorID(operatorID),
		command.setVehicleID(vehicleID),
		command.setMineralType(mineralType),
		command.setHumidityPct(humidityPct),
		command.setWeightTons(weightTons),
		command.setDistanceKm(distanceKm),
	); err != nil {
		return OpenOperationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenOperationCommandIsNotConstructed if validation fails.
func (c OpenOperationCommand) Validate() error {
	return c.guard.Validate(ErrOpenOperationCommandIsNotConstructed)
}

// OperatorID returns the national id of the responsible operator.
func (c OpenOperationCommand) OperatorID() string {
	return c.operatorID
}

// VehicleID returns the pinned fleet identifier, or an empty string when
// the dispatcher should select a vehicle from the operator's roster.
func (c OpenOperationCommand) VehicleID() string {
	return c.vehicleID
}

// MineralType returns the mineral type of the load.
func (c OpenOperationCommand) MineralType() string {
	return c.mineralType
}

// HumidityPct returns the load humidity in percent.
func (c OpenOperationCommand) HumidityPct() float64 {
	return c.humidityPct
}

// WeightTons returns the load weight in metric tons.
func (c OpenOperationCommand) WeightTons() float64 {
	return c.weightTons
}

// DistanceKm returns the haul distance in kilometers.
func (c OpenOperationCommand) DistanceKm() float64 {
	return c.distanceKm
}

func (c *OpenOperationCommand) setOperatorID(operatorID string) error {
	if operatorID == "" {
		return ErrOperatorIDIsRequired
	}

	c.operatorID = operatorID
	return nil
}

func (c *OpenOperationCommand) setVehicleID(vehicleID string) error {
	c.vehicleID = vehicleID
	return nil
}

func (c *OpenOperationCommand) setMineralType(mineralType string) error {
	if mineralType == "" {
		return ErrMineralTypeIsRequired
	}

	c.mineralType = mineralType
	return nil
}

func (c *OpenOperationCommand) setHumidityPct(humidityPct float64) error {
	c.humidityPct = humidityPct
	return nil
}

func (c *OpenOperationCommand) setWeightTons(weightTons float64) error {
	if weightTons <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightTons = weightTons
	return nil
}

func (c *OpenOperationCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return ErrDistanceIsInvalid
	}

	c.distanceKm = distanceKm
	return nil
}
