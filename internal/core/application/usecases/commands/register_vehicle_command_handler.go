package commands

import (
	"context"
	"fmt"

	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"
)

// RegisterVehicleCommandHandler handles the business logic for fleet
// registration. Constructs the concrete truck variant requested by the
// command and persists it.
//
// Example:
//
//	handler := NewRegisterVehicleCommandHandler(vehicleRepository, appMetrics)
//	spec := VehicleSpec{AxleCount: 4}
//	cmd, _ := NewRegisterVehicleCommand("articulated_dumper", "V010", 35, spec)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type RegisterVehicleCommandHandler struct {
	vehicleRepository ports.VehicleRepository
	metrics           *metrics.Metrics
}

// NewRegisterVehicleCommandHandler creates a handler for fleet registration.
func NewRegisterVehicleCommandHandler(
	vehicleRepository ports.VehicleRepository,
	m *metrics.Metrics,
) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		vehicleRepository: vehicleRepository,
		metrics:           m,
	}
}

// Handle processes the vehicle registration command.
// Builds the truck variant matching the command's kind and adds it to the
// repository. A duplicate fleet identifier surfaces as the repository's
// conflict error.
func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := buildVehicle(cmd)
	if err != nil {
		return err
	}

	if err := h.vehicleRepository.Add(ctx, v); err != nil {
		return err
	}

	h.metrics.RecordVehicleRegistered(string(cmd.Kind()))
	return nil
}

// buildVehicle constructs the concrete truck variant for the command,
// feeding it the matching field of the variant spec.
func buildVehicle(cmd RegisterVehicleCommand) (vehicle.Vehicle, error) {
	spec := cmd.Spec()

	switch cmd.Kind() {
	case vehicle.KindTippingTruck:
		return vehicle.NewTippingTruck(cmd.VehicleID(), cmd.CapacityTons(), spec.ChassisResistancePct)
	case vehicle.KindArticulatedDumper:
		return vehicle.NewArticulatedDumper(cmd.VehicleID(), cmd.CapacityTons(), spec.AxleCount)
	case vehicle.KindLightTruck:
		return vehicle.NewLightTruck(cmd.VehicleID(), cmd.CapacityTons(), spec.Suspension)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%q is not a known vehicle kind", cmd.Kind()))
	}
}
