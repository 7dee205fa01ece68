package services

import (
	"errors"
	"fmt"

	"orehaul/internal/core/domain/model/mineral"
	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/pkg/errs"
)

// ErrNoSuitableVehicle is returned when no vehicle can carry a load.
// This occurs when either no vehicles are provided or none of the provided
// vehicles is available with enough capacity for the load.
var ErrNoSuitableVehicle = errors.New("no suitable vehicle")

// VehicleDispatcher is a domain service responsible for picking the optimal
// vehicle for a haul based on the projected yield.
//
// Key responsibilities:
//   - Validating the load before dispatch
//   - Skipping vehicles that are out of service or too small
//   - Selecting the vehicle with the highest projected yield
//
// Business rules:
//   - The load must be valid before dispatch
//   - Only Available vehicles are considered
//   - Vehicles whose capacity the load exceeds are skipped
//   - Selection prioritizes maximum yield; ties go to the first candidate
//
// Example usage:
//
//	dispatcher := services.NewVehicleDispatcher()
//	load, _ := mineral.NewLoad("Cobre", 2.5, 15)
//	fleet := []vehicle.Vehicle{tipper, dumper, light}
//
//	best, err := dispatcher.Dispatch(load, 12, fleet)
//	if errors.Is(err, services.ErrNoSuitableVehicle) {
//	    // Nothing in the fleet can take this load
//	    return
//	}
type VehicleDispatcher struct{}

// NewVehicleDispatcher creates a new VehicleDispatcher instance.
func NewVehicleDispatcher() VehicleDispatcher {
	return VehicleDispatcher{}
}

// Dispatch finds the vehicle with the highest projected yield for the load
// over the given distance.
//
// Parameters:
//   - load: The cargo to be hauled (must be valid)
//   - distanceKm: The haul distance (must not be negative)
//   - candidates: Slice of vehicles to consider
//
// Returns:
//   - vehicle.Vehicle: The selected vehicle
//   - error: ErrNoSuitableVehicle if no candidate fits, or validation errors
func (d VehicleDispatcher) Dispatch(
	load *mineral.Load, distanceKm float64, candidates []vehicle.Vehicle,
) (vehicle.Vehicle, error) {
	if err := load.Validate(); err != nil {
		return nil, err
	}

	if distanceKm < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("distance is invalid", fmt.Errorf("%g is less than 0", distanceKm))
	}

	return d.findBestVehicle(load, distanceKm, candidates)
}

// findBestVehicle scans the candidates for the highest-yield available vehicle
// with enough capacity for the load.
func (d VehicleDispatcher) findBestVehicle(
	load *mineral.Load, distanceKm float64, candidates []vehicle.Vehicle,
) (vehicle.Vehicle, error) {
	var (
		bestVehicle vehicle.Vehicle
		bestYield   float64
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.State() != vehicle.StateAvailable {
			continue
		}

		if load.WeightTons() > candidate.CapacityTons() {
			continue
		}

		yield := candidate.CalculateYield(distanceKm, load.WeightTons())
		if bestVehicle == nil || yield > bestYield {
			bestVehicle = candidate
			bestYield = yield
		}
	}

	if bestVehicle == nil {
		return nil, ErrNoSuitableVehicle
	}

	return bestVehicle, nil
}
