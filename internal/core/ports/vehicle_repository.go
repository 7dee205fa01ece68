// Package ports defines repository interfaces for the mineral transport domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orehaul/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for fleet vehicles.
// Provides methods for storing, retrieving, and listing vehicles of any
// variant behind the vehicle.Vehicle interface.
type VehicleRepository interface {
	// Add persists a new vehicle.
	// The vehicle must be valid and its id must not already exist.
	Add(ctx context.Context, v vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, v vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id string) (vehicle.Vehicle, error)

	// GetAll retrieves every registered vehicle in registration order.
	GetAll(ctx context.Context) ([]vehicle.Vehicle, error)
}
