package memory

import (
	"context"
	"fmt"
	"sync"

	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/pkg/errs"
)

// ErrVehicleAlreadyRegistered is returned when adding a vehicle whose id
// is already present in the repository.
var ErrVehicleAlreadyRegistered = fmt.Errorf("%w: vehicle already registered", errs.ErrAlreadyExists)

// VehicleRepository is the in-memory implementation of ports.VehicleRepository.
type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]vehicle.Vehicle
	ids      []string
}

// NewVehicleRepository creates an empty vehicle repository.
func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		vehicles: make(map[string]vehicle.Vehicle),
	}
}

// Add stores a new vehicle. Duplicate ids are rejected.
func (r *VehicleRepository) Add(_ context.Context, v vehicle.Vehicle) error {
	if v == nil {
		return errs.NewValueIsRequiredError("vehicle")
	}
	if err := v.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[v.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrVehicleAlreadyRegistered, v.ID())
	}

	r.vehicles[v.ID()] = v
	r.ids = append(r.ids, v.ID())
	return nil
}

// Update replaces the stored vehicle with the given one.
func (r *VehicleRepository) Update(_ context.Context, v vehicle.Vehicle) error {
	if v == nil {
		return errs.NewValueIsRequiredError("vehicle")
	}
	if err := v.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[v.ID()]; !exists {
		return errs.NewObjectNotFoundError("vehicleID", v.ID())
	}

	r.vehicles[v.ID()] = v
	return nil
}

// Get returns the vehicle with the given id.
func (r *VehicleRepository) Get(_ context.Context, id string) (vehicle.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.vehicles[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("vehicleID", id)
	}
	return v, nil
}

// GetAll returns every vehicle in registration order.
func (r *VehicleRepository) GetAll(_ context.Context) ([]vehicle.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fleet := make([]vehicle.Vehicle, 0, len(r.ids))
	for _, id := range r.ids {
		fleet = append(fleet, r.vehicles[id])
	}
	return fleet, nil
}
