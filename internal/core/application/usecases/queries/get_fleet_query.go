// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery retrieves information about every vehicle in the fleet.
// Returns identities, capacities and availability for monitoring and
// dispatching decisions.
//
// Example:
//
//	query := NewGetFleetQuery()
//	handler := NewGetFleetQueryHandler(vehicleRepository)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, v := range fleet {
//	    fmt.Printf("%s (%s): %.1f t, %s\n", v.VehicleID, v.Kind, v.CapacityTons, v.State)
//	}
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a query to retrieve the whole fleet.
// This is a parameterless query that fetches vehicles in registration order.
func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetQueryIsNotConstructed if validation fails.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// GetFleetQueryResponse represents one vehicle in the fleet read model.
type GetFleetQueryResponse struct {
	VehicleID    string
	Kind         vehicle.Kind
	CapacityTons float64
	State        vehicle.State
}
