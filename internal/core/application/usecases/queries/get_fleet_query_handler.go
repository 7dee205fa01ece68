package queries

import (
	"context"

	"orehaul/internal/core/ports"
)

// GetFleetQueryHandler retrieves the fleet read model from the vehicle
// repository.
//
// Example:
//
//	handler := NewGetFleetQueryHandler(vehicleRepository)
//	query := NewGetFleetQuery()
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get fleet: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d vehicles\n", len(fleet))
type GetFleetQueryHandler struct {
	vehicleRepository ports.VehicleRepository
}

// NewGetFleetQueryHandler creates a handler for fleet retrieval queries.
func NewGetFleetQueryHandler(vehicleRepository ports.VehicleRepository) GetFleetQueryHandler {
	return GetFleetQueryHandler{vehicleRepository: vehicleRepository}
}

// Handle executes the query to retrieve every registered vehicle.
// Returns a slice of fleet read models in registration order.
func (h GetFleetQueryHandler) Handle(
	ctx context.Context,
	query GetFleetQuery,
) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := h.vehicleRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fleet := make([]GetFleetQueryResponse, 0, len(vehicles))
	for _, v := range vehicles {
		fleet = append(fleet, GetFleetQueryResponse{
			VehicleID:    v.ID(),
			Kind:         v.Kind(),
			CapacityTons: v.CapacityTons(),
			State:        v.State(),
		})
	}

	return fleet, nil
}
