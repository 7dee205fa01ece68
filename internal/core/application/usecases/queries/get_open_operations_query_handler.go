package queries

import (
	"context"

	"orehaul/internal/core/ports"
)

// GetOpenOperationsQueryHandler retrieves the open operations read model
// from the operation repository.
type GetOpenOperationsQueryHandler struct {
	operationRepository ports.OperationRepository
}

// NewGetOpenOperationsQueryHandler creates a handler for open operation
// retrieval queries.
func NewGetOpenOperationsQueryHandler(
	operationRepository ports.OperationRepository,
) GetOpenOperationsQueryHandler {
	return GetOpenOperationsQueryHandler{operationRepository: operationRepository}
}

// Handle executes the query to retrieve operations still in Open status.
// Returns a slice of read models in opening order.
func (h GetOpenOperationsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOperationsQuery,
) ([]GetOpenOperationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	operations, err := h.operationRepository.GetAllOpen(ctx)
	if err != nil {
		return nil, err
	}

	open := make([]GetOpenOperationsQueryResponse, 0, len(operations))
	for _, operation := range operations {
		open = append(open, GetOpenOperationsQueryResponse{
			OperationID: operation.ID(),
			OperatorID:  operation.Operator().NationalID(),
			VehicleID:   operation.Vehicle().ID(),
			MineralType: operation.Load().MineralType(),
			WeightTons:  operation.Load().WeightTons(),
			DistanceKm:  operation.DistanceKm(),
		})
	}

	return open, nil
}
