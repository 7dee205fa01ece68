package queries

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var ErrGetOpenOperationsQueryIsNotConstructed = errors.New(
	"GetOpenOperationsQuery must be created via NewGetOpenOperationsQuery constructor",
)

// GetOpenOperationsQuery retrieves every transport operation that has not
// been finalized yet. Used to track hauls still on the road.
type GetOpenOperationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOperationsQuery creates a query to retrieve open operations.
func NewGetOpenOperationsQuery() GetOpenOperationsQuery {
	return GetOpenOperationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOperationsQueryIsNotConstructed if validation fails.
func (q GetOpenOperationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOperationsQueryIsNotConstructed)
}

// GetOpenOperationsQueryResponse represents one open operation in the read
// model.
type GetOpenOperationsQueryResponse struct {
	OperationID uint64
	OperatorID  string
	VehicleID   string
	MineralType string
	WeightTons  float64
	DistanceKm  float64
}
