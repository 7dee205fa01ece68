package queries

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var ErrGetWarehouseInventoryQueryIsNotConstructed = errors.New(
	"GetWarehouseInventoryQuery must be created via NewGetWarehouseInventoryQuery constructor",
)

// GetWarehouseInventoryQuery retrieves the warehouse stock grouped by
// mineral type together with the total stored tonnage.
type GetWarehouseInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehouseInventoryQuery creates a query to retrieve the warehouse
// inventory.
func NewGetWarehouseInventoryQuery() GetWarehouseInventoryQuery {
	return GetWarehouseInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWarehouseInventoryQueryIsNotConstructed if validation fails.
func (q GetWarehouseInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseInventoryQueryIsNotConstructed)
}

// MineralStock represents the accumulated tonnage of one mineral type.
type MineralStock struct {
	MineralType string
	Tons        float64
}

// GetWarehouseInventoryQueryResponse represents the warehouse read model.
// Stocks are sorted by mineral type so repeated reads are deterministic.
type GetWarehouseInventoryQueryResponse struct {
	Stocks    []MineralStock
	TotalTons float64
}
