package queries

import (
	"context"
	"sort"

	"orehaul/internal/core/domain/model/warehouse"
)

// GetWarehouseInventoryQueryHandler retrieves the inventory read model
// straight from the warehouse aggregate.
type GetWarehouseInventoryQueryHandler struct {
	warehouse *warehouse.Warehouse
}

// NewGetWarehouseInventoryQueryHandler creates a handler for warehouse
// inventory queries.
func NewGetWarehouseInventoryQueryHandler(
	wh *warehouse.Warehouse,
) GetWarehouseInventoryQueryHandler {
	return GetWarehouseInventoryQueryHandler{warehouse: wh}
}

// Handle executes the query to retrieve the current stock per mineral type.
// Returns stocks sorted by mineral type plus the total stored tonnage.
func (h GetWarehouseInventoryQueryHandler) Handle(
	_ context.Context,
	query GetWarehouseInventoryQuery,
) (GetWarehouseInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWarehouseInventoryQueryResponse{}, err
	}

	inventory := h.warehouse.Inventory()

	stocks := make([]MineralStock, 0, len(inventory))
	for mineralType, tons := range inventory {
		stocks = append(stocks, MineralStock{MineralType: mineralType, Tons: tons})
	}
	sort.Slice(stocks, func(i, j int) bool {
		return stocks[i].MineralType < stocks[j].MineralType
	})

	return GetWarehouseInventoryQueryResponse{
		Stocks:    stocks,
		TotalTons: h.warehouse.TotalTons(),
	}, nil
}
