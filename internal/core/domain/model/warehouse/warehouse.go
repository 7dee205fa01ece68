package warehouse

import (
	"errors"
	"fmt"
	"sync"

	"orehaul/internal/core/domain/model/transport"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/guard"
)

// ErrWarehouseIsNotConstructed is returned when attempting to use a Warehouse
// that was created via zero value instead of the NewWarehouse constructor.
var ErrWarehouseIsNotConstructed = errors.New(
	"warehouse is not constructed, use NewWarehouse() to create it")

// Warehouse is the aggregate root that accounts for received mineral.
//
// It keeps a stock ledger keyed by mineral type and a record of which
// operations have already been checked in. Only finalized operations may be
// ingested, and each operation is counted exactly once.
//
// All methods are safe for concurrent use.
type Warehouse struct {
	inventory map[string]float64
	ingested  map[uint64]bool

	mu    sync.RWMutex
	guard guard.ConstructorGuard
}

// NewWarehouse creates an empty Warehouse ready for ingestion.
func NewWarehouse() *Warehouse {
	return &Warehouse{
		inventory: make(map[string]float64),
		ingested:  make(map[uint64]bool),
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate checks that the Warehouse was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// Ingest adds a finalized operation's load to the stock ledger.
//
// Returns an InvalidStateError when the operation is not finalized or when the
// same operation was already ingested. On any error the inventory is left
// unchanged.
func (w *Warehouse) Ingest(operation *transport.Operation) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if operation == nil {
		return errs.NewValueIsRequiredError("operation")
	}
	if err := operation.Validate(); err != nil {
		return err
	}

	if !operation.Finalized() {
		return errs.NewInvalidStateError(
			"operation",
			fmt.Sprintf("operation %d is not finalized", operation.ID()),
		)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ingested[operation.ID()] {
		return errs.NewInvalidStateError(
			"operation",
			fmt.Sprintf("operation %d was already ingested", operation.ID()),
		)
	}

	load := operation.Load()
	w.inventory[load.MineralType()] += load.WeightTons()
	w.ingested[operation.ID()] = true

	return nil
}

// Stock returns the accumulated weight for a mineral type.
// Returns 0 for minerals that were never ingested.
func (w *Warehouse) Stock(mineralType string) float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.inventory[mineralType]
}

// TotalTons returns the sum of all inventory buckets.
// Returns 0 for an empty warehouse.
func (w *Warehouse) TotalTons() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var total float64
	for _, tons := range w.inventory {
		total += tons
	}
	return total
}

// Inventory returns a copy of the stock ledger keyed by mineral type.
// Mutating the returned map does not affect the warehouse.
func (w *Warehouse) Inventory() map[string]float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	inventory := make(map[string]float64, len(w.inventory))
	for mineralType, tons := range w.inventory {
		inventory[mineralType] = tons
	}
	return inventory
}

// HasIngested reports whether the operation with the given id was already
// checked in.
func (w *Warehouse) HasIngested(operationID uint64) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.ingested[operationID]
}
