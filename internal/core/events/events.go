package events

import (
	"time"

	"orehaul/internal/core/domain/model/transport"

	"github.com/google/uuid"
)

// EventType identifies the kind of domain event.
type EventType string

const (
	// OperationFinalized is emitted when a transport operation is closed out.
	OperationFinalized EventType = "operation_finalized"

	// CargoIngested is emitted when the warehouse checks a load in.
	CargoIngested EventType = "cargo_ingested"
)

// Event is the wire representation of a domain event. It carries a snapshot
// of the operation it describes so consumers never need to call back.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Type        EventType `json:"type"`
	OperationID uint64    `json:"operation_id"`
	VehicleID   string    `json:"vehicle_id"`
	OperatorID  string    `json:"operator_id"`
	MineralType string    `json:"mineral_type"`
	WeightTons  float64   `json:"weight_tons"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewOperationFinalized builds the event emitted when a haul is closed out.
func NewOperationFinalized(operation *transport.Operation) Event {
	return newEvent(OperationFinalized, operation)
}

// NewCargoIngested builds the event emitted when the warehouse accepts a load.
func NewCargoIngested(operation *transport.Operation) Event {
	return newEvent(CargoIngested, operation)
}

func newEvent(eventType EventType, operation *transport.Operation) Event {
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		OperationID: operation.ID(),
		VehicleID:   operation.Vehicle().ID(),
		OperatorID:  operation.Operator().NationalID(),
		MineralType: operation.Load().MineralType(),
		WeightTons:  operation.Load().WeightTons(),
		OccurredAt:  time.Now().UTC(),
	}
}

// Publisher pushes domain events toward an external transport.
// Implementations must never block the caller.
type Publisher interface {
	Publish(event Event)
	Close()
}

// NopPublisher discards every event. It stands in when event publishing
// is disabled by configuration.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

func (NopPublisher) Close() {}
