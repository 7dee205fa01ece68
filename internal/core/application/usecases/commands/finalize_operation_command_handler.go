package commands

import (
	"context"
	"errors"

	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/core/events"
	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"
)

// FinalizeOperationCommandHandler handles the business logic for closing a
// transport operation. Journals the haul with the responsible operator,
// flips the operation to Finalized, returns the vehicle to Available and
// publishes the finalization event.
//
// Finalizing an already finalized operation is a no-op, so retries and
// duplicate requests are safe.
//
// Example:
//
//	handler := NewFinalizeOperationCommandHandler(
//	    operationRepository, operatorRepository, vehicleRepository, publisher, appMetrics)
//	cmd, _ := NewFinalizeOperationCommand(operationID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("finalization failed: %w", err)
//	}
type FinalizeOperationCommandHandler struct {
	operationRepository ports.OperationRepository
	operatorRepository  ports.OperatorRepository
	vehicleRepository   ports.VehicleRepository
	publisher           events.Publisher
	metrics             *metrics.Metrics
}

// NewFinalizeOperationCommandHandler creates a handler for operation
// finalization.
func NewFinalizeOperationCommandHandler(
	operationRepository ports.OperationRepository,
	operatorRepository ports.OperatorRepository,
	vehicleRepository ports.VehicleRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
) FinalizeOperationCommandHandler {
	return FinalizeOperationCommandHandler{
		operationRepository: operationRepository,
		operatorRepository:  operatorRepository,
		vehicleRepository:   vehicleRepository,
		publisher:           publisher,
		metrics:             m,
	}
}

// Handle processes the finalization command.
// Returns ErrOperationNotFound for unknown ids and nil without side effects
// when the operation is already finalized. Otherwise the operator journals
// the haul, the operation transitions to Finalized, the vehicle returns to
// Available and an operation_finalized event is published.
func (h FinalizeOperationCommandHandler) Handle(ctx context.Context, cmd FinalizeOperationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	operation, err := h.operationRepository.Get(ctx, cmd.OperationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOperationNotFound
	}
	if err != nil {
		return err
	}

	if operation.Finalized() {
		return nil
	}

	member := operation.Operator()
	member.RegisterOperation(operation)

	if err := operation.Finalize(); err != nil {
		return err
	}

	if err := h.operationRepository.Update(ctx, operation); err != nil {
		return err
	}
	if err := h.operatorRepository.Update(ctx, member); err != nil {
		return err
	}

	v := operation.Vehicle()
	if err := v.ChangeState(vehicle.StateAvailable); err != nil {
		return err
	}
	if err := h.vehicleRepository.Update(ctx, v); err != nil {
		return err
	}

	h.publisher.Publish(events.NewOperationFinalized(operation))
	h.metrics.RecordOperationFinalized()
	return nil
}
