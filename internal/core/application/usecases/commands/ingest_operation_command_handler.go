package commands

import (
	"context"
	"errors"

	"orehaul/internal/core/domain/model/warehouse"
	"orehaul/internal/core/events"
	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"
)

// IngestOperationCommandHandler handles the business logic for warehouse
// ingestion. The warehouse itself rejects operations that are not finalized
// and operations whose cargo was already counted, so this handler only
// orchestrates the call and emits the follow-up event.
//
// Example:
//
//	handler := NewIngestOperationCommandHandler(
//	    operationRepository, stock, publisher, appMetrics)
//	cmd, _ := NewIngestOperationCommand(operationID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    log.Println("Operation not finalized or already ingested")
//	}
type IngestOperationCommandHandler struct {
	operationRepository ports.OperationRepository
	warehouse           *warehouse.Warehouse
	publisher           events.Publisher
	metrics             *metrics.Metrics
}

// NewIngestOperationCommandHandler creates a handler for warehouse
// ingestion.
func NewIngestOperationCommandHandler(
	operationRepository ports.OperationRepository,
	wh *warehouse.Warehouse,
	publisher events.Publisher,
	m *metrics.Metrics,
) IngestOperationCommandHandler {
	return IngestOperationCommandHandler{
		operationRepository: operationRepository,
		warehouse:           wh,
		publisher:           publisher,
		metrics:             m,
	}
}

// Handle processes the ingestion command.
// Returns ErrOperationNotFound for unknown ids and the warehouse's invalid
// state error when the operation is not finalized or was already ingested.
// On success a cargo_ingested event is published and the ingested tonnage
// is added to the warehouse metrics.
func (h IngestOperationCommandHandler) Handle(ctx context.Context, cmd IngestOperationCommand) error {
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

	if err := h.warehouse.Ingest(operation); err != nil {
		return err
	}

	h.publisher.Publish(events.NewCargoIngested(operation))
	h.metrics.RecordCargoIngested(operation.Load().MineralType(), operation.Load().WeightTons())
	return nil
}
