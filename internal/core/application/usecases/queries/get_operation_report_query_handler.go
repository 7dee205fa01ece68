package queries

import (
	"context"
	"errors"
	"fmt"

	"orehaul/internal/core/domain/model/transport"
	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
)

var ErrOperationNotFound = errors.New("operation not found")

// GetOperationReportQueryHandler builds yield reports for transport
// operations.
type GetOperationReportQueryHandler struct {
	operationRepository ports.OperationRepository
}

// NewGetOperationReportQueryHandler creates a handler for operation report
// queries.
func NewGetOperationReportQueryHandler(
	operationRepository ports.OperationRepository,
) GetOperationReportQueryHandler {
	return GetOperationReportQueryHandler{operationRepository: operationRepository}
}

// Handle executes the query and returns the report of the requested
// operation. Reports can be generated for open and finalized operations
// alike.
func (h GetOperationReportQueryHandler) Handle(
	ctx context.Context,
	query GetOperationReportQuery,
) (transport.Report, error) {
	if err := query.Validate(); err != nil {
		return transport.Report{}, err
	}

	operation, err := h.operationRepository.Get(ctx, query.OperationID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return transport.Report{}, ErrOperationNotFound
		}

		return transport.Report{}, fmt.Errorf("failed to get operation: %w", err)
	}

	return operation.GenerateReport(), nil
}
