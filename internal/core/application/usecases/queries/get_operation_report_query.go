package queries

import (
	"errors"

	"orehaul/internal/pkg/guard"
)

var (
	ErrGetOperationReportQueryIsNotConstructed = errors.New(
		"GetOperationReportQuery must be created via NewGetOperationReportQuery constructor",
	)
	ErrOperationIDIsRequired = errors.New("operation id is required")
)

// GetOperationReportQuery represents a query to build the yield report of a
// single transport operation.
type GetOperationReportQuery struct { //nolint:recvcheck //using for validation
	operationID uint64

	guard guard.ConstructorGuard
}

// NewGetOperationReportQuery creates a validated query for an operation
// report.
func NewGetOperationReportQuery(operationID uint64) (GetOperationReportQuery, error) {
	query := GetOperationReportQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOperationID(operationID); err != nil {
		return GetOperationReportQuery{}, err
	}

	return query, nil
}

// Validate checks that the query was constructed via the constructor.
func (q GetOperationReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationReportQueryIsNotConstructed)
}

// OperationID returns the identifier of the operation to report on.
func (q GetOperationReportQuery) OperationID() uint64 {
	return q.operationID
}

func (q *GetOperationReportQuery) setOperationID(operationID uint64) error {
	if operationID == 0 {
		return ErrOperationIDIsRequired
	}

	q.operationID = operationID

	return nil
}
