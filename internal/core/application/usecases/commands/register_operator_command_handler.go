package commands

import (
	"context"
	"fmt"

	"orehaul/internal/core/domain/model/operator"
	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"

	"go.uber.org/zap"
)

// RegisterOperatorCommandHandler handles the business logic for crew
// registration. Constructs the personnel variant requested by the command
// and persists it.
//
// Example:
//
//	handler := NewRegisterOperatorCommandHandler(operatorRepository, logger, appMetrics)
//	cmd, _ := NewRegisterOperatorCommand("transport_supervisor", "María", "456", "SUP")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("operator registration failed: %w", err)
//	}
type RegisterOperatorCommandHandler struct {
	operatorRepository ports.OperatorRepository
	logger             *zap.Logger
	metrics            *metrics.Metrics
}

// NewRegisterOperatorCommandHandler creates a handler for crew registration.
// The logger is handed to every constructed operator so registration side
// effects end up in the application log.
func NewRegisterOperatorCommandHandler(
	operatorRepository ports.OperatorRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) RegisterOperatorCommandHandler {
	return RegisterOperatorCommandHandler{
		operatorRepository: operatorRepository,
		logger:             logger,
		metrics:            m,
	}
}

// Handle processes the operator registration command.
// Builds the personnel variant matching the command's role and adds it to
// the repository. A duplicate national id surfaces as the repository's
// conflict error.
func (h RegisterOperatorCommandHandler) Handle(ctx context.Context, cmd RegisterOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	member, err := h.buildOperator(cmd)
	if err != nil {
		return err
	}

	if err := h.operatorRepository.Add(ctx, member); err != nil {
		return err
	}

	h.metrics.RecordOperatorRegistered(string(cmd.Role()))
	return nil
}

// buildOperator constructs the concrete personnel variant for the command.
func (h RegisterOperatorCommandHandler) buildOperator(cmd RegisterOperatorCommand) (operator.Operator, error) {
	switch cmd.Role() {
	case operator.RoleTruckOperator:
		return operator.NewTruckOperator(cmd.Name(), cmd.NationalID(), cmd.License(), h.logger)
	case operator.RoleTransportSupervisor:
		return operator.NewTransportSupervisor(cmd.Name(), cmd.NationalID(), cmd.License(), h.logger)
	case operator.RoleWarehouseController:
		return operator.NewWarehouseController(cmd.Name(), cmd.NationalID(), cmd.License(), h.logger)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a known operator role", cmd.Role()))
	}
}
