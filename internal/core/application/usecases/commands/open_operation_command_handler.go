package commands

import (
	"context"
	"errors"

	"orehaul/internal/core/domain/model/mineral"
	"orehaul/internal/core/domain/model/operator"
	"orehaul/internal/core/domain/model/transport"
	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/core/domain/services"
	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"
)

// OpenOperationCommandHandler handles the business logic for opening a
// transport operation. Builds the load, resolves the hauling vehicle and
// creates the operation in Open status.
//
// The capacity check is deliberately not part of opening: an operation may
// exist transiently overweight until the separate validation step runs.
//
// Example:
//
//	handler := NewOpenOperationCommandHandler(
//	    operatorRepository, vehicleRepository, operationRepository, dispatcher, appMetrics)
//	cmd, _ := NewOpenOperationCommand("123", "", "Plata", 1.0, 25, 40)
//	operationID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoSuitableVehicle):
//	    log.Println("No rostered vehicle can haul this load")
//	case err != nil:
//	    log.Printf("Opening failed: %v", err)
//	default:
//	    log.Printf("Operation %d opened", operationID)
//	}
type OpenOperationCommandHandler struct {
	operatorRepository  ports.OperatorRepository
	vehicleRepository   ports.VehicleRepository
	operationRepository ports.OperationRepository
	dispatcher          services.VehicleDispatcher
	metrics             *metrics.Metrics
}

// NewOpenOperationCommandHandler creates a handler for opening transport
// operations.
func NewOpenOperationCommandHandler(
	operatorRepository ports.OperatorRepository,
	vehicleRepository ports.VehicleRepository,
	operationRepository ports.OperationRepository,
	dispatcher services.VehicleDispatcher,
	m *metrics.Metrics,
) OpenOperationCommandHandler {
	return OpenOperationCommandHandler{
		operatorRepository:  operatorRepository,
		vehicleRepository:   vehicleRepository,
		operationRepository: operationRepository,
		dispatcher:          dispatcher,
		metrics:             m,
	}
}

// Handle processes the operation opening command and returns the id of the
// created operation.
// Resolves the vehicle either by the pinned fleet identifier or through the
// dispatcher over the operator's roster, creates the operation and moves
// the vehicle to InTransit.
func (h OpenOperationCommandHandler) Handle(ctx context.Context, cmd OpenOperationCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	member, err := h.operatorRepository.Get(ctx, cmd.OperatorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, ErrOperatorNotFound
	}
	if err != nil {
		return 0, err
	}

	load, err := mineral.NewLoad(cmd.MineralType(), cmd.HumidityPct(), cmd.WeightTons())
	if err != nil {
		return 0, err
	}

	v, err := h.resolveVehicle(ctx, cmd, member, load)
	if err != nil {
		return 0, err
	}

	operation, err := transport.NewOperation(member, v, load, cmd.DistanceKm())
	if err != nil {
		return 0, err
	}

	if err := h.operationRepository.Add(ctx, operation); err != nil {
		return 0, err
	}

	if err := v.ChangeState(vehicle.StateInTransit); err != nil {
		return 0, err
	}
	if err := h.vehicleRepository.Update(ctx, v); err != nil {
		return 0, err
	}

	h.metrics.RecordOperationOpened()
	return operation.ID(), nil
}

// resolveVehicle returns the pinned vehicle when the command names one, and
// otherwise lets the dispatcher pick the best fit from the operator's
// roster.
func (h OpenOperationCommandHandler) resolveVehicle(
	ctx context.Context,
	cmd OpenOperationCommand,
	member operator.Operator,
	load *mineral.Load,
) (vehicle.Vehicle, error) {
	if cmd.VehicleID() == "" {
		return h.dispatcher.Dispatch(load, cmd.DistanceKm(), member.Vehicles())
	}

	v, err := h.vehicleRepository.Get(ctx, cmd.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}

	return v, nil
}
