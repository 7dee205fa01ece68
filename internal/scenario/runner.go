// Package scenario drives the reference end-to-end flow through the
// application handlers: register the fleet and the crew, haul copper and
// silver to the warehouse and show a light truck rejecting a load over its
// capacity.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"orehaul/internal/core/application/usecases/commands"
	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/pkg/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handlers bundles the application entry points the runner drives. The
// runner never touches repositories or aggregates directly.
type Handlers struct {
	RegisterVehicle   commands.RegisterVehicleCommandHandler
	RegisterOperator  commands.RegisterOperatorCommandHandler
	AssignVehicle     commands.AssignVehicleCommandHandler
	OpenOperation     commands.OpenOperationCommandHandler
	ValidateOperation commands.ValidateOperationCommandHandler
	FinalizeOperation commands.FinalizeOperationCommandHandler
	IngestOperation   commands.IngestOperationCommandHandler
	GetFleet          queries.GetFleetQueryHandler
	GetOpenOperations queries.GetOpenOperationsQueryHandler
	GetInventory      queries.GetWarehouseInventoryQueryHandler
	GetReport         queries.GetOperationReportQueryHandler
}

// Result reports which operations the scenario completed end to end and
// which were rejected at validation.
type Result struct {
	CompletedOperationIDs []uint64
	RejectedOperationIDs  []uint64
}

// Runner executes the reference scenario.
type Runner struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewRunner(handlers Handlers, logger *zap.Logger) *Runner {
	return &Runner{handlers: handlers, logger: logger}
}

// haul describes one transport request of the scenario.
type haul struct {
	operatorID  string
	vehicleID   string
	mineralType string
	humidityPct float64
	weightTons  float64
	distanceKm  float64
}

// Run registers the fleet and the crew, rosters the vehicles and processes
// three hauls: copper and silver go open → validate → finalize → ingest,
// while the gold load exceeds the light truck's capacity and stops at
// validation. Every log line of one run carries the same run_id.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	logger := r.logger.With(zap.String("run_id", uuid.NewString()))

	if err := r.registerFleet(ctx); err != nil {
		return Result{}, err
	}
	if err := r.registerCrew(ctx); err != nil {
		return Result{}, err
	}
	if err := r.rosterVehicles(ctx); err != nil {
		return Result{}, err
	}

	hauls := []haul{
		{operatorID: "123", vehicleID: "T001", mineralType: "Cobre", humidityPct: 2.5, weightTons: 15, distanceKm: 12},
		{operatorID: "456", vehicleID: "V010", mineralType: "Plata", humidityPct: 1.0, weightTons: 25, distanceKm: 40},
		{operatorID: "789", vehicleID: "L100", mineralType: "Oro", humidityPct: 0.8, weightTons: 6, distanceKm: 8},
	}

	var result Result
	for _, h := range hauls {
		operationID, completed, err := r.processHaul(ctx, logger, h)
		if err != nil {
			return Result{}, err
		}
		if completed {
			result.CompletedOperationIDs = append(result.CompletedOperationIDs, operationID)
		} else {
			result.RejectedOperationIDs = append(result.RejectedOperationIDs, operationID)
		}
	}

	if err := r.logFinalState(ctx, logger); err != nil {
		return Result{}, err
	}

	return result, nil
}

func (r *Runner) registerFleet(ctx context.Context) error {
	vehicles := []struct {
		kind         string
		vehicleID    string
		capacityTons float64
		spec         commands.VehicleSpec
	}{
		{kind: "tipping_truck", vehicleID: "T001", capacityTons: 20, spec: commands.VehicleSpec{ChassisResistancePct: 85}},
		{kind: "articulated_dumper", vehicleID: "V010", capacityTons: 35, spec: commands.VehicleSpec{AxleCount: 4}},
		{kind: "light_truck", vehicleID: "L100", capacityTons: 5, spec: commands.VehicleSpec{Suspension: "Hidráulica"}},
	}

	for _, v := range vehicles {
		cmd, err := commands.NewRegisterVehicleCommand(v.kind, v.vehicleID, v.capacityTons, v.spec)
		if err != nil {
			return fmt.Errorf("register vehicle %s: %w", v.vehicleID, err)
		}
		if err := r.handlers.RegisterVehicle.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("register vehicle %s: %w", v.vehicleID, err)
		}
	}

	return nil
}

func (r *Runner) registerCrew(ctx context.Context) error {
	members := []struct {
		role       string
		name       string
		nationalID string
		license    string
	}{
		{role: "truck_operator", name: "Juan", nationalID: "123", license: "AII"},
		{role: "transport_supervisor", name: "María", nationalID: "456", license: "SUP"},
		{role: "warehouse_controller", name: "Luis", nationalID: "789", license: "CTRL"},
	}

	for _, m := range members {
		cmd, err := commands.NewRegisterOperatorCommand(m.role, m.name, m.nationalID, m.license)
		if err != nil {
			return fmt.Errorf("register operator %s: %w", m.nationalID, err)
		}
		if err := r.handlers.RegisterOperator.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("register operator %s: %w", m.nationalID, err)
		}
	}

	return nil
}

func (r *Runner) rosterVehicles(ctx context.Context) error {
	assignments := []struct {
		operatorID string
		vehicleID  string
	}{
		{operatorID: "123", vehicleID: "T001"},
		// rostering the same vehicle twice is a no-op
		{operatorID: "123", vehicleID: "T001"},
		{operatorID: "456", vehicleID: "V010"},
		{operatorID: "789", vehicleID: "L100"},
	}

	for _, a := range assignments {
		cmd, err := commands.NewAssignVehicleCommand(a.operatorID, a.vehicleID)
		if err != nil {
			return fmt.Errorf("assign vehicle %s to %s: %w", a.vehicleID, a.operatorID, err)
		}
		if err := r.handlers.AssignVehicle.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("assign vehicle %s to %s: %w", a.vehicleID, a.operatorID, err)
		}
	}

	return nil
}

// processHaul runs one haul through its lifecycle. A capacity rejection at
// validation is an expected outcome, not an error: the operation stays open
// and the vehicle stays on the road.
func (r *Runner) processHaul(ctx context.Context, logger *zap.Logger, h haul) (uint64, bool, error) {
	logger = logger.With(
		zap.String("operator_id", h.operatorID),
		zap.String("vehicle_id", h.vehicleID),
		zap.String("mineral_type", h.mineralType),
	)

	openCmd, err := commands.NewOpenOperationCommand(
		h.operatorID, h.vehicleID, h.mineralType, h.humidityPct, h.weightTons, h.distanceKm)
	if err != nil {
		return 0, false, fmt.Errorf("open operation: %w", err)
	}

	operationID, err := r.handlers.OpenOperation.Handle(ctx, openCmd)
	if err != nil {
		return 0, false, fmt.Errorf("open operation: %w", err)
	}
	logger = logger.With(zap.Uint64("operation_id", operationID))
	logger.Info("operation opened")

	validateCmd, err := commands.NewValidateOperationCommand(operationID)
	if err != nil {
		return 0, false, err
	}
	if err := r.handlers.ValidateOperation.Handle(ctx, validateCmd); err != nil {
		if errors.Is(err, errs.ErrCapacityExceeded) {
			logger.Warn("load rejected", zap.Error(err))
			return operationID, false, nil
		}
		return 0, false, fmt.Errorf("validate operation %d: %w", operationID, err)
	}

	finalizeCmd, err := commands.NewFinalizeOperationCommand(operationID)
	if err != nil {
		return 0, false, err
	}
	if err := r.handlers.FinalizeOperation.Handle(ctx, finalizeCmd); err != nil {
		return 0, false, fmt.Errorf("finalize operation %d: %w", operationID, err)
	}

	ingestCmd, err := commands.NewIngestOperationCommand(operationID)
	if err != nil {
		return 0, false, err
	}
	if err := r.handlers.IngestOperation.Handle(ctx, ingestCmd); err != nil {
		return 0, false, fmt.Errorf("ingest operation %d: %w", operationID, err)
	}

	reportQuery, err := queries.NewGetOperationReportQuery(operationID)
	if err != nil {
		return 0, false, err
	}
	report, err := r.handlers.GetReport.Handle(ctx, reportQuery)
	if err != nil {
		return 0, false, fmt.Errorf("report for operation %d: %w", operationID, err)
	}
	logger.Info("haul completed",
		zap.Float64("weight_tons", report.WeightTons),
		zap.Float64("yield", report.Yield),
	)

	return operationID, true, nil
}

func (r *Runner) logFinalState(ctx context.Context, logger *zap.Logger) error {
	fleet, err := r.handlers.GetFleet.Handle(ctx, queries.NewGetFleetQuery())
	if err != nil {
		return err
	}
	for _, v := range fleet {
		logger.Info("vehicle state",
			zap.String("vehicle_id", v.VehicleID),
			zap.String("kind", string(v.Kind)),
			zap.String("state", v.State.String()),
		)
	}

	open, err := r.handlers.GetOpenOperations.Handle(ctx, queries.NewGetOpenOperationsQuery())
	if err != nil {
		return err
	}
	logger.Info("operations still open", zap.Int("count", len(open)))

	inventory, err := r.handlers.GetInventory.Handle(ctx, queries.NewGetWarehouseInventoryQuery())
	if err != nil {
		return err
	}

	fields := make([]zap.Field, 0, len(inventory.Stocks)+1)
	for _, stock := range inventory.Stocks {
		fields = append(fields, zap.Float64(stock.MineralType, stock.Tons))
	}
	fields = append(fields, zap.Float64("total_tons", inventory.TotalTons))
	logger.Info("warehouse inventory", fields...)

	return nil
}
