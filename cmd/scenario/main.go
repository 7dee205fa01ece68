package main

import (
	"context"

	"orehaul/cmd"
	"orehaul/internal/scenario"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

// main runs the reference scenario against a fresh in-process wiring: two
// hauls reach the warehouse, a third is rejected at the capacity check.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	root, err := cmd.NewCompositionRoot(cmd.Config{}, logger)
	if err != nil {
		logger.Fatal("failed to build composition root", zap.Error(err))
	}
	defer root.Close()

	runner := scenario.NewRunner(scenario.Handlers{
		RegisterVehicle:   root.CreateRegisterVehicleCommandHandler(),
		RegisterOperator:  root.CreateRegisterOperatorCommandHandler(),
		AssignVehicle:     root.CreateAssignVehicleCommandHandler(),
		OpenOperation:     root.CreateOpenOperationCommandHandler(),
		ValidateOperation: root.CreateValidateOperationCommandHandler(),
		FinalizeOperation: root.CreateFinalizeOperationCommandHandler(),
		IngestOperation:   root.CreateIngestOperationCommandHandler(),
		GetFleet:          root.CreateGetFleetQueryHandler(),
		GetOpenOperations: root.CreateGetOpenOperationsQueryHandler(),
		GetInventory:      root.CreateGetWarehouseInventoryQueryHandler(),
		GetReport:         root.CreateGetOperationReportQueryHandler(),
	}, logger)

	result, err := runner.Run(context.Background())
	if err != nil {
		logger.Fatal("scenario failed", zap.Error(err))
	}

	logger.Info("scenario finished",
		zap.Int("completed_operations", len(result.CompletedOperationIDs)),
		zap.Int("rejected_operations", len(result.RejectedOperationIDs)),
	)
}
