package cmd

import (
	"orehaul/internal/adapters/out/kafka"
	"orehaul/internal/adapters/out/memory"
	"orehaul/internal/core/application/usecases/commands"
	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/core/domain/model/warehouse"
	"orehaul/internal/core/domain/services"
	"orehaul/internal/core/events"
	"orehaul/internal/jobs"
	"orehaul/internal/pkg/metrics"

	"go.uber.org/zap"
)

type CompositionRoot struct {
	config     Config
	store      *memory.Store
	wh         *warehouse.Warehouse
	metrics    *metrics.Metrics
	dispatcher services.VehicleDispatcher
	publisher  events.Publisher
	producer   *kafka.Producer
	logger     *zap.Logger
}

// NewCompositionRoot wires the in-memory store, the warehouse and the event
// publisher. Without a Kafka host the publisher is a no-op and events stay
// local.
func NewCompositionRoot(config Config, logger *zap.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		config:     config,
		store:      memory.NewStore(),
		wh:         warehouse.NewWarehouse(),
		metrics:    metrics.New(),
		dispatcher: services.NewVehicleDispatcher(),
		publisher:  events.NopPublisher{},
		logger:     logger,
	}

	if config.KafkaHost != "" {
		producer, err := kafka.NewProducer(config.KafkaHost, config.KafkaOperationEventsTopic, logger)
		if err != nil {
			return CompositionRoot{}, err
		}
		root.producer = producer
		root.publisher = producer
	}

	return root, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	return commands.NewRegisterVehicleCommandHandler(c.store.VehicleRepository(), c.metrics)
}

func (c *CompositionRoot) CreateRegisterOperatorCommandHandler() commands.RegisterOperatorCommandHandler {
	return commands.NewRegisterOperatorCommandHandler(c.store.OperatorRepository(), c.logger, c.metrics)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	return commands.NewAssignVehicleCommandHandler(c.store.OperatorRepository(), c.store.VehicleRepository())
}

func (c *CompositionRoot) CreateOpenOperationCommandHandler() commands.OpenOperationCommandHandler {
	return commands.NewOpenOperationCommandHandler(
		c.store.OperatorRepository(),
		c.store.VehicleRepository(),
		c.store.OperationRepository(),
		c.dispatcher,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateValidateOperationCommandHandler() commands.ValidateOperationCommandHandler {
	return commands.NewValidateOperationCommandHandler(c.store.OperationRepository(), c.metrics)
}

func (c *CompositionRoot) CreateFinalizeOperationCommandHandler() commands.FinalizeOperationCommandHandler {
	return commands.NewFinalizeOperationCommandHandler(
		c.store.OperationRepository(),
		c.store.OperatorRepository(),
		c.store.VehicleRepository(),
		c.publisher,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateIngestOperationCommandHandler() commands.IngestOperationCommandHandler {
	return commands.NewIngestOperationCommandHandler(c.store.OperationRepository(), c.wh, c.publisher, c.metrics)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.store.VehicleRepository())
}

func (c *CompositionRoot) CreateGetOpenOperationsQueryHandler() queries.GetOpenOperationsQueryHandler {
	return queries.NewGetOpenOperationsQueryHandler(c.store.OperationRepository())
}

func (c *CompositionRoot) CreateGetWarehouseInventoryQueryHandler() queries.GetWarehouseInventoryQueryHandler {
	return queries.NewGetWarehouseInventoryQueryHandler(c.wh)
}

func (c *CompositionRoot) CreateGetOperationReportQueryHandler() queries.GetOperationReportQueryHandler {
	return queries.NewGetOperationReportQueryHandler(c.store.OperationRepository())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetWarehouseInventoryQueryHandler(),
		c.metrics,
		c.config.StockReportSchedule,
		c.config.MetricsRefreshSchedule,
		c.logger,
	)
}

// Close releases outbound resources, currently only the Kafka producer.
func (c *CompositionRoot) Close() {
	if c.producer != nil {
		c.producer.Close()
	}
}
