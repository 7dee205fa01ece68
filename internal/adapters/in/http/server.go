// Package http exposes the transport operations API over HTTP.
// It translates JSON requests into commands and queries, maps domain errors
// onto status codes and serves the OpenAPI contract the API is tested
// against.
package http

import (
	"net/http"
	"strconv"

	"orehaul/internal/core/application/usecases/commands"
	"orehaul/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerVehicleHandler   commands.RegisterVehicleCommandHandler
	registerOperatorHandler  commands.RegisterOperatorCommandHandler
	assignVehicleHandler     commands.AssignVehicleCommandHandler
	openOperationHandler     commands.OpenOperationCommandHandler
	validateOperationHandler commands.ValidateOperationCommandHandler
	finalizeOperationHandler commands.FinalizeOperationCommandHandler
	ingestOperationHandler   commands.IngestOperationCommandHandler

	// Query handlers
	getFleetHandler              queries.GetFleetQueryHandler
	getOpenOperationsHandler     queries.GetOpenOperationsQueryHandler
	getWarehouseInventoryHandler queries.GetWarehouseInventoryQueryHandler
	getOperationReportHandler    queries.GetOperationReportQueryHandler

	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	registerOperatorHandler commands.RegisterOperatorCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	openOperationHandler commands.OpenOperationCommandHandler,
	validateOperationHandler commands.ValidateOperationCommandHandler,
	finalizeOperationHandler commands.FinalizeOperationCommandHandler,
	ingestOperationHandler commands.IngestOperationCommandHandler,
	getFleetHandler queries.GetFleetQueryHandler,
	getOpenOperationsHandler queries.GetOpenOperationsQueryHandler,
	getWarehouseInventoryHandler queries.GetWarehouseInventoryQueryHandler,
	getOperationReportHandler queries.GetOperationReportQueryHandler,
	logger *zap.Logger,
) *Server {
	return &Server{
		registerVehicleHandler:       registerVehicleHandler,
		registerOperatorHandler:      registerOperatorHandler,
		assignVehicleHandler:         assignVehicleHandler,
		openOperationHandler:         openOperationHandler,
		validateOperationHandler:     validateOperationHandler,
		finalizeOperationHandler:     finalizeOperationHandler,
		ingestOperationHandler:       ingestOperationHandler,
		getFleetHandler:              getFleetHandler,
		getOpenOperationsHandler:     getOpenOperationsHandler,
		getWarehouseInventoryHandler: getWarehouseInventoryHandler,
		getOperationReportHandler:    getOperationReportHandler,
		logger:                       logger,
	}
}

// RegisterRoutes attaches every API route and the request validator to the
// echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)
	e.GET("/openapi.yaml", s.OpenAPISpec)

	api := e.Group("/api/v1")
	api.POST("/vehicles", s.RegisterVehicle)
	api.GET("/vehicles", s.GetFleet)
	api.POST("/operators", s.RegisterOperator)
	api.POST("/operators/:operator_id/vehicles", s.AssignVehicle)
	api.POST("/operations", s.OpenOperation)
	api.GET("/operations", s.GetOpenOperations)
	api.POST("/operations/:operation_id/validation", s.ValidateOperation)
	api.POST("/operations/:operation_id/finalization", s.FinalizeOperation)
	api.POST("/operations/:operation_id/ingestion", s.IngestOperation)
	api.GET("/operations/:operation_id/report", s.GetOperationReport)
	api.GET("/warehouse/inventory", s.GetWarehouseInventory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPISpec handles GET /openapi.yaml - serves the embedded API contract.
func (s *Server) OpenAPISpec(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openapiSpec)
}

// RegisterVehicle handles POST /api/v1/vehicles - adds a vehicle to the fleet.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req RegisterVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRegisterVehicleCommand(
		req.Kind,
		req.VehicleID,
		req.CapacityTons,
		commands.VehicleSpec{
			ChassisResistancePct: req.ChassisResistancePct,
			AxleCount:            req.AxleCount,
			Suspension:           req.Suspension,
		},
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid vehicle data: "+err.Error())
	}

	if err := s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetFleet handles GET /api/v1/vehicles - retrieves every registered vehicle.
func (s *Server) GetFleet(ctx echo.Context) error {
	query := queries.NewGetFleetQuery()

	fleet, err := s.getFleetHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	response := make([]VehicleResponse, len(fleet))
	for i, v := range fleet {
		response[i] = VehicleResponse{
			VehicleID:    v.VehicleID,
			Kind:         string(v.Kind),
			CapacityTons: v.CapacityTons,
			State:        v.State.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterOperator handles POST /api/v1/operators - registers a crew member.
func (s *Server) RegisterOperator(ctx echo.Context) error {
	var req RegisterOperatorRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRegisterOperatorCommand(req.Role, req.Name, req.NationalID, req.License)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid operator data: "+err.Error())
	}

	if err := s.registerOperatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignVehicle handles POST /api/v1/operators/:operator_id/vehicles -
// associates a vehicle with an operator.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var req AssignVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAssignVehicleCommand(ctx.Param("operator_id"), req.VehicleID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid assignment data: "+err.Error())
	}

	if err := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenOperation handles POST /api/v1/operations - opens a transport operation.
func (s *Server) OpenOperation(ctx echo.Context) error {
	var req OpenOperationRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewOpenOperationCommand(
		req.OperatorID,
		req.VehicleID,
		req.MineralType,
		req.HumidityPct,
		req.WeightTons,
		req.DistanceKm,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid operation data: "+err.Error())
	}

	operationID, err := s.openOperationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OperationOpenedResponse{OperationID: operationID})
}

// GetOpenOperations handles GET /api/v1/operations - retrieves hauls still
// on the road.
func (s *Server) GetOpenOperations(ctx echo.Context) error {
	query := queries.NewGetOpenOperationsQuery()

	operations, err := s.getOpenOperationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	response := make([]OpenOperationResponse, len(operations))
	for i, operation := range operations {
		response[i] = OpenOperationResponse{
			OperationID: operation.OperationID,
			OperatorID:  operation.OperatorID,
			VehicleID:   operation.VehicleID,
			MineralType: operation.MineralType,
			WeightTons:  operation.WeightTons,
			DistanceKm:  operation.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ValidateOperation handles POST /api/v1/operations/:operation_id/validation -
// checks the load against the vehicle capacity.
func (s *Server) ValidateOperation(ctx echo.Context) error {
	operationID, err := operationIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewValidateOperationCommand(operationID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.validateOperationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeOperation handles POST /api/v1/operations/:operation_id/finalization -
// closes out a haul.
func (s *Server) FinalizeOperation(ctx echo.Context) error {
	operationID, err := operationIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewFinalizeOperationCommand(operationID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.finalizeOperationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IngestOperation handles POST /api/v1/operations/:operation_id/ingestion -
// checks the finalized load into the warehouse.
func (s *Server) IngestOperation(ctx echo.Context) error {
	operationID, err := operationIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewIngestOperationCommand(operationID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.ingestOperationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOperationReport handles GET /api/v1/operations/:operation_id/report -
// retrieves the yield report of one operation.
func (s *Server) GetOperationReport(ctx echo.Context) error {
	operationID, err := operationIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOperationReportQuery(operationID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	report, err := s.getOperationReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetWarehouseInventory handles GET /api/v1/warehouse/inventory - retrieves
// the stock per mineral type.
func (s *Server) GetWarehouseInventory(ctx echo.Context) error {
	query := queries.NewGetWarehouseInventoryQuery()

	inventory, err := s.getWarehouseInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}

	stocks := make([]MineralStockResponse, len(inventory.Stocks))
	for i, stock := range inventory.Stocks {
		stocks[i] = MineralStockResponse{
			MineralType: stock.MineralType,
			Tons:        stock.Tons,
		}
	}

	return ctx.JSON(http.StatusOK, InventoryResponse{
		Stocks:    stocks,
		TotalTons: inventory.TotalTons,
	})
}

// handleError logs server-side failures and writes the mapped error body.
func (s *Server) handleError(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Request().URL.Path),
			zap.Error(err),
		)
	}
	return errorJSON(ctx, status, err.Error())
}

// operationIDParam parses the :operation_id path parameter.
func operationIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("operation_id"), 10, 64)
	if err != nil {
		return 0, errParamNotInteger
	}
	return id, nil
}
