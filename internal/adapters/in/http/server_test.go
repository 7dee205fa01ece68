package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	httpserver "orehaul/internal/adapters/in/http"
	"orehaul/internal/adapters/out/memory"
	"orehaul/internal/core/application/usecases/commands"
	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/core/domain/model/warehouse"
	"orehaul/internal/core/domain/services"
	"orehaul/internal/core/events"
	"orehaul/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewStore()
	wh := warehouse.NewWarehouse()
	appMetrics := metrics.New()
	logger := zap.NewNop()
	publisher := events.NopPublisher{}

	server := httpserver.NewServer(
		commands.NewRegisterVehicleCommandHandler(store.VehicleRepository(), appMetrics),
		commands.NewRegisterOperatorCommandHandler(store.OperatorRepository(), logger, appMetrics),
		commands.NewAssignVehicleCommandHandler(store.OperatorRepository(), store.VehicleRepository()),
		commands.NewOpenOperationCommandHandler(
			store.OperatorRepository(),
			store.VehicleRepository(),
			store.OperationRepository(),
			services.NewVehicleDispatcher(),
			appMetrics,
		),
		commands.NewValidateOperationCommandHandler(store.OperationRepository(), appMetrics),
		commands.NewFinalizeOperationCommandHandler(
			store.OperationRepository(),
			store.OperatorRepository(),
			store.VehicleRepository(),
			publisher,
			appMetrics,
		),
		commands.NewIngestOperationCommandHandler(store.OperationRepository(), wh, publisher, appMetrics),
		queries.NewGetFleetQueryHandler(store.VehicleRepository()),
		queries.NewGetOpenOperationsQueryHandler(store.OperationRepository()),
		queries.NewGetWarehouseInventoryQueryHandler(wh),
		queries.NewGetOperationReportQueryHandler(store.OperationRepository()),
		logger,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	return rec
}

func registerTippingTruck(t *testing.T, e *echo.Echo, vehicleID string, capacityTons float64) {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/v1/vehicles", httpserver.RegisterVehicleRequest{
		Kind:                 "tipping_truck",
		VehicleID:            vehicleID,
		CapacityTons:         capacityTons,
		ChassisResistancePct: 85,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func registerTruckOperator(t *testing.T, e *echo.Echo, name, nationalID string) {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operators", httpserver.RegisterOperatorRequest{
		Role:       "truck_operator",
		Name:       name,
		NationalID: nationalID,
		License:    "AII",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func openOperation(t *testing.T, e *echo.Echo, req httpserver.OpenOperationRequest) uint64 {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operations", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var opened httpserver.OperationOpenedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opened))
	require.Positive(t, opened.OperationID)

	return opened.OperationID
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestOpenAPISpec_Served(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/openapi.yaml", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "yaml")
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestRegisterVehicle_Created(t *testing.T) {
	// Arrange
	e := newTestServer(t)

	// Act
	rec := doRequest(t, e, http.MethodPost, "/api/v1/vehicles", httpserver.RegisterVehicleRequest{
		Kind:                 "tipping_truck",
		VehicleID:            "T001",
		CapacityTons:         20,
		ChassisResistancePct: 85,
	})

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)

	fleetRec := doRequest(t, e, http.MethodGet, "/api/v1/vehicles", nil)
	require.Equal(t, http.StatusOK, fleetRec.Code)

	var fleet []httpserver.VehicleResponse
	require.NoError(t, json.Unmarshal(fleetRec.Body.Bytes(), &fleet))
	require.Len(t, fleet, 1)
	assert.Equal(t, "T001", fleet[0].VehicleID)
	assert.Equal(t, "tipping_truck", fleet[0].Kind)
	assert.InDelta(t, 20.0, fleet[0].CapacityTons, 0.0001)
	assert.Equal(t, "Available", fleet[0].State)
}

func TestRegisterVehicle_UnknownKind_BadRequest(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/vehicles", httpserver.RegisterVehicleRequest{
		Kind:         "hovercraft",
		VehicleID:    "H001",
		CapacityTons: 10,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.Contains(t, body.Message, "kind")
}

func TestRegisterVehicle_MissingFields_BadRequest(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/vehicles", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterVehicle_Duplicate_Conflict(t *testing.T) {
	e := newTestServer(t)
	registerTippingTruck(t, e, "T001", 20)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/vehicles", httpserver.RegisterVehicleRequest{
		Kind:                 "tipping_truck",
		VehicleID:            "T001",
		CapacityTons:         20,
		ChassisResistancePct: 85,
	})

	require.Equal(t, http.StatusConflict, rec.Code)

	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Code)
}

func TestRegisterOperator_Created(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operators", httpserver.RegisterOperatorRequest{
		Role:       "transport_supervisor",
		Name:       "María",
		NationalID: "456",
		License:    "SUP",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterOperator_UnknownRole_BadRequest(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operators", httpserver.RegisterOperatorRequest{
		Role:       "astronaut",
		Name:       "Juan",
		NationalID: "123",
		License:    "AII",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignVehicle_NoContent(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operators/123/vehicles",
		httpserver.AssignVehicleRequest{VehicleID: "T001"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAssignVehicle_OperatorNotFound(t *testing.T) {
	e := newTestServer(t)
	registerTippingTruck(t, e, "T001", 20)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operators/999/vehicles",
		httpserver.AssignVehicleRequest{VehicleID: "T001"})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "operator not found", body.Message)
}

func TestOpenOperation_PinnedVehicle_Created(t *testing.T) {
	// Arrange
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)

	// Act
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	// Assert
	openRec := doRequest(t, e, http.MethodGet, "/api/v1/operations", nil)
	require.Equal(t, http.StatusOK, openRec.Code)

	var open []httpserver.OpenOperationResponse
	require.NoError(t, json.Unmarshal(openRec.Body.Bytes(), &open))
	require.Len(t, open, 1)
	assert.Equal(t, operationID, open[0].OperationID)
	assert.Equal(t, "123", open[0].OperatorID)
	assert.Equal(t, "T001", open[0].VehicleID)
	assert.Equal(t, "Cobre", open[0].MineralType)

	fleetRec := doRequest(t, e, http.MethodGet, "/api/v1/vehicles", nil)
	var fleet []httpserver.VehicleResponse
	require.NoError(t, json.Unmarshal(fleetRec.Body.Bytes(), &fleet))
	require.Len(t, fleet, 1)
	assert.Equal(t, "InTransit", fleet[0].State)
}

func TestOpenOperation_DispatcherSelectsFromRoster(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)

	assignRec := doRequest(t, e, http.MethodPost, "/api/v1/operators/123/vehicles",
		httpserver.AssignVehicleRequest{VehicleID: "T001"})
	require.Equal(t, http.StatusNoContent, assignRec.Code)

	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	openRec := doRequest(t, e, http.MethodGet, "/api/v1/operations", nil)
	var open []httpserver.OpenOperationResponse
	require.NoError(t, json.Unmarshal(openRec.Body.Bytes(), &open))
	require.Len(t, open, 1)
	assert.Equal(t, operationID, open[0].OperationID)
	assert.Equal(t, "T001", open[0].VehicleID)
}

func TestOpenOperation_EmptyRoster_Conflict(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operations", httpserver.OpenOperationRequest{
		OperatorID:  "123",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOpenOperation_OperatorNotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operations", httpserver.OpenOperationRequest{
		OperatorID:  "999",
		VehicleID:   "T001",
		MineralType: "Cobre",
		WeightTons:  15,
		DistanceKm:  12,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenOperation_ZeroWeight_BadRequest(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operations", httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		WeightTons:  0,
		DistanceKm:  12,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateOperation_LoadFits_NoContent(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	rec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "validation"), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestValidateOperation_CapacityExceeded_UnprocessableEntity(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "L100", 5)
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "L100",
		MineralType: "Oro",
		HumidityPct: 0.8,
		WeightTons:  6,
		DistanceKm:  8,
	})

	rec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "validation"), nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnprocessableEntity, body.Code)
	assert.Contains(t, body.Message, "capacity")
}

func TestValidateOperation_NotInteger_BadRequest(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operations/abc/validation", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateOperation_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/operations/12345/validation", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinalizeOperation_NoContent(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	rec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "finalization"), nil)

	require.Equal(t, http.StatusNoContent, rec.Code)

	// Finalized operations leave the open list and release the vehicle.
	openRec := doRequest(t, e, http.MethodGet, "/api/v1/operations", nil)
	var open []httpserver.OpenOperationResponse
	require.NoError(t, json.Unmarshal(openRec.Body.Bytes(), &open))
	assert.Empty(t, open)

	fleetRec := doRequest(t, e, http.MethodGet, "/api/v1/vehicles", nil)
	var fleet []httpserver.VehicleResponse
	require.NoError(t, json.Unmarshal(fleetRec.Body.Bytes(), &fleet))
	require.Len(t, fleet, 1)
	assert.Equal(t, "Available", fleet[0].State)
}

func TestIngestOperation_FullLifecycle(t *testing.T) {
	// Arrange
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	validateRec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "validation"), nil)
	require.Equal(t, http.StatusNoContent, validateRec.Code)

	finalizeRec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "finalization"), nil)
	require.Equal(t, http.StatusNoContent, finalizeRec.Code)

	// Act
	rec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "ingestion"), nil)

	// Assert
	require.Equal(t, http.StatusNoContent, rec.Code)

	inventoryRec := doRequest(t, e, http.MethodGet, "/api/v1/warehouse/inventory", nil)
	require.Equal(t, http.StatusOK, inventoryRec.Code)

	var inventory httpserver.InventoryResponse
	require.NoError(t, json.Unmarshal(inventoryRec.Body.Bytes(), &inventory))
	require.Len(t, inventory.Stocks, 1)
	assert.Equal(t, "Cobre", inventory.Stocks[0].MineralType)
	assert.InDelta(t, 15.0, inventory.Stocks[0].Tons, 0.0001)
	assert.InDelta(t, 15.0, inventory.TotalTons, 0.0001)
}

func TestIngestOperation_NotFinalized_Conflict(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	rec := doRequest(t, e, http.MethodPost,
		operationPath(operationID, "ingestion"), nil)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "not finalized")
}

func TestGetOperationReport_Yield(t *testing.T) {
	e := newTestServer(t)
	registerTruckOperator(t, e, "Juan", "123")
	registerTippingTruck(t, e, "T001", 20)
	operationID := openOperation(t, e, httpserver.OpenOperationRequest{
		OperatorID:  "123",
		VehicleID:   "T001",
		MineralType: "Cobre",
		HumidityPct: 2.5,
		WeightTons:  15,
		DistanceKm:  12,
	})

	rec := doRequest(t, e, http.MethodGet,
		operationPath(operationID, "report"), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		OperationID uint64  `json:"operation_id"`
		VehicleID   string  `json:"vehicle_id"`
		WeightTons  float64 `json:"weight_tons"`
		Yield       float64 `json:"yield"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, operationID, report.OperationID)
	assert.Equal(t, "T001", report.VehicleID)
	assert.InDelta(t, 15.0, report.WeightTons, 0.0001)
	assert.InDelta(t, 5.829, report.Yield, 0.0005)
}

func TestGetOperationReport_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/operations/12345/report", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func operationPath(operationID uint64, action string) string {
	return "/api/v1/operations/" + strconv.FormatUint(operationID, 10) + "/" + action
}
