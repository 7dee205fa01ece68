package commands_test

import (
	"context"
	"errors"
	"testing"

	"orehaul/internal/core/application/usecases/commands"
	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/core/events"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}

func newFinalizeOperationHandler(
	operationRepo *MockOperationRepository,
	operatorRepo *MockOperatorRepository,
	vehicleRepo *MockVehicleRepository,
	publisher *MockEventPublisher,
	appMetrics *metrics.Metrics,
) commands.FinalizeOperationCommandHandler {
	return commands.NewFinalizeOperationCommandHandler(
		operationRepo, operatorRepo, vehicleRepo, publisher, appMetrics)
}

func TestNewFinalizeOperationCommandHandler(t *testing.T) {
	// Act
	handler := newFinalizeOperationHandler(
		new(MockOperationRepository), new(MockOperatorRepository), new(MockVehicleRepository),
		new(MockEventPublisher), metrics.New())

	// Assert
	assert.NotNil(t, handler)
}

func TestFinalizeOperationCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	tipper, err := vehicle.NewTippingTruck("T001", 20, 85)
	require.NoError(t, err)
	operation := newTestOperation(t, tipper, 15, 12)
	require.NoError(t, tipper.ChangeState(vehicle.StateInTransit))

	cmd, err := commands.NewFinalizeOperationCommand(operation.ID())
	require.NoError(t, err)

	var captured events.Event
	mockOperationRepo := new(MockOperationRepository)
	mockOperatorRepo := new(MockOperatorRepository)
	mockVehicleRepo := new(MockVehicleRepository)
	mockPublisher := new(MockEventPublisher)

	mock.InOrder(
		mockOperationRepo.On("Get", ctx, operation.ID()).Return(operation, nil).Once(),
		mockOperationRepo.On("Update", ctx, operation).Return(nil).Once(),
		mockOperatorRepo.On("Update", ctx, operation.Operator()).Return(nil).Once(),
		mockVehicleRepo.On("Update", ctx, tipper).Return(nil).Once(),
		mockPublisher.On("Publish", mock.MatchedBy(func(event events.Event) bool {
			captured = event
			return true
		})).Once(),
	)

	appMetrics := metrics.New()
	handler := newFinalizeOperationHandler(
		mockOperationRepo, mockOperatorRepo, mockVehicleRepo, mockPublisher, appMetrics)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, operation.Finalized())
	assert.Equal(t, []uint64{operation.ID()}, operation.Operator().RegisteredOperationIDs())
	assert.Equal(t, vehicle.StateAvailable, tipper.State())

	assert.Equal(t, events.OperationFinalized, captured.Type)
	assert.Equal(t, operation.ID(), captured.OperationID)
	assert.Equal(t, "T001", captured.VehicleID)
	assert.Equal(t, "123", captured.OperatorID)
	assert.InDelta(t, 1.0, testutil.ToFloat64(appMetrics.OperationsFinalized), 1e-9)

	mockOperationRepo.AssertExpectations(t)
	mockOperatorRepo.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestFinalizeOperationCommandHandler_Handle_AlreadyFinalizedIsNoOp(t *testing.T) {
	// Arrange
	ctx := context.Background()
	tipper, err := vehicle.NewTippingTruck("T001", 20, 85)
	require.NoError(t, err)
	operation := newTestOperation(t, tipper, 15, 12)
	require.NoError(t, operation.Finalize())

	cmd, err := commands.NewFinalizeOperationCommand(operation.ID())
	require.NoError(t, err)

	mockOperationRepo := new(MockOperationRepository)
	mockOperatorRepo := new(MockOperatorRepository)
	mockVehicleRepo := new(MockVehicleRepository)
	mockPublisher := new(MockEventPublisher)
	mockOperationRepo.On("Get", ctx, operation.ID()).Return(operation, nil).Once()

	appMetrics := metrics.New()
	handler := newFinalizeOperationHandler(
		mockOperationRepo, mockOperatorRepo, mockVehicleRepo, mockPublisher, appMetrics)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert - no journaling, no event, no metric movement
	require.NoError(t, err)
	assert.Empty(t, operation.Operator().RegisteredOperationIDs())
	assert.Zero(t, testutil.ToFloat64(appMetrics.OperationsFinalized))
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything)
	mockOperationRepo.AssertExpectations(t)
	mockOperatorRepo.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
}

func TestFinalizeOperationCommandHandler_Handle_OperationNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cmd, err := commands.NewFinalizeOperationCommand(12345)
	require.NoError(t, err)

	mockOperationRepo := new(MockOperationRepository)
	mockOperationRepo.On("Get", ctx, uint64(12345)).
		Return(nil, errs.NewObjectNotFoundError("operationID", uint64(12345))).Once()

	handler := newFinalizeOperationHandler(
		mockOperationRepo, new(MockOperatorRepository), new(MockVehicleRepository),
		new(MockEventPublisher), metrics.New())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOperationNotFound)
	mockOperationRepo.AssertExpectations(t)
}

func TestFinalizeOperationCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var invalidCmd commands.FinalizeOperationCommand // zero value command

	mockOperationRepo := new(MockOperationRepository)
	handler := newFinalizeOperationHandler(
		mockOperationRepo, new(MockOperatorRepository), new(MockVehicleRepository),
		new(MockEventPublisher), metrics.New())

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFinalizeOperationCommandIsNotConstructed)
	mockOperationRepo.AssertExpectations(t) // No repository calls should be made
}

func TestFinalizeOperationCommandHandler_Handle_UpdateError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	tipper, err := vehicle.NewTippingTruck("T001", 20, 85)
	require.NoError(t, err)
	operation := newTestOperation(t, tipper, 15, 12)

	cmd, err := commands.NewFinalizeOperationCommand(operation.ID())
	require.NoError(t, err)

	expectedError := errors.New("repository update failed")
	mockOperationRepo := new(MockOperationRepository)
	mockPublisher := new(MockEventPublisher)
	mockOperationRepo.On("Get", ctx, operation.ID()).Return(operation, nil).Once()
	mockOperationRepo.On("Update", ctx, operation).Return(expectedError).Once()

	handler := newFinalizeOperationHandler(
		mockOperationRepo, new(MockOperatorRepository), new(MockVehicleRepository),
		mockPublisher, metrics.New())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything)
	mockOperationRepo.AssertExpectations(t)
}
