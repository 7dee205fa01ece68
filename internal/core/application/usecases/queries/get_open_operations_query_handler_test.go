package queries_test

import (
	"context"
	"testing"

	"orehaul/internal/adapters/out/memory"
	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/core/domain/model/mineral"
	"orehaul/internal/core/domain/model/operator"
	"orehaul/internal/core/domain/model/transport"
	"orehaul/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type GetOpenOperationsQueryHandlerTestSuite struct {
	suite.Suite
	store   *memory.Store
	handler queries.GetOpenOperationsQueryHandler
}

func (suite *GetOpenOperationsQueryHandlerTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.handler = queries.NewGetOpenOperationsQueryHandler(
		suite.store.OperationRepository(),
	)
}

func (suite *GetOpenOperationsQueryHandlerTestSuite) TestHandle_NoOperations_ReturnsEmptySlice() {
	query := queries.NewGetOpenOperationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetOpenOperationsQueryHandlerTestSuite) TestHandle_ExcludesFinalizedOperations() {
	copperHaul := suite.openOperation("T001", "Cobre", 2.5, 15, 12)
	silverHaul := suite.openOperation("V010", "Plata", 1.0, 25, 40)

	suite.Require().NoError(silverHaul.Finalize())
	suite.Require().NoError(
		suite.store.OperationRepository().Update(context.Background(), silverHaul),
	)

	query := queries.NewGetOpenOperationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(copperHaul.ID(), result[0].OperationID)
	suite.Equal("123", result[0].OperatorID)
	suite.Equal("T001", result[0].VehicleID)
	suite.Equal("Cobre", result[0].MineralType)
	suite.InDelta(15.0, result[0].WeightTons, 0.0001)
	suite.InDelta(12.0, result[0].DistanceKm, 0.0001)
}

func (suite *GetOpenOperationsQueryHandlerTestSuite) TestHandle_MultipleOpen_ReturnedInOpeningOrder() {
	first := suite.openOperation("T001", "Cobre", 2.5, 15, 12)
	second := suite.openOperation("V010", "Plata", 1.0, 25, 40)

	query := queries.NewGetOpenOperationsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].OperationID)
	suite.Equal(second.ID(), result[1].OperationID)
}

func (suite *GetOpenOperationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOpenOperationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOpenOperationsQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetOpenOperationsQueryHandlerTestSuite) openOperation(
	vehicleID, mineralType string,
	humidityPct, weightTons, distanceKm float64,
) *transport.Operation {
	member, err := operator.NewTruckOperator("Juan", "123", "AII", zap.NewNop())
	suite.Require().NoError(err)

	tipper, err := vehicle.NewTippingTruck(vehicleID, 40, 85)
	suite.Require().NoError(err)

	load, err := mineral.NewLoad(mineralType, humidityPct, weightTons)
	suite.Require().NoError(err)

	operation, err := transport.NewOperation(member, tipper, load, distanceKm)
	suite.Require().NoError(err)
	suite.Require().NoError(
		suite.store.OperationRepository().Add(context.Background(), operation),
	)

	return operation
}

func TestGetOpenOperationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOpenOperationsQueryHandlerTestSuite))
}
