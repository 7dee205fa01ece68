package queries_test

import (
	"testing"

	"orehaul/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetWarehouseInventoryQuery_Valid(t *testing.T) {
	query := queries.NewGetWarehouseInventoryQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetWarehouseInventoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetWarehouseInventoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetWarehouseInventoryQueryIsNotConstructed)
}
