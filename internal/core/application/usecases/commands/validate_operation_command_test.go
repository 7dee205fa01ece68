package commands_test

import (
	"testing"

	"orehaul/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidateOperationCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewValidateOperationCommand(42)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, uint64(42), cmd.OperationID())
}

func TestNewValidateOperationCommand_ZeroOperationID(t *testing.T) {
	// Act
	_, err := commands.NewValidateOperationCommand(0)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOperationIDIsRequired)
}

func TestValidateOperationCommand_Validate_Success(t *testing.T) {
	// Arrange
	cmd, err := commands.NewValidateOperationCommand(1)
	require.NoError(t, err)

	// Act
	err = cmd.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestValidateOperationCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.ValidateOperationCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrValidateOperationCommandIsNotConstructed)
}
