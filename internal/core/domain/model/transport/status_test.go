package transport_test

import (
	"fmt"
	"testing"

	"orehaul/internal/core/domain/model/transport"
	"orehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(transport.Unknown))
		assert.Equal(t, 1, int(transport.Open))
		assert.Equal(t, 2, int(transport.Finalized))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []transport.Status{
			transport.Unknown,
			transport.Open,
			transport.Finalized,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []transport.Status{
			transport.Open,
			transport.Finalized,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := transport.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []transport.Status{
			transport.Status(-1),
			transport.Status(3),
			transport.Status(100),
			transport.Status(-999),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   transport.Status
			expected string
		}{
			{transport.Open, "Open"},
			{transport.Finalized, "Finalized"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				result := tc.status.String()
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []transport.Status{
			transport.Unknown,
			transport.Status(-1),
			transport.Status(3),
			transport.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should return Unknown for status value %d", int(status)), func(t *testing.T) {
				result := status.String()
				assert.Equal(t, "Unknown", result)
			})
		}
	})
}

func TestStatus_Finalize(t *testing.T) {
	t.Run("should allow transition from Open to Finalized", func(t *testing.T) {
		status := transport.Open

		newStatus, err := status.Finalize()

		require.NoError(t, err)
		assert.Equal(t, transport.Finalized, newStatus)
	})

	t.Run("should allow transition from Finalized to Finalized (repeat)", func(t *testing.T) {
		status := transport.Finalized

		newStatus, err := status.Finalize()

		require.NoError(t, err)
		assert.Equal(t, transport.Finalized, newStatus)
	})

	t.Run("should reject transition from Unknown", func(t *testing.T) {
		status := transport.Unknown

		newStatus, err := status.Finalize()

		require.Error(t, err)
		assert.Equal(t, transport.Status(0), newStatus)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "Unknown is not a valid status to finalize")
	})

	t.Run("should reject transition from invalid status values", func(t *testing.T) {
		invalidStatuses := []transport.Status{
			transport.Status(-1),
			transport.Status(3),
			transport.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from status %d", int(status)), func(t *testing.T) {
				newStatus, err := status.Finalize()

				require.Error(t, err)
				assert.Equal(t, transport.Status(0), newStatus)
				assert.Contains(t, err.Error(), "is not a valid status to finalize")
			})
		}
	})
}

func TestStatus_ValidateFinalize(t *testing.T) {
	t.Run("should allow finalization from valid statuses", func(t *testing.T) {
		validStatuses := []transport.Status{
			transport.Open,
			transport.Finalized,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should allow finalization from %s status", status.String()), func(t *testing.T) {
				err := status.ValidateFinalize()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject finalization from invalid statuses", func(t *testing.T) {
		invalidStatuses := []transport.Status{
			transport.Unknown,
			transport.Status(-1),
			transport.Status(3),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject finalization from status value %d", int(status)), func(t *testing.T) {
				err := status.ValidateFinalize()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), "is not a valid status to finalize")
			})
		}
	})

	t.Run("should have consistent behavior with Finalize method", func(t *testing.T) {
		allStatuses := []transport.Status{
			transport.Unknown,
			transport.Open,
			transport.Finalized,
			transport.Status(-1),
			transport.Status(3),
		}

		for _, status := range allStatuses {
			t.Run(fmt.Sprintf("consistency check for status %s (%d)", status.String(), int(status)),
				func(t *testing.T) {
					validateErr := status.ValidateFinalize()
					_, finalizeErr := status.Finalize()

					// Both methods should agree on finalizability
					if validateErr == nil {
						assert.NoError(t, finalizeErr, "ValidateFinalize passed but Finalize failed")
					} else {
						assert.Error(t, finalizeErr, "ValidateFinalize failed but Finalize succeeded")
					}
				})
		}
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow valid state transitions", func(t *testing.T) {
		// Test full valid workflow: Open -> Finalized
		status := transport.Open

		status, err := status.Finalize()
		require.NoError(t, err)
		assert.Equal(t, transport.Finalized, status)

		// Finalized -> Finalized (repeat finalization is a no-op)
		status, err = status.Finalize()
		require.NoError(t, err)
		assert.Equal(t, transport.Finalized, status)
	})

	t.Run("should prevent transitions from undefined states", func(t *testing.T) {
		status := transport.Unknown
		_, err := status.Finalize()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown is not a valid status to finalize")
	})
}

func TestStatus_Immutability(t *testing.T) {
	t.Run("should not modify original status during transitions", func(t *testing.T) {
		originalStatus := transport.Open

		newStatus, err := originalStatus.Finalize()
		require.NoError(t, err)

		// Original should be unchanged
		assert.Equal(t, transport.Open, originalStatus)
		assert.Equal(t, transport.Finalized, newStatus)
		assert.NotEqual(t, originalStatus, newStatus)
	})

	t.Run("should not modify original status on failed transitions", func(t *testing.T) {
		originalStatus := transport.Unknown

		_, err := originalStatus.Finalize()
		require.Error(t, err)

		// Original should be unchanged
		assert.Equal(t, transport.Unknown, originalStatus)
	})
}

func TestStatus_EdgeCases(t *testing.T) {
	t.Run("should handle zero value status", func(t *testing.T) {
		var status transport.Status // Zero value is Unknown

		assert.Equal(t, transport.Unknown, status)
		assert.Equal(t, "Unknown", status.String())
		require.Error(t, status.Validate())
	})

	t.Run("should handle type conversion edge cases", func(t *testing.T) {
		// Test conversion from int
		status := transport.Status(1)
		assert.Equal(t, transport.Open, status)
		assert.Equal(t, "Open", status.String())
		require.NoError(t, status.Validate())

		// Test conversion from invalid int
		invalidStatus := transport.Status(999)
		assert.Equal(t, "Unknown", invalidStatus.String())
		require.Error(t, invalidStatus.Validate())
	})
}

func TestStatus_Consistency(t *testing.T) {
	t.Run("should have consistent String() and Validate() behavior", func(t *testing.T) {
		allPossibleStatuses := []transport.Status{
			transport.Status(-100),
			transport.Status(-1),
			transport.Unknown,
			transport.Open,
			transport.Finalized,
			transport.Status(3),
			transport.Status(100),
		}

		for _, status := range allPossibleStatuses {
			t.Run(fmt.Sprintf("status %d", int(status)), func(t *testing.T) {
				str := status.String()
				err := status.Validate()

				if str == "Unknown" {
					require.Error(t, err, "status with String() 'Unknown' should fail validation")
				} else {
					require.NoError(t, err, "status with valid String() should pass validation")
				}
			})
		}
	})
}
