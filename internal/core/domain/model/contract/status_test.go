package contract_test

import (
	"fmt"
	"testing"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(contract.Unknown))
	assert.Equal(t, 1, int(contract.Created))
	assert.Equal(t, 2, int(contract.Delivered))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		require.NoError(t, contract.Created.Validate())
		require.NoError(t, contract.Delivered.Validate())
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []contract.Status{contract.Unknown, contract.Status(-1), contract.Status(3), contract.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   contract.Status
		expected string
	}{
		{contract.Created, "Created"},
		{contract.Delivered, "Delivered"},
		{contract.Unknown, "Unknown"},
		{contract.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should move Created to Delivered", func(t *testing.T) {
		next, err := contract.Created.Deliver()

		require.NoError(t, err)
		assert.Equal(t, contract.Delivered, next)
	})

	t.Run("should reject delivery from other statuses", func(t *testing.T) {
		for _, status := range []contract.Status{contract.Delivered, contract.Unknown, contract.Status(9)} {
			next, err := status.Deliver()

			require.Error(t, err)
			assert.True(t, errs.IsInvalidState(err))
			assert.Equal(t, contract.Unknown, next)
			assert.Contains(t, err.Error(), status.String()+" -> Delivered")
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, contract.Created.IsTerminal())
	assert.True(t, contract.Delivered.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse known names", func(t *testing.T) {
		created, err := contract.ParseStatus("Created")
		require.NoError(t, err)
		assert.Equal(t, contract.Created, created)

		delivered, err := contract.ParseStatus("Delivered")
		require.NoError(t, err)
		assert.Equal(t, contract.Delivered, delivered)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "created", "Cancelled"} {
			_, err := contract.ParseStatus(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}
