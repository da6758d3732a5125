package guard_test

import (
	"errors"
	"testing"

	"supplychain/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_embedded_in_struct", func(t *testing.T) {
		type command struct {
			name  string
			guard guard.ConstructorGuard
		}
		errNotConstructed := errors.New("command must be created via constructor")

		built := command{name: "deliver", guard: guard.NewConstructorGuard()}
		literal := command{name: "deliver"}

		require.NoError(t, built.guard.Validate(errNotConstructed))
		require.ErrorIs(t, literal.guard.Validate(errNotConstructed), errNotConstructed)
	})
}
