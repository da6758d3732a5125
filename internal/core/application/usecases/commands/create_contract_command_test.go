package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/contract/contracttest"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateContractCommand_Valid(t *testing.T) {
	terms := contracttest.Terms(t)

	cmd, err := commands.NewCreateContractCommand(terms)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, terms, cmd.Terms())
}

func TestNewCreateContractCommand_InvalidTerms(t *testing.T) {
	terms := contracttest.Terms(t)
	terms.Items = nil
	terms.EstimatedDeliveryTimes = nil

	_, err := commands.NewCreateContractCommand(terms)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "items")
	assert.Contains(t, err.Error(), "estimated delivery times")
}

func TestCreateContractCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateContractCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateContractCommandIsNotConstructed)
}
