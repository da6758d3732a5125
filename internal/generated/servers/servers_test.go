package servers_test

import (
	"context"
	"testing"

	"supplychain/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	for _, path := range []string{
		"/api/v1/contracts",
		"/api/v1/contracts/{key}",
		"/api/v1/contracts/{key}/delivery",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}
