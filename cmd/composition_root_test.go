package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"supplychain/internal/adapters/out/leveldb"
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/contract/contracttest"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLevelDBRoot(t *testing.T) *CompositionRoot {
	t.Helper()

	config, err := LoadConfig(func(string) string { return "" })
	require.NoError(t, err)

	store, err := leveldb.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return NewLevelDBCompositionRoot(config, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCompositionRoot_RouterServesRegistry(t *testing.T) {
	root := newLevelDBRoot(t)
	e, err := root.CreateRouter()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/contracts", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCompositionRoot_RelaysRegistryEvents(t *testing.T) {
	ctx := context.Background()
	root := newLevelDBRoot(t)

	var mu sync.Mutex
	var names []string
	record := func(_ context.Context, message ports.OutboxMessage) error {
		mu.Lock()
		defer mu.Unlock()
		names = append(names, message.Name)
		return nil
	}
	root.EventBus().Subscribe(contract.CreatedEventName, record)
	root.EventBus().Subscribe(contract.DeliveredEventName, record)

	r := root.CreateRegistry()
	key, err := r.CreateContract(ctx, contracttest.Terms(t))
	require.NoError(t, err)
	require.NoError(t, r.MarkContractAsDelivered(ctx, key, contracttest.ActualDeliveryTime))

	manager, err := root.CreateJobManager()
	require.NoError(t, err)
	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(names) == 2
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{contract.CreatedEventName, contract.DeliveredEventName}, names)
}
