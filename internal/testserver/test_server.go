package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/domain/registry"
	"github.com/mergington/activities/internal/memory"
	"github.com/mergington/activities/internal/sqlite"
	"github.com/mergington/activities/internal/transport"
)

// TestServer is a fully wired server over a freshly seeded store.
type TestServer struct {
	Server *httptest.Server
	Store  registry.Store
}

// New starts a test server over the in-memory map store.
func New(t *testing.T) *TestServer {
	t.Helper()
	return newWithStore(t, memory.NewStore())
}

// NewSQLite starts a test server over the SQLite store, using an in-memory
// database scoped to the test.
func NewSQLite(t *testing.T) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	return newWithStore(t, sqlite.NewStore(db))
}

func newWithStore(t *testing.T, store registry.Store) *TestServer {
	t.Helper()

	require.NoError(t, store.Seed(context.Background(), registry.SeedActivities()))

	svc := registry.NewService(store, nil)
	server := httptest.NewServer(transport.NewServer(svc, "", nil))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, Store: store}
}
