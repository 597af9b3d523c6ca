package mock

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pharmastore/p/internal/seed"
	"pharmastore/p/internal/storage"
)

const testSecret = "test_secret"

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = store.Close() })
	seed.Ensure(store)
	return store
}

// loginJohn establishes a session for the first fixture user and returns its
// token.
func loginJohn(t *testing.T, store *storage.Store) string {
	t.Helper()
	resp := NewAuth(store, testSecret).Login(context.Background(), "john.doe@example.com", "password123")
	require.True(t, resp.Success, resp.Message)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
