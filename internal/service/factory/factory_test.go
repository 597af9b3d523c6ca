package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service/mock"
	"pharmastore/p/internal/service/rest"
	"pharmastore/p/internal/storage"
)

func testConfig(useMock bool) config.Config {
	return config.Config{
		UseMockServices: useMock,
		BaseURL:         "http://localhost:5000",
		Secret:          "test_secret",
	}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewBindsMockServices(t *testing.T) {
	store := newTestStore(t)
	services := New(testConfig(true), store)

	assert.IsType(t, &mock.Auth{}, services.Auth)
	assert.IsType(t, &mock.Medicine{}, services.Medicine)
	assert.IsType(t, &mock.Cart{}, services.Cart)
	assert.IsType(t, &mock.Order{}, services.Order)
	assert.IsType(t, &mock.Pharmacy{}, services.Pharmacy)

	// Mock mode seeds the fixtures, so the catalogue answers immediately.
	resp := services.Medicine.GetMedicineByID(context.Background(), "med_001")
	require.True(t, resp.Success)
	assert.True(t, store.Has(storage.KeyMockUsers))
}

func TestNewBindsHTTPServices(t *testing.T) {
	store := newTestStore(t)
	services := New(testConfig(false), store)

	assert.IsType(t, &rest.Auth{}, services.Auth)
	assert.IsType(t, &rest.Medicine{}, services.Medicine)
	assert.IsType(t, &rest.Cart{}, services.Cart)
	assert.IsType(t, &rest.Order{}, services.Order)
	assert.IsType(t, &rest.Pharmacy{}, services.Pharmacy)

	// No fixture seeding happens outside mock mode.
	assert.False(t, store.Has(storage.KeyMockUsers))
}

func TestDescribe(t *testing.T) {
	status := Describe(testConfig(true))
	assert.True(t, status.UsingMockServices)
	assert.Equal(t, "mock", status.Mode)

	status = Describe(testConfig(false))
	assert.False(t, status.UsingMockServices)
	assert.Equal(t, "real", status.Mode)
	assert.Equal(t, "http://localhost:5000", status.BaseURL)
}
