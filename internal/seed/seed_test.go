package seed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pharmastore/p/domain"
	"pharmastore/p/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestEnsureSeedsFixtures(t *testing.T) {
	store := newTestStore(t)
	Ensure(store)

	users := storage.Get(store, storage.KeyMockUsers, []domain.User(nil))
	require.Len(t, users, len(Users))
	for i, u := range users {
		// Stored passwords are hashes of the fixture plaintext, never the
		// plaintext itself.
		assert.NotEqual(t, Users[i].Password, u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(Users[i].Password)))
	}

	medicines := storage.Get(store, storage.KeyMockMedicines, []domain.Medicine(nil))
	assert.Len(t, medicines, len(Medicines))

	assert.True(t, store.Has(storage.KeyMockOrders))
}

func TestEnsureLeavesExistingDataAlone(t *testing.T) {
	store := newTestStore(t)
	Ensure(store)

	users := storage.Get(store, storage.KeyMockUsers, []domain.User(nil))
	require.NotEmpty(t, users)
	users = append(users, domain.User{ID: "user_extra", Email: "extra@example.com"})
	store.Set(storage.KeyMockUsers, users)

	medicines := storage.Get(store, storage.KeyMockMedicines, []domain.Medicine(nil))
	medicines[0].StockQuantity = 7
	store.Set(storage.KeyMockMedicines, medicines)

	Ensure(store)

	assert.Len(t, storage.Get(store, storage.KeyMockUsers, []domain.User(nil)), len(Users)+1)
	assert.Equal(t, 7, storage.Get(store, storage.KeyMockMedicines, []domain.Medicine(nil))[0].StockQuantity)
}

func TestFixtureIntegrity(t *testing.T) {
	assert.Len(t, Categories, 15)
	assert.Len(t, Medicines, 16)
	assert.Len(t, Users, 2)
	assert.Len(t, Pharmacies, 2)

	seen := map[string]bool{}
	for _, med := range Medicines {
		assert.False(t, seen[med.ID], "duplicate medicine id %s", med.ID)
		seen[med.ID] = true
		assert.Equal(t, domain.AvailabilityFor(med.StockQuantity), med.AvailabilityStatus, med.ID)
		assert.Contains(t, Categories, med.Category, med.ID)
		assert.Greater(t, med.Price, 0.0, med.ID)
	}
}
