package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"pharmastore/p/domain"
	"pharmastore/p/internal/storage"
)

// Ensure writes the fixture tables into storage if they are absent. Fixture
// passwords are bcrypt-hashed on the way in so plaintext never reaches the
// store. Existing tables are left untouched.
func Ensure(store *storage.Store) {
	if existing := storage.Get(store, storage.KeyMockUsers, []domain.User(nil)); len(existing) == 0 {
		users := make([]domain.User, 0, len(Users))
		for _, f := range Users {
			u := f.User
			hashed, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("seed: unable to hash password for %s: %v", u.Email, err)
				continue
			}
			u.Password = string(hashed)
			users = append(users, u)
		}
		store.Set(storage.KeyMockUsers, users)
		log.Printf("seeded %d users", len(users))
	}

	if existing := storage.Get(store, storage.KeyMockMedicines, []domain.Medicine(nil)); len(existing) == 0 {
		store.Set(storage.KeyMockMedicines, Medicines)
		log.Printf("seeded medicine catalogue with %d rows", len(Medicines))
	}

	if !store.Has(storage.KeyMockOrders) {
		store.Set(storage.KeyMockOrders, []domain.Order{})
	}
}
