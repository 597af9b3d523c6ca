// Package mock implements the domain services over local storage and the
// seed fixtures, emulating backend semantics without a network.
package mock

import (
	"regexp"

	"github.com/shopspring/decimal"

	"pharmastore/p/domain"
	"pharmastore/p/internal/seed"
	"pharmastore/p/internal/storage"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// session bundles the dependencies every mock service shares: the key-value
// store and the token signing secret.
type session struct {
	store  *storage.Store
	secret string
}

// currentUser resolves the persisted session projection for a valid token.
func (s session) currentUser(token string) (domain.Profile, bool) {
	if _, err := parseToken(token, s.secret); err != nil {
		return domain.Profile{}, false
	}
	profile := storage.Get(s.store, storage.KeyUserData, domain.Profile{})
	if profile.ID == "" {
		return domain.Profile{}, false
	}
	return profile, true
}

func (s session) tokenValid(token string) bool {
	_, err := parseToken(token, s.secret)
	return err == nil
}

// catalogue reads the persisted medicine table, falling back to the static
// fixtures when storage has never been seeded.
func (s session) catalogue() []domain.Medicine {
	return storage.Get(s.store, storage.KeyMockMedicines, seed.Medicines)
}

func (s session) saveCatalogue(meds []domain.Medicine) bool {
	return s.store.Set(storage.KeyMockMedicines, meds)
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// lineTotal computes price x quantity without accumulating float error.
func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}
