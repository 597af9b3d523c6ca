// Package factory binds one implementation per domain service at startup.
// The selection is made once from configuration; there is no runtime
// hot-swap.
package factory

import (
	"pharmastore/p/internal/config"
	"pharmastore/p/internal/seed"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/service/mock"
	"pharmastore/p/internal/service/rest"
	"pharmastore/p/internal/storage"
)

// New builds the service handle set for the configured backend mode. In
// mock mode the fixture tables are seeded into storage first.
func New(cfg config.Config, store *storage.Store) service.Services {
	if cfg.UseMockServices {
		seed.Ensure(store)
		medicines := mock.NewMedicine(store, cfg.Secret)
		return service.Services{
			Auth:     mock.NewAuth(store, cfg.Secret),
			Medicine: medicines,
			Cart:     mock.NewCart(store, cfg.Secret),
			Order:    mock.NewOrder(store, cfg.Secret, medicines),
			Pharmacy: mock.NewPharmacy(),
		}
	}

	client := rest.NewClient(cfg.BaseURL, store)
	return service.Services{
		Auth:     rest.NewAuth(client),
		Medicine: rest.NewMedicine(client),
		Cart:     rest.NewCart(client),
		Order:    rest.NewOrder(client),
		Pharmacy: rest.NewPharmacy(client),
	}
}

// Status reports which implementation set is bound, for startup logging.
type Status struct {
	UsingMockServices bool   `json:"using_mock_services"`
	BaseURL           string `json:"base_url"`
	Mode              string `json:"mode"`
}

func Describe(cfg config.Config) Status {
	mode := "real"
	if cfg.UseMockServices {
		mode = "mock"
	}
	return Status{
		UsingMockServices: cfg.UseMockServices,
		BaseURL:           cfg.BaseURL,
		Mode:              mode,
	}
}
