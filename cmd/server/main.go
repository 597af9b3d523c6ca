package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"pharmastore/p/internal/api"
	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service/factory"
	"pharmastore/p/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	store := storage.Open(cfg.StorageDSN)
	defer store.Close()

	services := factory.New(cfg, store)
	status := factory.Describe(cfg)
	log.Printf("PharmaStore services bound in %s mode (backend %s)", status.Mode, status.BaseURL)

	handler := api.New(services)

	log.Printf("PharmaStore server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
