package mock

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"pharmastore/p/domain"
	"pharmastore/p/internal/seed"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

// Medicine serves the catalogue from the persisted medicine table.
type Medicine struct {
	session
}

func NewMedicine(store *storage.Store, secret string) *Medicine {
	return &Medicine{session{store: store, secret: secret}}
}

func (m *Medicine) GetMedicines(ctx context.Context, filter service.MedicineFilter) *service.MedicineListResponse {
	medicines := filterMedicines(m.catalogue(), filter)
	sortMedicines(medicines, filter.Sort)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = service.DefaultPageSize
	}
	pageItems, pagination := service.Paginate(medicines, page, limit)

	return &service.MedicineListResponse{
		Envelope:   service.OK(""),
		Medicines:  pageItems,
		Pagination: pagination,
	}
}

func (m *Medicine) GetMedicineByID(ctx context.Context, id string) *service.MedicineResponse {
	for _, med := range m.catalogue() {
		if med.ID == id {
			return &service.MedicineResponse{Envelope: service.OK(""), Medicine: &med}
		}
	}
	return &service.MedicineResponse{Envelope: service.Fail(service.CodeNotFound, "Medicine not found")}
}

func (m *Medicine) GetCategories(ctx context.Context) *service.CategoriesResponse {
	return &service.CategoriesResponse{
		Envelope:   service.OK(""),
		Categories: seed.Categories,
	}
}

func (m *Medicine) SearchMedicines(ctx context.Context, query string, limit int) *service.MedicinesResponse {
	if len(strings.TrimSpace(query)) < 2 {
		return &service.MedicinesResponse{
			Envelope:  service.OK("Query too short"),
			Medicines: []domain.Medicine{},
		}
	}
	if limit < 1 {
		limit = 10
	}

	q := strings.ToLower(query)
	var matches []domain.Medicine
	for _, med := range m.catalogue() {
		if strings.Contains(strings.ToLower(med.Name), q) ||
			strings.Contains(strings.ToLower(med.Brand), q) ||
			strings.Contains(strings.ToLower(med.Description), q) {
			matches = append(matches, med)
		}
	}

	limited := matches
	if len(limited) > limit {
		limited = limited[:limit]
	}
	return &service.MedicinesResponse{
		Envelope:   service.OK(""),
		Medicines:  limited,
		TotalFound: len(matches),
	}
}

func (m *Medicine) GetFeaturedMedicines(ctx context.Context, limit int) *service.MedicinesResponse {
	if limit < 1 {
		limit = 6
	}
	var available []domain.Medicine
	for _, med := range m.catalogue() {
		if med.AvailabilityStatus == domain.Available {
			available = append(available, med)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Price < available[j].Price
	})
	if len(available) > limit {
		available = available[:limit]
	}
	return &service.MedicinesResponse{Envelope: service.OK(""), Medicines: available}
}

func (m *Medicine) GetMedicinesByCategory(ctx context.Context, category string, limit int) *service.MedicinesResponse {
	if limit < 1 {
		limit = service.DefaultPageSize
	}
	var matches []domain.Medicine
	for _, med := range m.catalogue() {
		if med.Category == category && med.AvailabilityStatus == domain.Available {
			matches = append(matches, med)
		}
	}
	limited := matches
	if len(limited) > limit {
		limited = limited[:limit]
	}
	return &service.MedicinesResponse{
		Envelope:        service.OK(""),
		Medicines:       limited,
		Category:        category,
		TotalInCategory: len(matches),
	}
}

func (m *Medicine) CheckAvailability(ctx context.Context, id string, quantity int) *service.AvailabilityResponse {
	if quantity < 1 {
		quantity = 1
	}
	for _, med := range m.catalogue() {
		if med.ID == id {
			// Same purchasability rule as the cart gate: only out_of_stock
			// blocks outright, low_stock stays purchasable up to the stock
			// level.
			return &service.AvailabilityResponse{
				Envelope:          service.OK(""),
				Available:         med.AvailabilityStatus != domain.OutOfStock && med.StockQuantity >= quantity,
				StockQuantity:     med.StockQuantity,
				MedicineName:      med.Name,
				RequestedQuantity: quantity,
			}
		}
	}
	return &service.AvailabilityResponse{Envelope: service.Fail(service.CodeNotFound, "Medicine not found")}
}

// UpdateStock adjusts a medicine's stock by delta and rederives its
// availability status. Internal hook for checkout flows, not part of the
// consumer-facing contract. A delta that would drive stock negative is
// rejected rather than clamped into a sale.
func (m *Medicine) UpdateStock(id string, delta int) bool {
	medicines := m.catalogue()
	for i := range medicines {
		if medicines[i].ID != id {
			continue
		}
		newQuantity := medicines[i].StockQuantity + delta
		if newQuantity < 0 {
			return false
		}
		medicines[i].StockQuantity = newQuantity
		medicines[i].AvailabilityStatus = domain.AvailabilityFor(newQuantity)
		medicines[i].UpdatedAt = time.Now().UTC()
		return m.saveCatalogue(medicines)
	}
	return false
}

func filterMedicines(medicines []domain.Medicine, filter service.MedicineFilter) []domain.Medicine {
	out := make([]domain.Medicine, 0, len(medicines))

	search := strings.ToLower(filter.Search)
	minPrice, minOK := parsePrice(filter.MinPrice)
	maxPrice, maxOK := parsePrice(filter.MaxPrice)

	for _, med := range medicines {
		if search != "" && !matchesSearch(med, search) {
			continue
		}
		if filter.Category != "" && med.Category != filter.Category {
			continue
		}
		if minOK && med.Price < minPrice {
			continue
		}
		if maxOK && med.Price > maxPrice {
			continue
		}
		if filter.PrescriptionRequired != "" {
			// Only the literal strings "true"/"false" filter; anything
			// else is ignored.
			switch filter.PrescriptionRequired {
			case "true":
				if !med.PrescriptionRequired {
					continue
				}
			case "false":
				if med.PrescriptionRequired {
					continue
				}
			}
		}
		if filter.AvailabilityStatus != "" && string(med.AvailabilityStatus) != filter.AvailabilityStatus {
			continue
		}
		out = append(out, med)
	}
	return out
}

func matchesSearch(med domain.Medicine, search string) bool {
	if strings.Contains(strings.ToLower(med.Name), search) ||
		strings.Contains(strings.ToLower(med.Brand), search) ||
		strings.Contains(strings.ToLower(med.Description), search) ||
		strings.Contains(strings.ToLower(med.Category), search) {
		return true
	}
	for _, ingredient := range med.ActiveIngredients {
		if strings.Contains(strings.ToLower(ingredient), search) {
			return true
		}
	}
	return false
}

func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func sortMedicines(medicines []domain.Medicine, by string) {
	switch by {
	case service.SortPriceLow:
		sort.SliceStable(medicines, func(i, j int) bool { return medicines[i].Price < medicines[j].Price })
	case service.SortPriceHigh:
		sort.SliceStable(medicines, func(i, j int) bool { return medicines[i].Price > medicines[j].Price })
	default:
		sort.SliceStable(medicines, func(i, j int) bool { return medicines[i].Name < medicines[j].Name })
	}
}
