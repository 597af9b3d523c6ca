package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"pharmastore/p/domain"
	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service"
)

// Medicine talks to the backend catalogue endpoints. Featured picks,
// per-category listings and availability probes have no dedicated routes in
// the wire contract; they are derived from the fixed endpoints client-side
// so the interface stays identical to the mock.
type Medicine struct {
	c *Client
}

func NewMedicine(c *Client) *Medicine {
	return &Medicine{c: c}
}

func (m *Medicine) GetMedicines(ctx context.Context, filter service.MedicineFilter) *service.MedicineListResponse {
	var resp service.MedicineListResponse
	if _, err := m.c.do(ctx, http.MethodGet, config.EndpointMedicines, nil, filter.Values(), "", nil, &resp); err != nil {
		return &service.MedicineListResponse{Envelope: networkFail()}
	}
	return &resp
}

func (m *Medicine) GetMedicineByID(ctx context.Context, id string) *service.MedicineResponse {
	var resp service.MedicineResponse
	params := map[string]string{"id": id}
	if _, err := m.c.do(ctx, http.MethodGet, config.EndpointMedicineDetail, params, nil, "", nil, &resp); err != nil {
		return &service.MedicineResponse{Envelope: networkFail()}
	}
	return &resp
}

func (m *Medicine) GetCategories(ctx context.Context) *service.CategoriesResponse {
	var resp service.CategoriesResponse
	if _, err := m.c.do(ctx, http.MethodGet, config.EndpointMedicineCategories, nil, nil, "", nil, &resp); err != nil {
		return &service.CategoriesResponse{Envelope: networkFail()}
	}
	return &resp
}

func (m *Medicine) SearchMedicines(ctx context.Context, query string, limit int) *service.MedicinesResponse {
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var resp service.MedicinesResponse
	if _, err := m.c.do(ctx, http.MethodGet, config.EndpointMedicineSearch, nil, q, "", nil, &resp); err != nil {
		return &service.MedicinesResponse{Envelope: networkFail()}
	}
	return &resp
}

func (m *Medicine) GetFeaturedMedicines(ctx context.Context, limit int) *service.MedicinesResponse {
	if limit < 1 {
		limit = 6
	}
	list := m.GetMedicines(ctx, service.MedicineFilter{
		AvailabilityStatus: string(domain.Available),
		Sort:               service.SortPriceLow,
		Limit:              limit,
	})
	if !list.Success {
		return &service.MedicinesResponse{Envelope: list.Envelope}
	}
	return &service.MedicinesResponse{Envelope: service.OK(""), Medicines: list.Medicines}
}

func (m *Medicine) GetMedicinesByCategory(ctx context.Context, category string, limit int) *service.MedicinesResponse {
	if limit < 1 {
		limit = service.DefaultPageSize
	}
	list := m.GetMedicines(ctx, service.MedicineFilter{
		Category:           category,
		AvailabilityStatus: string(domain.Available),
		Limit:              limit,
	})
	if !list.Success {
		return &service.MedicinesResponse{Envelope: list.Envelope}
	}
	return &service.MedicinesResponse{
		Envelope:        service.OK(""),
		Medicines:       list.Medicines,
		Category:        category,
		TotalInCategory: list.Pagination.Total,
	}
}

func (m *Medicine) CheckAvailability(ctx context.Context, id string, quantity int) *service.AvailabilityResponse {
	if quantity < 1 {
		quantity = 1
	}
	detail := m.GetMedicineByID(ctx, id)
	if !detail.Success {
		return &service.AvailabilityResponse{Envelope: detail.Envelope}
	}
	med := detail.Medicine
	// Same purchasability rule as the cart gate: only out_of_stock blocks.
	return &service.AvailabilityResponse{
		Envelope:          service.OK(""),
		Available:         med.AvailabilityStatus != domain.OutOfStock && med.StockQuantity >= quantity,
		StockQuantity:     med.StockQuantity,
		MedicineName:      med.Name,
		RequestedQuantity: quantity,
	}
}
