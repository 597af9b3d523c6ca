package service

import "pharmastore/p/domain"

// AuthResponse answers login and register calls.
type AuthResponse struct {
	Envelope
	Token string          `json:"token,omitempty"`
	User  *domain.Profile `json:"user,omitempty"`
}

// ProfileResponse answers profile fetch and update calls.
type ProfileResponse struct {
	Envelope
	User *domain.Profile `json:"user,omitempty"`
}

// MedicineListResponse answers paginated catalogue queries.
type MedicineListResponse struct {
	Envelope
	Medicines  []domain.Medicine `json:"medicines"`
	Pagination Pagination        `json:"pagination"`
}

// MedicineResponse answers single-medicine lookups.
type MedicineResponse struct {
	Envelope
	Medicine *domain.Medicine `json:"medicine,omitempty"`
}

// CategoriesResponse lists the static category set.
type CategoriesResponse struct {
	Envelope
	Categories []string `json:"categories"`
}

// MedicinesResponse answers unpaginated medicine collections: quick search,
// featured picks and per-category listings.
type MedicinesResponse struct {
	Envelope
	Medicines       []domain.Medicine `json:"medicines"`
	TotalFound      int               `json:"total_found,omitempty"`
	Category        string            `json:"category,omitempty"`
	TotalInCategory int               `json:"total_in_category,omitempty"`
}

// AvailabilityResponse answers stock probes without mutating state.
type AvailabilityResponse struct {
	Envelope
	Available         bool   `json:"available"`
	StockQuantity     int    `json:"stock_quantity"`
	MedicineName      string `json:"medicine_name,omitempty"`
	RequestedQuantity int    `json:"requested_quantity"`
}

// CartResponse answers full cart fetches.
type CartResponse struct {
	Envelope
	CartItems   []CartEntry `json:"cart_items"`
	TotalItems  int         `json:"total_items"`
	TotalAmount float64     `json:"total_amount"`
}

// CartItemResponse answers single cart row mutations.
type CartItemResponse struct {
	Envelope
	CartItem *CartEntry `json:"cart_item,omitempty"`
}

// CartSummaryResponse answers the lightweight badge query.
type CartSummaryResponse struct {
	Envelope
	TotalItems  int     `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
}

// OrdersResponse answers order listings, newest first.
type OrdersResponse struct {
	Envelope
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
}

// OrderResponse answers single-order operations.
type OrderResponse struct {
	Envelope
	Order *domain.Order `json:"order,omitempty"`
}

// PharmaciesResponse answers directory listings.
type PharmaciesResponse struct {
	Envelope
	Pharmacies []domain.Pharmacy `json:"pharmacies"`
	Total      int               `json:"total"`
}

// PharmacyResponse answers single-pharmacy lookups.
type PharmacyResponse struct {
	Envelope
	Pharmacy *domain.Pharmacy `json:"pharmacy,omitempty"`
}

// NearbyResponse answers radius searches, closest first.
type NearbyResponse struct {
	Envelope
	Pharmacies   []NearbyPharmacy `json:"pharmacies"`
	SearchRadius float64          `json:"search_radius"`
	TotalFound   int              `json:"total_found"`
}

// ServicesResponse lists the distinct services offered across pharmacies.
type ServicesResponse struct {
	Envelope
	Services []string `json:"services"`
}

// HoursResponse answers operating-hour queries for one date.
type HoursResponse struct {
	Envelope
	PharmacyID   string            `json:"pharmacy_id,omitempty"`
	PharmacyName string            `json:"pharmacy_name,omitempty"`
	Date         string            `json:"date,omitempty"`
	Day          string            `json:"day,omitempty"`
	Hours        string            `json:"hours,omitempty"`
	IsOpen       bool              `json:"is_open"`
	AllHours     map[string]string `json:"all_hours,omitempty"`
}
