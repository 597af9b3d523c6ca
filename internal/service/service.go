// Package service defines the domain service contracts shared by the mock
// and HTTP-backed implementations. The two variants of each interface must
// stay method-for-method and envelope-for-envelope identical; consumers are
// never aware of which one is bound.
package service

import "context"

// Auth manages sessions and the user profile.
type Auth interface {
	Login(ctx context.Context, email, password string) *AuthResponse
	Register(ctx context.Context, input RegisterInput) *AuthResponse
	GetProfile(ctx context.Context, token string) *ProfileResponse
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) *ProfileResponse
	// Logout always clears local session state; backend notification is
	// best-effort and its outcome never surfaces to the caller.
	Logout(ctx context.Context, token string) *Envelope
}

// Medicine is the read-mostly catalogue.
type Medicine interface {
	GetMedicines(ctx context.Context, filter MedicineFilter) *MedicineListResponse
	GetMedicineByID(ctx context.Context, id string) *MedicineResponse
	GetCategories(ctx context.Context) *CategoriesResponse
	SearchMedicines(ctx context.Context, query string, limit int) *MedicinesResponse
	GetFeaturedMedicines(ctx context.Context, limit int) *MedicinesResponse
	GetMedicinesByCategory(ctx context.Context, category string, limit int) *MedicinesResponse
	CheckAvailability(ctx context.Context, id string, quantity int) *AvailabilityResponse
}

// Cart is the per-session shopping cart. At most one row exists per
// medicine; adds merge into the existing row.
type Cart interface {
	GetCart(ctx context.Context, token string) *CartResponse
	AddToCart(ctx context.Context, token, medicineID string, quantity int) *CartItemResponse
	UpdateCartItem(ctx context.Context, token, cartItemID string, quantity int) *CartItemResponse
	RemoveFromCart(ctx context.Context, token, cartItemID string) *Envelope
	ClearCart(ctx context.Context, token string) *Envelope
	GetCartSummary(ctx context.Context, token string) *CartSummaryResponse
}

// Order creates and tracks orders owned by the authenticated user.
type Order interface {
	CreateOrder(ctx context.Context, token string, input OrderInput) *OrderResponse
	GetOrders(ctx context.Context, token string, filter OrderFilter) *OrdersResponse
	GetOrderByID(ctx context.Context, token, id string) *OrderResponse
	CancelOrder(ctx context.Context, token, id string) *OrderResponse
}

// Pharmacy serves the read-only location directory.
type Pharmacy interface {
	GetPharmacies(ctx context.Context, filter PharmacyFilter) *PharmaciesResponse
	GetPharmacyByID(ctx context.Context, id string) *PharmacyResponse
	GetNearbyPharmacies(ctx context.Context, lat, lng, radius float64) *NearbyResponse
	GetPharmacyServices(ctx context.Context) *ServicesResponse
	// GetPharmacyHours resolves hours for date (YYYY-MM-DD, empty = today).
	GetPharmacyHours(ctx context.Context, id, date string) *HoursResponse
}

// Services is the stable per-domain handle set bound once at startup.
type Services struct {
	Auth     Auth
	Medicine Medicine
	Cart     Cart
	Order    Order
	Pharmacy Pharmacy
}
