package config

import "strings"

// Backend endpoint paths. :name segments are substituted by BuildURL; the
// HTTP-backed services and the reference server must agree on every path.
const (
	EndpointAuthLogin    = "/api/auth/login"
	EndpointAuthRegister = "/api/auth/register"
	EndpointAuthProfile  = "/api/auth/profile"
	EndpointAuthLogout   = "/api/auth/logout"

	EndpointMedicines          = "/api/medicines"
	EndpointMedicineDetail     = "/api/medicines/:id"
	EndpointMedicineCategories = "/api/medicines/categories"
	EndpointMedicineSearch     = "/api/medicines/search"

	EndpointCart        = "/api/cart"
	EndpointCartItem    = "/api/cart/:id"
	EndpointCartSummary = "/api/cart/summary"

	EndpointOrders      = "/api/orders"
	EndpointOrderDetail = "/api/orders/:id"
	EndpointOrderCancel = "/api/orders/:id/cancel"

	EndpointPharmacies     = "/api/pharmacies"
	EndpointPharmacyDetail = "/api/pharmacies/:id"
	EndpointPharmacyNearby = "/api/pharmacies/nearby"
)

// BuildURL joins base and endpoint, replacing each :name placeholder with its
// value from params.
func BuildURL(base, endpoint string, params map[string]string) string {
	url := endpoint
	for name, value := range params {
		url = strings.ReplaceAll(url, ":"+name, value)
	}
	return strings.TrimRight(base, "/") + url
}
