package service

import (
	"net/url"
	"strconv"

	"pharmastore/p/domain"
)

// DefaultPageSize is the catalogue page size when the caller does not ask
// for one.
const DefaultPageSize = 12

// Catalogue sort orders.
const (
	SortName      = "name"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
}

// ProfileUpdate is a partial profile patch; nil fields are left unchanged.
type ProfileUpdate struct {
	FirstName     *string               `json:"first_name,omitempty"`
	LastName      *string               `json:"last_name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	DateOfBirth   *string               `json:"date_of_birth,omitempty"`
	Address       *domain.Address       `json:"address,omitempty"`
	InsuranceInfo *domain.InsuranceInfo `json:"insurance_info,omitempty"`
}

// MedicineFilter holds the composable catalogue filters. MinPrice, MaxPrice
// and PrescriptionRequired stay strings on purpose: non-numeric and
// non-boolean values are ignored rather than rejected.
type MedicineFilter struct {
	Search               string
	Category             string
	MinPrice             string
	MaxPrice             string
	PrescriptionRequired string
	AvailabilityStatus   string
	Sort                 string
	Page                 int
	Limit                int
}

// Values encodes the filter as request query parameters. Zero values are
// omitted so mock and HTTP paths see identical defaults.
func (f MedicineFilter) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.MinPrice != "" {
		v.Set("min_price", f.MinPrice)
	}
	if f.MaxPrice != "" {
		v.Set("max_price", f.MaxPrice)
	}
	if f.PrescriptionRequired != "" {
		v.Set("prescription_required", f.PrescriptionRequired)
	}
	if f.AvailabilityStatus != "" {
		v.Set("availability_status", f.AvailabilityStatus)
	}
	if f.Sort != "" {
		v.Set("sort_by", f.Sort)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// PharmacyFilter narrows the pharmacy directory listing.
type PharmacyFilter struct {
	City        string
	State       string
	Service     string
	PartnerOnly bool
}

func (f PharmacyFilter) Values() url.Values {
	v := url.Values{}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.State != "" {
		v.Set("state", f.State)
	}
	if f.Service != "" {
		v.Set("service", f.Service)
	}
	if f.PartnerOnly {
		v.Set("partner_only", "true")
	}
	return v
}

// OrderInput carries checkout details; the items themselves come from the
// caller's cart.
type OrderInput struct {
	DeliveryAddress *domain.Address      `json:"delivery_address,omitempty"`
	PaymentMethod   domain.PaymentMethod `json:"payment_method,omitempty"`
	Notes           string               `json:"notes,omitempty"`
}

// OrderFilter narrows an order listing. Empty Status means all statuses.
type OrderFilter struct {
	Status string
}

// CartEntry is a cart row joined with its current medicine record.
type CartEntry struct {
	domain.CartItem
	Medicine *domain.Medicine `json:"medicine"`
}

// NearbyPharmacy is a pharmacy annotated with its great-circle distance in
// kilometres from the query point.
type NearbyPharmacy struct {
	domain.Pharmacy
	Distance float64 `json:"distance"`
}
