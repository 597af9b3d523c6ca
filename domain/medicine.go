package domain

import "time"

// AvailabilityStatus is derived from stock: out_of_stock iff the quantity is
// zero, low_stock at or below LowStockThreshold, available otherwise.
type AvailabilityStatus string

const (
	Available  AvailabilityStatus = "available"
	LowStock   AvailabilityStatus = "low_stock"
	OutOfStock AvailabilityStatus = "out_of_stock"
)

// LowStockThreshold is the stock level at or below which a medicine is
// reported as low_stock.
const LowStockThreshold = 10

// AvailabilityFor derives the availability status for a stock level.
func AvailabilityFor(stock int) AvailabilityStatus {
	switch {
	case stock == 0:
		return OutOfStock
	case stock <= LowStockThreshold:
		return LowStock
	default:
		return Available
	}
}

type Medicine struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Brand                string             `json:"brand"`
	Category             string             `json:"category"`
	Description          string             `json:"description"`
	Price                float64            `json:"price"`
	StockQuantity        int                `json:"stock_quantity"`
	PrescriptionRequired bool               `json:"prescription_required"`
	AvailabilityStatus   AvailabilityStatus `json:"availability_status"`
	DosageForm           string             `json:"dosage_form"`
	ActiveIngredients    []string           `json:"active_ingredients"`
	Warnings             []string           `json:"warnings,omitempty"`
	ImageURL             *string            `json:"image_url"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}
