package domain

import "time"

// CartItem is one row of a user's cart. A cart holds at most one item per
// medicine; re-adding a medicine bumps Quantity instead of inserting a row.
type CartItem struct {
	ID         string    `json:"id"`
	MedicineID string    `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
