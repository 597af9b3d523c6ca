package domain

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderProcessing     OrderStatus = "processing"
	OrderReadyForPickup OrderStatus = "ready_for_pickup"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "credit_card"
	PaymentDebitCard     PaymentMethod = "debit_card"
	PaymentInsurance     PaymentMethod = "insurance"
	PaymentCash          PaymentMethod = "cash"
	PaymentDigitalWallet PaymentMethod = "digital_wallet"
)

// OrderItem is an immutable snapshot of a cart line at order creation time,
// decoupled from later medicine price or stock changes.
type OrderItem struct {
	MedicineID string  `json:"medicine_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type Order struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	Status            OrderStatus   `json:"status"`
	Items             []OrderItem   `json:"items"`
	TotalAmount       float64       `json:"total_amount"`
	DeliveryAddress   *Address      `json:"delivery_address"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
}
