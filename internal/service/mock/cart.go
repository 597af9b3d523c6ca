package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pharmastore/p/domain"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

// Cart emulates the shopping cart backend. The cart is session-scoped: one
// row per medicine, merged on add, cleared wholesale on logout or checkout.
type Cart struct {
	session
}

func NewCart(store *storage.Store, secret string) *Cart {
	return &Cart{session{store: store, secret: secret}}
}

func (c *Cart) items() []domain.CartItem {
	return storage.Get(c.store, storage.KeyCartItems, []domain.CartItem(nil))
}

func (c *Cart) saveItems(items []domain.CartItem) bool {
	return c.store.Set(storage.KeyCartItems, items)
}

func (c *Cart) findMedicine(id string) (domain.Medicine, bool) {
	for _, med := range c.catalogue() {
		if med.ID == id {
			return med, true
		}
	}
	return domain.Medicine{}, false
}

func (c *Cart) GetCart(ctx context.Context, token string) *service.CartResponse {
	if !c.tokenValid(token) {
		return &service.CartResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}

	// Join each row with the live medicine record, silently dropping rows
	// whose medicine no longer resolves.
	entries := make([]service.CartEntry, 0)
	totalItems := 0
	totalAmount := decimal.Zero
	for _, item := range c.items() {
		med, ok := c.findMedicine(item.MedicineID)
		if !ok {
			continue
		}
		entries = append(entries, service.CartEntry{CartItem: item, Medicine: &med})
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(lineTotal(med.Price, item.Quantity))
	}

	return &service.CartResponse{
		Envelope:    service.OK(""),
		CartItems:   entries,
		TotalItems:  totalItems,
		TotalAmount: round2(totalAmount),
	}
}

func (c *Cart) AddToCart(ctx context.Context, token, medicineID string, quantity int) *service.CartItemResponse {
	if !c.tokenValid(token) {
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}
	if medicineID == "" || quantity < 1 {
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeValidation, "Invalid medicine ID or quantity")}
	}

	medicine, ok := c.findMedicine(medicineID)
	if !ok {
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeNotFound, "Medicine not found")}
	}
	if medicine.AvailabilityStatus == domain.OutOfStock {
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeUnavailable, "Medicine is currently not available")}
	}

	items := c.items()
	now := time.Now().UTC()

	existing := -1
	inCart := 0
	for i := range items {
		if items[i].MedicineID == medicineID {
			existing = i
			inCart = items[i].Quantity
			break
		}
	}

	// remaining is the exact quantity still addable on top of whatever the
	// cart already holds; both failure messages report it.
	remaining := medicine.StockQuantity - inCart
	if quantity > remaining {
		if existing >= 0 {
			return &service.CartItemResponse{Envelope: service.Fail(service.CodeInsufficientStock,
				fmt.Sprintf("Cannot add %d more. Only %d additional units available", quantity, remaining))}
		}
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeInsufficientStock,
			fmt.Sprintf("Only %d units available in stock", remaining))}
	}

	if existing >= 0 {
		items[existing].Quantity = inCart + quantity
		items[existing].UpdatedAt = now
		c.saveItems(items)
		return &service.CartItemResponse{
			Envelope: service.OK("Cart updated successfully"),
			CartItem: &service.CartEntry{CartItem: items[existing], Medicine: &medicine},
		}
	}

	item := domain.CartItem{
		ID:         "cart_" + uuid.NewString(),
		MedicineID: medicineID,
		Quantity:   quantity,
		AddedAt:    now,
		UpdatedAt:  now,
	}
	items = append(items, item)
	c.saveItems(items)

	return &service.CartItemResponse{
		Envelope: service.OK("Item added to cart successfully"),
		CartItem: &service.CartEntry{CartItem: item, Medicine: &medicine},
	}
}

func (c *Cart) UpdateCartItem(ctx context.Context, token, cartItemID string, quantity int) *service.CartItemResponse {
	if !c.tokenValid(token) {
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}
	if quantity < 1 {
		return &service.CartItemResponse{Envelope: service.Fail(service.CodeValidation, "Quantity must be at least 1")}
	}

	items := c.items()
	for i := range items {
		if items[i].ID != cartItemID {
			continue
		}
		medicine, ok := c.findMedicine(items[i].MedicineID)
		if !ok {
			return &service.CartItemResponse{Envelope: service.Fail(service.CodeNotFound, "Medicine not found")}
		}
		if quantity > medicine.StockQuantity {
			return &service.CartItemResponse{Envelope: service.Fail(service.CodeInsufficientStock,
				fmt.Sprintf("Only %d units available in stock", medicine.StockQuantity))}
		}
		items[i].Quantity = quantity
		items[i].UpdatedAt = time.Now().UTC()
		c.saveItems(items)
		return &service.CartItemResponse{
			Envelope: service.OK("Cart item updated successfully"),
			CartItem: &service.CartEntry{CartItem: items[i], Medicine: &medicine},
		}
	}
	return &service.CartItemResponse{Envelope: service.Fail(service.CodeNotFound, "Cart item not found")}
}

func (c *Cart) RemoveFromCart(ctx context.Context, token, cartItemID string) *service.Envelope {
	if !c.tokenValid(token) {
		env := service.Fail(service.CodeAuth, "Authentication required")
		return &env
	}

	items := c.items()
	for i := range items {
		if items[i].ID == cartItemID {
			items = append(items[:i], items[i+1:]...)
			c.saveItems(items)
			env := service.OK("Item removed from cart successfully")
			return &env
		}
	}
	env := service.Fail(service.CodeNotFound, "Cart item not found")
	return &env
}

func (c *Cart) ClearCart(ctx context.Context, token string) *service.Envelope {
	if !c.tokenValid(token) {
		env := service.Fail(service.CodeAuth, "Authentication required")
		return &env
	}
	c.saveItems([]domain.CartItem{})
	env := service.OK("Cart cleared successfully")
	return &env
}

func (c *Cart) GetCartSummary(ctx context.Context, token string) *service.CartSummaryResponse {
	if !c.tokenValid(token) {
		return &service.CartSummaryResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}

	totalItems := 0
	totalAmount := decimal.Zero
	for _, item := range c.items() {
		med, ok := c.findMedicine(item.MedicineID)
		if !ok {
			continue
		}
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(lineTotal(med.Price, item.Quantity))
	}

	return &service.CartSummaryResponse{
		Envelope:    service.OK(""),
		TotalItems:  totalItems,
		TotalAmount: round2(totalAmount),
	}
}
