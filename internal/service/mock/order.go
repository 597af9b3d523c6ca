package mock

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pharmastore/p/domain"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

// estimatedDeliveryWindow is added to the creation time to produce the
// estimated delivery date.
const estimatedDeliveryWindow = 2 * 24 * time.Hour

// Order emulates the order backend. Orders snapshot the cart at creation;
// later medicine mutations never touch them.
type Order struct {
	session
	medicines *Medicine
}

func NewOrder(store *storage.Store, secret string, medicines *Medicine) *Order {
	return &Order{session: session{store: store, secret: secret}, medicines: medicines}
}

func (o *Order) all() []domain.Order {
	return storage.Get(o.store, storage.KeyMockOrders, []domain.Order(nil))
}

func (o *Order) save(orders []domain.Order) bool {
	return o.store.Set(storage.KeyMockOrders, orders)
}

func (o *Order) CreateOrder(ctx context.Context, token string, input service.OrderInput) *service.OrderResponse {
	user, ok := o.currentUser(token)
	if !ok {
		return &service.OrderResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}

	cartItems := storage.Get(o.store, storage.KeyCartItems, []domain.CartItem(nil))
	if len(cartItems) == 0 {
		return &service.OrderResponse{Envelope: service.Fail(service.CodeEmptyCart, "Cart is empty")}
	}

	// Snapshot the cart at current catalogue prices. Orphaned rows are
	// dropped, same as the cart view.
	var items []domain.OrderItem
	total := decimal.Zero
	for _, item := range cartItems {
		med, found := findByID(o.catalogue(), item.MedicineID)
		if !found {
			continue
		}
		line := lineTotal(med.Price, item.Quantity)
		items = append(items, domain.OrderItem{
			MedicineID: med.ID,
			Name:       med.Name,
			Quantity:   item.Quantity,
			UnitPrice:  med.Price,
			TotalPrice: round2(line),
		})
		total = total.Add(line)
	}
	if len(items) == 0 {
		return &service.OrderResponse{Envelope: service.Fail(service.CodeEmptyCart, "Cart is empty")}
	}

	address := input.DeliveryAddress
	if address == nil {
		address = user.Address
	}
	payment := input.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCreditCard
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:                "order_" + uuid.NewString(),
		UserID:            user.ID,
		Status:            domain.OrderPending,
		Items:             items,
		TotalAmount:       round2(total),
		DeliveryAddress:   address,
		PaymentMethod:     payment,
		Notes:             input.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
	}

	orders := append(o.all(), order)
	o.save(orders)

	// Commit stock and empty the cart. Stock was validated at add-to-cart
	// time, not here; the two steps are not transactional.
	for _, item := range items {
		o.medicines.UpdateStock(item.MedicineID, -item.Quantity)
	}
	o.store.Set(storage.KeyCartItems, []domain.CartItem{})

	return &service.OrderResponse{
		Envelope: service.OK("Order created successfully"),
		Order:    &order,
	}
}

func (o *Order) GetOrders(ctx context.Context, token string, filter service.OrderFilter) *service.OrdersResponse {
	user, ok := o.currentUser(token)
	if !ok {
		return &service.OrdersResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}

	owned := make([]domain.Order, 0)
	for _, order := range o.all() {
		if order.UserID != user.ID {
			continue
		}
		if filter.Status != "" && string(order.Status) != filter.Status {
			continue
		}
		owned = append(owned, order)
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	return &service.OrdersResponse{
		Envelope: service.OK(""),
		Orders:   owned,
		Total:    len(owned),
	}
}

func (o *Order) GetOrderByID(ctx context.Context, token, id string) *service.OrderResponse {
	user, ok := o.currentUser(token)
	if !ok {
		return &service.OrderResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}

	// Missing and not-owned orders are indistinguishable so order IDs
	// cannot be enumerated.
	for _, order := range o.all() {
		if order.ID == id && order.UserID == user.ID {
			return &service.OrderResponse{Envelope: service.OK(""), Order: &order}
		}
	}
	return &service.OrderResponse{Envelope: service.Fail(service.CodeNotFound, "Order not found")}
}

func (o *Order) CancelOrder(ctx context.Context, token, id string) *service.OrderResponse {
	user, ok := o.currentUser(token)
	if !ok {
		return &service.OrderResponse{Envelope: service.Fail(service.CodeAuth, "Authentication required")}
	}

	orders := o.all()
	for i := range orders {
		if orders[i].ID != id || orders[i].UserID != user.ID {
			continue
		}
		if orders[i].Status.IsTerminal() {
			return &service.OrderResponse{Envelope: service.Fail(service.CodeTerminalState, "Order cannot be cancelled")}
		}
		orders[i].Status = domain.OrderCancelled
		orders[i].UpdatedAt = time.Now().UTC()
		o.save(orders)
		return &service.OrderResponse{
			Envelope: service.OK("Order cancelled successfully"),
			Order:    &orders[i],
		}
	}
	return &service.OrderResponse{Envelope: service.Fail(service.CodeNotFound, "Order not found")}
}

func findByID(medicines []domain.Medicine, id string) (domain.Medicine, bool) {
	for _, med := range medicines {
		if med.ID == id {
			return med, true
		}
	}
	return domain.Medicine{}, false
}
