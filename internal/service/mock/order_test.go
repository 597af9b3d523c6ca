package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmastore/p/domain"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

type orderTestEnv struct {
	store     *storage.Store
	medicines *Medicine
	cart      *Cart
	orders    *Order
	token     string
}

func newOrderTestEnv(t *testing.T) orderTestEnv {
	t.Helper()
	store := newTestStore(t)
	medicines := NewMedicine(store, testSecret)
	return orderTestEnv{
		store:     store,
		medicines: medicines,
		cart:      NewCart(store, testSecret),
		orders:    NewOrder(store, testSecret, medicines),
		token:     loginJohn(t, store),
	}
}

func TestCreateOrder(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_001", 2).Success) // 12.99 each
	require.True(t, env.cart.AddToCart(ctx, env.token, "med_013", 1).Success) // 8.99 each

	resp := env.orders.CreateOrder(ctx, env.token, service.OrderInput{Notes: "leave at door"})
	require.True(t, resp.Success, resp.Message)
	order := resp.Order
	require.NotNil(t, order)

	assert.Equal(t, "user_001", order.UserID)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 34.97, order.TotalAmount)
	assert.Equal(t, "leave at door", order.Notes)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "med_001", order.Items[0].MedicineID)
	assert.Equal(t, 12.99, order.Items[0].UnitPrice)
	assert.Equal(t, 25.98, order.Items[0].TotalPrice)

	// Payment method and address default from the profile when omitted.
	assert.Equal(t, domain.PaymentCreditCard, order.PaymentMethod)
	require.NotNil(t, order.DeliveryAddress)
	assert.Equal(t, "123 Main St", order.DeliveryAddress.Street)

	// Delivery estimate sits two days out.
	assert.WithinDuration(t, order.CreatedAt.Add(48*time.Hour), order.EstimatedDelivery, time.Second)

	// Checkout commits stock and empties the cart.
	med := env.medicines.GetMedicineByID(ctx, "med_001")
	assert.Equal(t, 148, med.Medicine.StockQuantity)

	view := env.cart.GetCart(ctx, env.token)
	require.True(t, view.Success)
	assert.Empty(t, view.CartItems)
}

func TestCreateOrderExplicitDetails(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_001", 1).Success)

	address := &domain.Address{Street: "9 Elm St", City: "Springfield", State: "IL", ZipCode: "62704", Country: "USA"}
	resp := env.orders.CreateOrder(ctx, env.token, service.OrderInput{
		DeliveryAddress: address,
		PaymentMethod:   domain.PaymentCash,
	})
	require.True(t, resp.Success)
	assert.Equal(t, domain.PaymentCash, resp.Order.PaymentMethod)
	assert.Equal(t, "9 Elm St", resp.Order.DeliveryAddress.Street)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	env := newOrderTestEnv(t)

	resp := env.orders.CreateOrder(context.Background(), env.token, service.OrderInput{})
	require.False(t, resp.Success)
	assert.Equal(t, service.CodeEmptyCart, resp.Code)
	assert.Equal(t, "Cart is empty", resp.Message)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	env := newOrderTestEnv(t)

	resp := env.orders.CreateOrder(context.Background(), "garbage", service.OrderInput{})
	require.False(t, resp.Success)
	assert.Equal(t, service.CodeAuth, resp.Code)
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_001", 1).Success)
	created := env.orders.CreateOrder(ctx, env.token, service.OrderInput{})
	require.True(t, created.Success)

	// Reprice the catalogue entry after the fact.
	medicines := storage.Get(env.store, storage.KeyMockMedicines, []domain.Medicine(nil))
	for i := range medicines {
		if medicines[i].ID == "med_001" {
			medicines[i].Price = 99.99
		}
	}
	env.store.Set(storage.KeyMockMedicines, medicines)

	fetched := env.orders.GetOrderByID(ctx, env.token, created.Order.ID)
	require.True(t, fetched.Success)
	assert.Equal(t, 12.99, fetched.Order.Items[0].UnitPrice)
	assert.Equal(t, 12.99, fetched.Order.TotalAmount)
}

func TestGetOrders(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_001", 1).Success)
	first := env.orders.CreateOrder(ctx, env.token, service.OrderInput{})
	require.True(t, first.Success)

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_002", 1).Success)
	second := env.orders.CreateOrder(ctx, env.token, service.OrderInput{})
	require.True(t, second.Success)

	cancelled := env.orders.CancelOrder(ctx, env.token, first.Order.ID)
	require.True(t, cancelled.Success)

	t.Run("newest first", func(t *testing.T) {
		resp := env.orders.GetOrders(ctx, env.token, service.OrderFilter{})
		require.True(t, resp.Success)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, second.Order.ID, resp.Orders[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		resp := env.orders.GetOrders(ctx, env.token, service.OrderFilter{Status: string(domain.OrderCancelled)})
		require.True(t, resp.Success)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, first.Order.ID, resp.Orders[0].ID)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		other := NewAuth(env.store, testSecret).Login(ctx, "jane.smith@example.com", "securepass456")
		require.True(t, other.Success)

		resp := env.orders.GetOrders(ctx, other.Token, service.OrderFilter{})
		require.True(t, resp.Success)
		assert.Zero(t, resp.Total)
	})
}

func TestGetOrderByID(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_001", 1).Success)
	created := env.orders.CreateOrder(ctx, env.token, service.OrderInput{})
	require.True(t, created.Success)

	resp := env.orders.GetOrderByID(ctx, env.token, created.Order.ID)
	require.True(t, resp.Success)
	assert.Equal(t, created.Order.ID, resp.Order.ID)

	t.Run("unknown id", func(t *testing.T) {
		resp := env.orders.GetOrderByID(ctx, env.token, "order_missing")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeNotFound, resp.Code)
	})

	t.Run("someone else's order reads as missing", func(t *testing.T) {
		other := NewAuth(env.store, testSecret).Login(ctx, "jane.smith@example.com", "securepass456")
		require.True(t, other.Success)

		resp := env.orders.GetOrderByID(ctx, other.Token, created.Order.ID)
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeNotFound, resp.Code)
	})
}

func TestCancelOrder(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	require.True(t, env.cart.AddToCart(ctx, env.token, "med_001", 1).Success)
	created := env.orders.CreateOrder(ctx, env.token, service.OrderInput{})
	require.True(t, created.Success)

	resp := env.orders.CancelOrder(ctx, env.token, created.Order.ID)
	require.True(t, resp.Success)
	assert.Equal(t, domain.OrderCancelled, resp.Order.Status)

	t.Run("cancelling twice is terminal", func(t *testing.T) {
		resp := env.orders.CancelOrder(ctx, env.token, created.Order.ID)
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeTerminalState, resp.Code)
	})
}

func TestCancelDeliveredOrder(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	delivered := domain.Order{
		ID:     "order_delivered",
		UserID: "user_001",
		Status: domain.OrderDelivered,
	}
	env.store.Set(storage.KeyMockOrders, []domain.Order{delivered})

	resp := env.orders.CancelOrder(ctx, env.token, delivered.ID)
	require.False(t, resp.Success)
	assert.Equal(t, service.CodeTerminalState, resp.Code)
	assert.Equal(t, "Order cannot be cancelled", resp.Message)

	// The stored order is untouched.
	fetched := env.orders.GetOrderByID(ctx, env.token, delivered.ID)
	require.True(t, fetched.Success)
	assert.Equal(t, domain.OrderDelivered, fetched.Order.Status)
}
