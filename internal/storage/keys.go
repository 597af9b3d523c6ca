package storage

// KeyPrefix namespaces every stored key so the kv table can be shared with
// unrelated data.
const KeyPrefix = "pharmacy_"

// Session and cart state written by the services.
const (
	KeyAuthToken = KeyPrefix + "auth_token"
	KeyUserData  = KeyPrefix + "user_data"
	KeyCartItems = KeyPrefix + "cart_items"
)

// Mock-only fixture tables emulating backend storage.
const (
	KeyMockUsers     = KeyPrefix + "mock_users"
	KeyMockMedicines = KeyPrefix + "mock_medicines"
	KeyMockOrders    = KeyPrefix + "mock_orders"
)
