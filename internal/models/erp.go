package models

// Customer represents a customer in the simulated ERP dataset
type Customer struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Region    string `json:"region" db:"region"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// Product represents a product in the simulated ERP dataset
type Product struct {
	ID        int     `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Category  string  `json:"category" db:"category"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
}

// Order represents an order placed by a customer
type Order struct {
	ID         int    `json:"id" db:"id"`
	CustomerID int    `json:"customer_id" db:"customer_id"`
	OrderDate  string `json:"order_date" db:"order_date"`
	Status     string `json:"status" db:"status"`
}

// OrderItem represents a single line of an order. Amount is always
// UnitPrice * Quantity rounded to two decimals.
type OrderItem struct {
	ID        int     `json:"id" db:"id"`
	OrderID   int     `json:"order_id" db:"order_id"`
	ProductID int     `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Amount    float64 `json:"amount" db:"amount"`
}

// Sale is a flattened sales fact derived from an order item, carrying the
// purchasing customer's region and the parent order's date.
type Sale struct {
	ID        int     `json:"id" db:"id"`
	OrderID   int     `json:"order_id" db:"order_id"`
	ProductID int     `json:"product_id" db:"product_id"`
	Amount    float64 `json:"amount" db:"amount"`
	SaleDate  string  `json:"sale_date" db:"sale_date"`
	Region    string  `json:"region" db:"region"`
}

// InventoryRecord tracks stock on hand for a single product
type InventoryRecord struct {
	ID        int    `json:"id" db:"id"`
	ProductID int    `json:"product_id" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
	Warehouse string `json:"warehouse" db:"warehouse"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Customer regions
var Regions = []string{"North", "South", "East", "West", "Central"}

// Product categories
var Categories = []string{"Electronics", "Office", "Furniture", "Supplies", "Services"}

// Order statuses in generation order
var Statuses = []string{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled}

// Warehouse labels
var Warehouses = []string{"A", "B", "C"}
