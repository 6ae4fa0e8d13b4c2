package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is immutable after creation except for Status.
type Order struct {
	ID              int64       `db:"id" json:"id"`
	CustomerName    string      `db:"customer_name" json:"customer_name"`
	CustomerPhone   string      `db:"customer_phone" json:"customer_phone"`
	CustomerAddress string      `db:"customer_address" json:"customer_address"`
	TotalAmount     float64     `db:"total_amount" json:"total_amount"`
	Status          OrderStatus `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}

// OrderItem carries the unit price snapshot taken at purchase time;
// it never follows later product price changes.
type OrderItem struct {
	ID        int64   `db:"id" json:"id"`
	OrderID   int64   `db:"order_id" json:"order_id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}

// OrderItemDetail is an order item joined with the product it points at.
type OrderItemDetail struct {
	OrderItem
	Name     string `db:"name" json:"name"`
	ImageURL string `db:"image_url" json:"image_url"`
}

// OrderSummary is an order row with its item count, used by listings.
type OrderSummary struct {
	Order
	ItemCount int `db:"item_count" json:"item_count"`
}
