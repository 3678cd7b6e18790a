package models

import "time"

// Order status values. An order starts out pending and is completed by an
// administrative action; there are no other transitions.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
)

// OrderItem represents a single line within an order. Price is the unit
// price snapshot taken at checkout, independent of later listing edits.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a completed checkout. Orders are immutable after
// creation except for the status transition and the one-time rating.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID   string      `json:"customer_id" gorm:"index;type:varchar(36)"`
	CustomerName string      `json:"customer_name"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	Rating       *int        `json:"rating,omitempty"` // 1-5, set at most once
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
