package model

import "time"

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a request for service placed by a logged-in customer.
// ProductTitle, CustomerName and CustomerPhone are copied at creation time
// and are never re-synced with the product or user they came from.
type Order struct {
	ID            string      `json:"id"`
	ProductID     string      `json:"productId"`
	ProductTitle  string      `json:"productTitle"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerID    string      `json:"customerId,omitempty"`
	Status        OrderStatus `json:"status"`
	Date          time.Time   `json:"date"`
}

// PlaceOrderRequest is the body of a customer order
type PlaceOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateOrderStatusRequest is the body of an admin status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}
