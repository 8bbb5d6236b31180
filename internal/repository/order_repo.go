package repository

import (
	"context"

	"technomaster/internal/kv"
	"technomaster/internal/model"
)

// OrderRepository defines operations for order data
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	Add(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error)
}

type orderRepository struct {
	orders table[model.Order]
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(store kv.Store) OrderRepository {
	return &orderRepository{orders: table[model.Order]{store: store, key: OrdersKey}}
}

// List returns all orders, newest first
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	orders, _, err := r.orders.load(ctx)
	return orders, err
}

// FindByID retrieves an order by its ID
func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil // Not found
}

// Add prepends an order
func (r *orderRepository) Add(ctx context.Context, order *model.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.orders.persist(ctx, append([]model.Order{*order}, orders...))
}

// UpdateStatus rewrites the status of the matching order and reports whether one matched.
// A missing id is not an error; the table is written back unchanged.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			found = true
		}
	}
	if err := r.orders.persist(ctx, orders); err != nil {
		return false, err
	}
	return found, nil
}
