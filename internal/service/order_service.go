package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"technomaster/internal/model"
	"technomaster/internal/repository"
	"technomaster/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidStatus   = errors.New("invalid order status")
)

// OrderService defines the ordering workflow
type OrderService interface {
	PlaceOrder(ctx context.Context, product *model.Product, customer *model.User) (*model.Order, error)
	PlaceOrderForCurrent(ctx context.Context, productID string) (*model.Order, error)
	PlaceOrderForCustomer(ctx context.Context, productID string, customer *model.User) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	PendingCount(ctx context.Context) (int, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// PlaceOrder records a pending order. Product title and customer name/phone are
// snapshotted; later changes to the product or user do not reach the order.
// Both product and customer must be non-nil.
func (s *orderService) PlaceOrder(ctx context.Context, product *model.Product, customer *model.User) (*model.Order, error) {
	order := &model.Order{
		ID:            utils.NewID(),
		ProductID:     product.ID,
		ProductTitle:  product.Title,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerID:    customer.ID,
		Status:        model.OrderStatusPending,
		Date:          time.Now().UTC(),
	}
	if err := s.orderRepo.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("product_id", order.ProductID),
		zap.String("customer_id", order.CustomerID))
	return order, nil
}

// PlaceOrderForCurrent resolves the session user and the product, then places the order
func (s *orderService) PlaceOrderForCurrent(ctx context.Context, productID string) (*model.Order, error) {
	customer, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.PlaceOrderForCustomer(ctx, productID, customer)
}

// PlaceOrderForCustomer resolves productID and orders it for an already known customer
func (s *orderService) PlaceOrderForCustomer(ctx context.Context, productID string, customer *model.User) (*model.Order, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.PlaceOrder(ctx, product, customer)
}

// UpdateOrderStatus sets the status of an order. There is no transition guard:
// the last write wins. A missing id is a silent no-op reported as found=false.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, ErrInvalidStatus
	}
	found, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	if !found {
		s.logger.Debug("status update for unknown order ignored", zap.String("order_id", id))
	}
	return found, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// PendingCount is the number of orders still waiting for an admin decision
func (s *orderService) PendingCount(ctx context.Context) (int, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, o := range orders {
		if o.Status == model.OrderStatusPending {
			n++
		}
	}
	return n, nil
}
