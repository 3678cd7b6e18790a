package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"agromarket/internal/market"
	"agromarket/internal/models"
	"agromarket/internal/repositories"
	"agromarket/internal/session"

	"github.com/google/uuid"
)

// Sentinel errors surfaced to the handler layer.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductExpired    = errors.New("product is expired")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrAlreadyRated      = errors.New("order has already been rated")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// EventPublisher publishes marketplace events, typically to RabbitMQ. A nil
// publisher disables events without failing the operation that produced them.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
	now         func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		events:      events,
		now:         time.Now,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Checkout turns the cart into a pending order. Every line is re-validated
// against the current catalog: the product must exist, must not be expired,
// and the quantity must fit within what the producer offers. Unit prices are
// snapshotted at this moment and the total derived from the line subtotals.
// On any failure no order is created and the cart is left to the caller.
func (s *OrderService) Checkout(sess session.Session, cart market.Cart) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	items := make([]models.OrderItem, 0, len(cart))
	var total float64

	for _, line := range cart {
		product, err := s.productRepo.GetByID(line.Product.ID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", line.Product.ID, err)
		}
		if market.EvaluateSpoilage(product.ExpirationDate, now) == market.SpoilageExpired {
			return nil, fmt.Errorf("%w: %s", ErrProductExpired, product.Name)
		}
		if line.Quantity > product.MaxQuantity {
			return nil, fmt.Errorf("%w for %s (requested: %d, available: %d)",
				ErrInsufficientStock, product.Name, line.Quantity, product.MaxQuantity)
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(line.Quantity)
	}

	customerName := sess.Name
	if customerName == "" {
		customerName = "Guest"
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		CustomerID:   sess.UserID,
		CustomerName: customerName,
		Items:        items,
		Total:        total,
		Status:       models.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.CustomerID,
		"status":  order.Status,
		"total":   order.Total,
	})

	return order, nil
}

// RateOrder attaches the one-time customer rating to an order and folds it
// into the running average of every product the order contains. A second
// rating of the same order is rejected.
func (s *OrderService) RateOrder(id string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.Rating != nil {
		return ErrAlreadyRated
	}

	if err := s.orderRepo.SetRating(id, rating); err != nil {
		return fmt.Errorf("failed to rate order %s: %w", id, err)
	}

	// Fold the rating into each product's running average. Missing products
	// (deleted since the order) are skipped rather than failing the rating.
	for _, item := range order.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			log.Printf("Skipping rating update for product %s: %v", item.ProductID, err)
			continue
		}
		product.ReviewCount++
		product.Rating = ((product.Rating * float64(product.ReviewCount-1)) + float64(rating)) / float64(product.ReviewCount)
		if err := s.productRepo.Update(product); err != nil {
			log.Printf("Failed to update rating for product %s: %v", item.ProductID, err)
		}
	}

	s.publish("order.rated", map[string]interface{}{
		"orderID": id,
		"rating":  rating,
	})

	return nil
}

// UpdateOrderStatus moves an order between its lifecycle states. The only
// forward transition is Pending to Completed; completed orders stay
// completed.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if status != models.OrderStatusPending && status != models.OrderStatusCompleted {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.Status == models.OrderStatusCompleted && status == models.OrderStatusPending {
		return fmt.Errorf("%w: order %s is already completed", ErrInvalidStatus, id)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	if status == models.OrderStatusCompleted {
		s.publish("order.completed", map[string]interface{}{"orderID": id})
	}
	return nil
}

// publish sends a marketplace event, best-effort. Failures are logged and
// never propagate to the caller.
func (s *OrderService) publish(routingKey string, payload map[string]interface{}) {
	if s.events == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.events.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
