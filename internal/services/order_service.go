package services

import (
	"encoding/json"
	"fmt"
	"log"

	"thanhha/internal/models"
	"thanhha/internal/repositories"
)

// EventPublisher publishes order events to the message broker. It is
// satisfied by *rabbitmq.Client; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to placed orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all placed orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// PlaceOrder persists a confirmed checkout and publishes an order.placed
// event. Publishing is best-effort: a broker failure is logged but never
// blocks the order, since reaching the success step is a user-declared
// action, not a verified payment.
func (s *OrderService) PlaceOrder(order *models.Order) error {
	if err := s.orderRepo.Create(order); err != nil {
		return fmt.Errorf("failed to create order in repository: %w", err)
	}

	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping order.placed publication.")
		return nil
	}

	event := map[string]interface{}{
		"orderID":   order.ID,
		"reference": order.Reference,
		"payment":   order.PaymentMethod,
		"total":     order.Total,
		"status":    order.Status,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return nil
	}
	if err := s.publisher.Publish("order", "order.placed", body); err != nil {
		log.Printf("Warning: Failed to publish order.placed event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order.placed event for order %s", order.ID)
	}
	return nil
}

// UpdateOrderStatus updates the fulfillment status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{"pending": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
