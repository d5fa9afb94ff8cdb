package order

import (
	"context"
	"fmt"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type Service struct {
	repo      interfaces.OrderRepository
	publisher interfaces.MessagePublisher
	logger    logger.Logger
}

func NewService(repo interfaces.OrderRepository, publisher interfaces.MessagePublisher, logger logger.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout snapshots the session cart into a persisted order and hands it to
// the kitchen over the broker.
func (s *Service) Checkout(ctx context.Context, cmd interfaces.CheckoutCommand) (*domain.Order, error) {
	order, err := domain.NewOrderFromCart(
		cmd.RestaurantID,
		cmd.CustomerName,
		domain.OrderType(cmd.OrderType),
		cmd.Entries,
		cmd.TableNumber,
		cmd.DeliveryAddress,
	)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	number, err := s.repo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}
	order.Number = number

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", "", nil, err)
		return nil, err
	}
	s.logger.Debug("order_received", "Order created in DB", "", map[string]interface{}{
		"order_number":  order.Number,
		"restaurant_id": order.RestaurantID.String(),
	})

	msg := interfaces.OrderMessage{
		OrderNumber:     order.Number,
		RestaurantID:    order.RestaurantID,
		CustomerName:    order.CustomerName,
		OrderType:       order.Type,
		TableNumber:     order.TableNumber,
		DeliveryAddress: order.DeliveryAddress,
		Items:           order.Items,
		TotalCents:      order.TotalCents,
		Priority:        order.Priority,
	}

	if err := s.publisher.PublishOrder(ctx, msg); err != nil {
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish order", "", nil, err)
		return nil, err
	}

	s.logger.Debug("order_published", "Order published to kitchen", "", map[string]interface{}{
		"order_number": order.Number,
	})

	return order, nil
}
