package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/domain"
)

// OrderMessage is published at checkout and consumed by kitchen display
// stations.
type OrderMessage struct {
	OrderNumber     string             `json:"order_number"`
	RestaurantID    uuid.UUID          `json:"restaurant_id"`
	CustomerName    string             `json:"customer_name"`
	OrderType       domain.OrderType   `json:"order_type"`
	TableNumber     *int               `json:"table_number"`
	DeliveryAddress *string            `json:"delivery_address"`
	Items           []domain.OrderItem `json:"items"`
	TotalCents      int64              `json:"total_cents"`
	Priority        domain.Priority    `json:"priority"`
}

type StatusUpdateMessage struct {
	OrderNumber         string        `json:"order_number"`
	RestaurantID        uuid.UUID     `json:"restaurant_id"`
	OldStatus           domain.Status `json:"old_status"`
	NewStatus           domain.Status `json:"new_status"`
	ChangedBy           string        `json:"changed_by"`
	Timestamp           time.Time     `json:"timestamp"`
	EstimatedCompletion time.Time     `json:"estimated_completion"`
}

type MessagePublisher interface {
	PublishOrder(ctx context.Context, msg OrderMessage) error
	PublishStatusUpdate(ctx context.Context, msg StatusUpdateMessage) error
}

type MessageConsumer interface {
	ConsumeOrders(ctx context.Context, handler OrderMessageHandler) error
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type (
	OrderMessageHandler func(ctx context.Context, body []byte) error
	NotificationHandler func(ctx context.Context, body []byte) error
)
