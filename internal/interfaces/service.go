package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/domain"
)

type OrderService interface {
	Checkout(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error)
}

type KitchenService interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	ProcessOrder(ctx context.Context, msg OrderMessage) error
}

type TrackingService interface {
	GetOrderStatus(ctx context.Context, restaurantID uuid.UUID, orderNumber string) (*TrackingOrderResponse, error)
	GetOrderHistory(ctx context.Context, restaurantID uuid.UUID, orderNumber string) ([]*domain.StatusLog, error)
	GetStationsStatus(ctx context.Context) ([]*TrackingStationResponse, error)
}

// CheckoutCommand carries everything needed to turn a session cart into a
// persisted order.
type CheckoutCommand struct {
	RestaurantID    uuid.UUID
	CustomerName    string
	OrderType       string
	TableNumber     *int
	DeliveryAddress *string
	Entries         []domain.CartEntry
}

type TrackingOrderResponse struct {
	OrderNumber         string
	CurrentStatus       domain.Status
	UpdatedAt           time.Time
	EstimatedCompletion *time.Time
	ProcessedBy         *string
}

type TrackingStationResponse struct {
	StationName     string
	Status          domain.StationStatus
	OrdersProcessed int
	LastSeen        time.Time
}
