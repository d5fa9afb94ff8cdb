package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/domain"
)

type RestaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	Update(ctx context.Context, r *domain.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	ListVisible(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*domain.MenuItem, error)
	ListAvailable(ctx context.Context, restaurantID uuid.UUID, category string) ([]domain.MenuItem, error)
	ListFeatured(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	GenerateOrderNumber(ctx context.Context) (string, error)
	UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error
	GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*domain.StatusLog, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Order, error)
}

type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	FindByName(ctx context.Context, name string) (*domain.Station, error)
	Update(ctx context.Context, station *domain.Station) error
	UpdateHeartbeat(ctx context.Context, name string) error
	ListAll(ctx context.Context) ([]*domain.Station, error)
	IncrementOrdersProcessed(ctx context.Context, name string) error
}
