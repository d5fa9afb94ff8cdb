package http

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type fakeRestaurantRepo struct {
	restaurants map[string]*domain.Restaurant
	lookupErr   error
}

func (f *fakeRestaurantRepo) Create(ctx context.Context, r *domain.Restaurant) error {
	if f.restaurants == nil {
		f.restaurants = make(map[string]*domain.Restaurant)
	}
	f.restaurants[r.Subdomain] = r
	return nil
}

func (f *fakeRestaurantRepo) Update(ctx context.Context, r *domain.Restaurant) error { return nil }

func (f *fakeRestaurantRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	for _, r := range f.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (f *fakeRestaurantRepo) FindBySubdomain(ctx context.Context, subdomain string) (*domain.Restaurant, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if r, ok := f.restaurants[subdomain]; ok {
		return r, nil
	}
	return nil, domain.ErrRestaurantNotFound
}

func (f *fakeRestaurantRepo) List(ctx context.Context) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	for _, r := range f.restaurants {
		out = append(out, r)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories []domain.Category
	err        error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *domain.Category) error { return nil }
func (f *fakeCategoryRepo) Update(ctx context.Context, c *domain.Category) error { return nil }
func (f *fakeCategoryRepo) ListVisible(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
	return f.categories, f.err
}

type fakeMenuItemRepo struct {
	items map[uuid.UUID]*domain.MenuItem
}

func newFakeMenuItemRepo(items ...*domain.MenuItem) *fakeMenuItemRepo {
	m := make(map[uuid.UUID]*domain.MenuItem, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return &fakeMenuItemRepo{items: m}
}

func (f *fakeMenuItemRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuItemRepo) Update(ctx context.Context, item *domain.MenuItem) error { return nil }

func (f *fakeMenuItemRepo) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok || item.RestaurantID != restaurantID {
		return nil, domain.ErrMenuItemNotFound
	}
	return item, nil
}

func (f *fakeMenuItemRepo) ListAvailable(ctx context.Context, restaurantID uuid.UUID, category string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range f.items {
		if item.RestaurantID != restaurantID || !item.Available {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeMenuItemRepo) ListFeatured(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range f.items {
		if item.RestaurantID == restaurantID && item.Available && item.Featured {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeOrderService struct {
	lastCmd *interfaces.CheckoutCommand
	err     error
}

func (f *fakeOrderService) Checkout(ctx context.Context, cmd interfaces.CheckoutCommand) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastCmd = &cmd

	order, err := domain.NewOrderFromCart(
		cmd.RestaurantID,
		cmd.CustomerName,
		domain.OrderType(cmd.OrderType),
		cmd.Entries,
		cmd.TableNumber,
		cmd.DeliveryAddress,
	)
	if err != nil {
		return nil, err
	}
	order.Number = "ORD_20260831_001"
	return order, nil
}

type fakeTrackingService struct {
	status  *interfaces.TrackingOrderResponse
	history []*domain.StatusLog
	err     error
}

func (f *fakeTrackingService) GetOrderStatus(ctx context.Context, restaurantID uuid.UUID, orderNumber string) (*interfaces.TrackingOrderResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func (f *fakeTrackingService) GetOrderHistory(ctx context.Context, restaurantID uuid.UUID, orderNumber string) ([]*domain.StatusLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func (f *fakeTrackingService) GetStationsStatus(ctx context.Context) ([]*interfaces.TrackingStationResponse, error) {
	return []*interfaces.TrackingStationResponse{
		{StationName: "grill-1", Status: domain.StationStatusOnline, OrdersProcessed: 3, LastSeen: time.Now()},
	}, nil
}

type fakeOrderRepo struct {
	orders []*domain.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error { return nil }
func (f *fakeOrderRepo) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}
func (f *fakeOrderRepo) GenerateOrderNumber(ctx context.Context) (string, error) {
	return "", errors.New("not implemented")
}
func (f *fakeOrderRepo) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	return nil
}
func (f *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*domain.StatusLog, error) {
	return nil, nil
}
func (f *fakeOrderRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Order, error) {
	return f.orders, nil
}
