package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type fakeOrderRepo struct {
	created    *domain.Order
	nextNumber string
	createErr  error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = order
	return nil
}

func (f *fakeOrderRepo) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (f *fakeOrderRepo) GenerateOrderNumber(ctx context.Context) (string, error) {
	return f.nextNumber, nil
}

func (f *fakeOrderRepo) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	return nil
}

func (f *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*domain.StatusLog, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Order, error) {
	return nil, nil
}

type fakePublisher struct {
	orders     []interfaces.OrderMessage
	updates    []interfaces.StatusUpdateMessage
	publishErr error
}

func (f *fakePublisher) PublishOrder(ctx context.Context, msg interfaces.OrderMessage) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.orders = append(f.orders, msg)
	return nil
}

func (f *fakePublisher) PublishStatusUpdate(ctx context.Context, msg interfaces.StatusUpdateMessage) error {
	f.updates = append(f.updates, msg)
	return nil
}

func checkoutCommand() interfaces.CheckoutCommand {
	table := 5
	return interfaces.CheckoutCommand{
		RestaurantID: uuid.New(),
		CustomerName: "John Doe",
		OrderType:    "dine_in",
		TableNumber:  &table,
		Entries: []domain.CartEntry{
			{Item: domain.MenuItem{ID: uuid.New(), Name: "Margherita", PriceCents: 1050}, Quantity: 2},
			{Item: domain.MenuItem{ID: uuid.New(), Name: "Cola", PriceCents: 300}, Quantity: 1},
		},
	}
}

func TestCheckout(t *testing.T) {
	repo := &fakeOrderRepo{nextNumber: "ORD_20260831_001"}
	publisher := &fakePublisher{}
	svc := NewService(repo, publisher, logger.NewCapture())

	cmd := checkoutCommand()
	order, err := svc.Checkout(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "ORD_20260831_001", order.Number)
	assert.Equal(t, domain.StatusReceived, order.Status)
	assert.Equal(t, int64(2400), order.TotalCents)
	assert.Equal(t, cmd.RestaurantID, order.RestaurantID)

	require.NotNil(t, repo.created)
	require.Len(t, publisher.orders, 1)
	assert.Equal(t, "ORD_20260831_001", publisher.orders[0].OrderNumber)
	assert.Equal(t, cmd.RestaurantID, publisher.orders[0].RestaurantID)
	assert.Equal(t, int64(2400), publisher.orders[0].TotalCents)
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := &fakeOrderRepo{nextNumber: "ORD_20260831_001"}
	publisher := &fakePublisher{}
	capture := logger.NewCapture()
	svc := NewService(repo, publisher, capture)

	cmd := checkoutCommand()
	cmd.Entries = nil

	_, err := svc.Checkout(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Nil(t, repo.created)
	assert.Empty(t, publisher.orders)
	assert.NotNil(t, capture.Find("validation_failed"))
}

func TestCheckoutCreateFails(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &fakeOrderRepo{nextNumber: "ORD_20260831_001", createErr: dbErr}
	publisher := &fakePublisher{}
	svc := NewService(repo, publisher, logger.NewCapture())

	_, err := svc.Checkout(context.Background(), checkoutCommand())
	require.ErrorIs(t, err, dbErr)
	assert.Empty(t, publisher.orders)
}

func TestCheckoutPublishFails(t *testing.T) {
	repo := &fakeOrderRepo{nextNumber: "ORD_20260831_001"}
	publisher := &fakePublisher{publishErr: errors.New("broker down")}
	capture := logger.NewCapture()
	svc := NewService(repo, publisher, capture)

	_, err := svc.Checkout(context.Background(), checkoutCommand())
	require.Error(t, err)
	assert.NotNil(t, capture.Find("rabbitmq_publish_failed"))
}
