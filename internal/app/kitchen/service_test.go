package kitchen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type fakeOrderRepo struct {
	order         *domain.Order
	statusUpdates []domain.Status
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error { return nil }
func (f *fakeOrderRepo) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	if f.order == nil || f.order.Number != number {
		return nil, domain.ErrOrderNotFound
	}
	return f.order, nil
}
func (f *fakeOrderRepo) GenerateOrderNumber(ctx context.Context) (string, error) { return "", nil }
func (f *fakeOrderRepo) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	f.statusUpdates = append(f.statusUpdates, order.Status)
	return nil
}
func (f *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*domain.StatusLog, error) {
	return nil, nil
}
func (f *fakeOrderRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Order, error) {
	return nil, nil
}

type fakeStationRepo struct {
	station     *domain.Station
	processed   int
	heartbeats  int
	lastUpdated *domain.Station
}

func (f *fakeStationRepo) Create(ctx context.Context, station *domain.Station) error {
	f.station = station
	return nil
}
func (f *fakeStationRepo) FindByName(ctx context.Context, name string) (*domain.Station, error) {
	if f.station == nil || f.station.Name != name {
		return nil, errors.New("station not found")
	}
	return f.station, nil
}
func (f *fakeStationRepo) Update(ctx context.Context, station *domain.Station) error {
	f.lastUpdated = station
	return nil
}
func (f *fakeStationRepo) UpdateHeartbeat(ctx context.Context, name string) error {
	f.heartbeats++
	return nil
}
func (f *fakeStationRepo) ListAll(ctx context.Context) ([]*domain.Station, error) {
	return nil, nil
}
func (f *fakeStationRepo) IncrementOrdersProcessed(ctx context.Context, name string) error {
	f.processed++
	return nil
}

type fakePublisher struct {
	updates []interfaces.StatusUpdateMessage
}

func (f *fakePublisher) PublishOrder(ctx context.Context, msg interfaces.OrderMessage) error {
	return nil
}
func (f *fakePublisher) PublishStatusUpdate(ctx context.Context, msg interfaces.StatusUpdateMessage) error {
	f.updates = append(f.updates, msg)
	return nil
}

func receivedOrder(number string) *domain.Order {
	table := 5
	return &domain.Order{
		ID:           uuid.New(),
		Number:       number,
		RestaurantID: uuid.New(),
		CustomerName: "John Doe",
		Type:         domain.OrderTypeDineIn,
		TableNumber:  &table,
		Status:       domain.StatusReceived,
	}
}

func TestProcessOrder(t *testing.T) {
	orderRepo := &fakeOrderRepo{order: receivedOrder("ORD_20260831_001")}
	stationRepo := &fakeStationRepo{}
	publisher := &fakePublisher{}

	svc := NewService(orderRepo, stationRepo, publisher, logger.NewCapture(), "grill-1", "", 30)
	svc.cookTime = time.Millisecond

	msg := interfaces.OrderMessage{OrderNumber: "ORD_20260831_001", OrderType: domain.OrderTypeDineIn}
	require.NoError(t, svc.ProcessOrder(context.Background(), msg))

	assert.Equal(t, []domain.Status{domain.StatusCooking, domain.StatusReady}, orderRepo.statusUpdates)
	assert.Equal(t, 1, stationRepo.processed)

	require.Len(t, publisher.updates, 2)
	assert.Equal(t, domain.StatusReceived, publisher.updates[0].OldStatus)
	assert.Equal(t, domain.StatusCooking, publisher.updates[0].NewStatus)
	assert.False(t, publisher.updates[0].EstimatedCompletion.IsZero())
	assert.Equal(t, domain.StatusReady, publisher.updates[1].NewStatus)
	assert.Equal(t, "grill-1", publisher.updates[1].ChangedBy)
}

func TestProcessOrderSpecializationMismatch(t *testing.T) {
	orderRepo := &fakeOrderRepo{order: receivedOrder("ORD_20260831_001")}
	svc := NewService(orderRepo, &fakeStationRepo{}, &fakePublisher{}, logger.NewCapture(), "grill-1", "dine_in,takeout", 30)

	msg := interfaces.OrderMessage{OrderNumber: "ORD_20260831_001", OrderType: domain.OrderTypeDelivery}
	err := svc.ProcessOrder(context.Background(), msg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot handle order type")
	assert.Empty(t, orderRepo.statusUpdates)
}

func TestProcessOrderIdempotent(t *testing.T) {
	order := receivedOrder("ORD_20260831_001")
	order.Status = domain.StatusCooking
	orderRepo := &fakeOrderRepo{order: order}
	publisher := &fakePublisher{}

	svc := NewService(orderRepo, &fakeStationRepo{}, publisher, logger.NewCapture(), "grill-1", "", 30)
	svc.cookTime = time.Millisecond

	msg := interfaces.OrderMessage{OrderNumber: "ORD_20260831_001", OrderType: domain.OrderTypeDineIn}
	require.NoError(t, svc.ProcessOrder(context.Background(), msg))

	assert.Empty(t, orderRepo.statusUpdates)
	assert.Empty(t, publisher.updates)
}

func TestStartRegistersNewStation(t *testing.T) {
	stationRepo := &fakeStationRepo{}
	svc := NewService(&fakeOrderRepo{}, stationRepo, &fakePublisher{}, logger.NewCapture(), "grill-1", "dine_in", 30)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.Start(ctx))
	require.NotNil(t, stationRepo.station)
	assert.Equal(t, "grill-1", stationRepo.station.Name)
	assert.Equal(t, "dine_in", stationRepo.station.OrderTypes)
	assert.Equal(t, domain.StationStatusOnline, stationRepo.station.Status)
}

func TestStartRejectsDuplicateOnlineStation(t *testing.T) {
	station, err := domain.NewStation("grill-1", "general")
	require.NoError(t, err)
	stationRepo := &fakeStationRepo{station: station}

	svc := NewService(&fakeOrderRepo{}, stationRepo, &fakePublisher{}, logger.NewCapture(), "grill-1", "", 30)

	err = svc.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already online")
}

func TestShutdownMarksStationOffline(t *testing.T) {
	station, err := domain.NewStation("grill-1", "general")
	require.NoError(t, err)
	station.Status = domain.StationStatusOffline
	stationRepo := &fakeStationRepo{station: station}

	svc := NewService(&fakeOrderRepo{}, stationRepo, &fakePublisher{}, logger.NewCapture(), "grill-1", "", 30)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Start(ctx))

	require.NoError(t, svc.Shutdown(ctx))
	assert.Equal(t, domain.StationStatusOffline, stationRepo.lastUpdated.Status)
}
