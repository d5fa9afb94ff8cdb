package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

// Service answers customer-facing order status questions and reports kitchen
// station health.
type Service struct {
	orderRepo   interfaces.OrderRepository
	stationRepo interfaces.StationRepository
	logger      logger.Logger
}

func NewService(orderRepo interfaces.OrderRepository, stationRepo interfaces.StationRepository, logger logger.Logger) *Service {
	return &Service{
		orderRepo:   orderRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}
}

func (s *Service) GetOrderStatus(ctx context.Context, restaurantID uuid.UUID, orderNumber string) (*interfaces.TrackingOrderResponse, error) {
	order, err := s.findTenantOrder(ctx, restaurantID, orderNumber)
	if err != nil {
		return nil, err
	}

	resp := &interfaces.TrackingOrderResponse{
		OrderNumber:   order.Number,
		CurrentStatus: order.Status,
		UpdatedAt:     order.UpdatedAt,
		ProcessedBy:   order.ProcessedBy,
	}

	if order.Status == domain.StatusCooking {
		est := order.UpdatedAt.Add(order.GetCookingTime())
		resp.EstimatedCompletion = &est
	}

	return resp, nil
}

func (s *Service) GetOrderHistory(ctx context.Context, restaurantID uuid.UUID, orderNumber string) ([]*domain.StatusLog, error) {
	order, err := s.findTenantOrder(ctx, restaurantID, orderNumber)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetStatusHistory(ctx, order.ID)
}

// findTenantOrder loads an order and hides it when it belongs to a different
// tenant than the caller.
func (s *Service) findTenantOrder(ctx context.Context, restaurantID uuid.UUID, orderNumber string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetStationsStatus(ctx context.Context) ([]*interfaces.TrackingStationResponse, error) {
	stations, err := s.stationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var resp []*interfaces.TrackingStationResponse
	// A station is offline after two missed heartbeats.
	timeout := 60 * time.Second

	for _, st := range stations {
		status := st.Status
		if status == domain.StationStatusOnline && time.Since(st.LastSeen) > timeout {
			status = domain.StationStatusOffline
		}

		resp = append(resp, &interfaces.TrackingStationResponse{
			StationName:     st.Name,
			Status:          status,
			OrdersProcessed: st.OrdersProcessed,
			LastSeen:        st.LastSeen,
		})
	}

	return resp, nil
}
