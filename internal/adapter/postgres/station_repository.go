package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type stationRepository struct {
	db DB
}

func NewStationRepository(db DB) interfaces.StationRepository {
	return &stationRepository{db: db}
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) error {
	query := `
		INSERT INTO kitchen_stations (name, order_types, status, last_seen, orders_processed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		station.Name, station.OrderTypes, station.Status, station.LastSeen, station.OrdersProcessed, station.CreatedAt,
	).Scan(&station.ID)
	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}

func (r *stationRepository) FindByName(ctx context.Context, name string) (*domain.Station, error) {
	query := `
		SELECT id, name, order_types, status, last_seen, orders_processed, created_at
		FROM kitchen_stations
		WHERE name = $1
	`

	var station domain.Station
	err := r.db.QueryRow(ctx, query, name).Scan(
		&station.ID, &station.Name, &station.OrderTypes, &station.Status,
		&station.LastSeen, &station.OrdersProcessed, &station.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("station not found: %w", err)
		}
		return nil, fmt.Errorf("failed to query station: %w", err)
	}

	return &station, nil
}

func (r *stationRepository) Update(ctx context.Context, station *domain.Station) error {
	query := `
		UPDATE kitchen_stations
		SET order_types = $1, status = $2, last_seen = $3, orders_processed = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query,
		station.OrderTypes, station.Status, station.LastSeen, station.OrdersProcessed, station.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}
	return nil
}

func (r *stationRepository) UpdateHeartbeat(ctx context.Context, name string) error {
	query := `
		UPDATE kitchen_stations
		SET last_seen = $1, status = $2
		WHERE name = $3
	`
	_, err := r.db.Exec(ctx, query, time.Now(), domain.StationStatusOnline, name)
	if err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

func (r *stationRepository) ListAll(ctx context.Context) ([]*domain.Station, error) {
	query := `
		SELECT id, name, order_types, status, last_seen, orders_processed, created_at
		FROM kitchen_stations
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	var stations []*domain.Station
	for rows.Next() {
		var station domain.Station
		if err := rows.Scan(
			&station.ID, &station.Name, &station.OrderTypes, &station.Status,
			&station.LastSeen, &station.OrdersProcessed, &station.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, &station)
	}

	return stations, nil
}

func (r *stationRepository) IncrementOrdersProcessed(ctx context.Context, name string) error {
	query := `
		UPDATE kitchen_stations
		SET orders_processed = orders_processed + 1
		WHERE name = $1
	`
	_, err := r.db.Exec(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to increment orders processed: %w", err)
	}
	return nil
}
