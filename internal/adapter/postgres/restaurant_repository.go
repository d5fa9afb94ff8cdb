package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type restaurantRepository struct {
	db DB
}

func NewRestaurantRepository(db DB) interfaces.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, rest *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, subdomain, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		rest.ID, rest.Name, rest.Subdomain, rest.Description, rest.Active, rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepository) Update(ctx context.Context, rest *domain.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $1, subdomain = $2, description = $3, active = $4, updated_at = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query,
		rest.Name, rest.Subdomain, rest.Description, rest.Active, time.Now(), rest.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	query := `
		SELECT id, name, subdomain, description, active, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *restaurantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*domain.Restaurant, error) {
	query := `
		SELECT id, name, subdomain, description, active, created_at, updated_at
		FROM restaurants
		WHERE subdomain = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, subdomain))
}

func (r *restaurantRepository) scanOne(row Row) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(
		&rest.ID, &rest.Name, &rest.Subdomain, &rest.Description,
		&rest.Active, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A clean empty result, not a backend failure.
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}
	return &rest, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	query := `
		SELECT id, name, subdomain, description, active, created_at, updated_at
		FROM restaurants
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(
			&rest.ID, &rest.Name, &rest.Subdomain, &rest.Description,
			&rest.Active, &rest.CreatedAt, &rest.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, &rest)
	}

	return restaurants, nil
}
