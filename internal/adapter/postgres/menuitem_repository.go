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

type menuItemRepository struct {
	db DB
}

func NewMenuItemRepository(db DB) interfaces.MenuItemRepository {
	return &menuItemRepository{db: db}
}

const menuItemColumns = `id, restaurant_id, name, description, price_cents, category, image_url, available, featured, created_at, updated_at`

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, restaurant_id, name, description, price_cents, category, image_url, available, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.RestaurantID, item.Name, item.Description, item.PriceCents,
		item.Category, item.ImageURL, item.Available, item.Featured, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price_cents = $3, category = $4,
		    image_url = $5, available = $6, featured = $7, updated_at = $8
		WHERE id = $9 AND restaurant_id = $10
	`
	_, err := r.db.Exec(ctx, query,
		item.Name, item.Description, item.PriceCents, item.Category,
		item.ImageURL, item.Available, item.Featured, time.Now(), item.ID, item.RestaurantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2
	`
	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id, restaurantID).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.PriceCents,
		&item.Category, &item.ImageURL, &item.Available, &item.Featured, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}
	return &item, nil
}

func (r *menuItemRepository) ListAvailable(ctx context.Context, restaurantID uuid.UUID, category string) ([]domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE restaurant_id = $1 AND available = true
		ORDER BY name
	`
	args := []any{restaurantID}
	if category != "" {
		query = `
			SELECT ` + menuItemColumns + `
			FROM menu_items
			WHERE restaurant_id = $1 AND available = true AND category = $2
			ORDER BY name
		`
		args = append(args, category)
	}

	return r.list(ctx, query, args...)
}

func (r *menuItemRepository) ListFeatured(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE restaurant_id = $1 AND available = true AND featured = true
		ORDER BY name
	`
	return r.list(ctx, query, restaurantID)
}

func (r *menuItemRepository) list(ctx context.Context, query string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.PriceCents,
			&item.Category, &item.ImageURL, &item.Available, &item.Featured, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}
