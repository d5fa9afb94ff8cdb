package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type categoryRepository struct {
	db DB
}

func NewCategoryRepository(db DB) interfaces.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO menu_categories (id, restaurant_id, name, slug, display_order, visible_on_menu)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.RestaurantID, c.Name, c.Slug, c.DisplayOrder, c.VisibleOnMenu,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `
		UPDATE menu_categories
		SET name = $1, slug = $2, display_order = $3, visible_on_menu = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query,
		c.Name, c.Slug, c.DisplayOrder, c.VisibleOnMenu, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// ListVisible returns global default categories pooled with the tenant's
// own, in display order with nulls last.
func (r *categoryRepository) ListVisible(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
	query := `
		SELECT id, restaurant_id, name, slug, display_order, visible_on_menu
		FROM menu_categories
		WHERE (restaurant_id IS NULL OR restaurant_id = $1) AND visible_on_menu = true
		ORDER BY display_order ASC NULLS LAST, name ASC
	`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(
			&c.ID, &c.RestaurantID, &c.Name, &c.Slug, &c.DisplayOrder, &c.VisibleOnMenu,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}
