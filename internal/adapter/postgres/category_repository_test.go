package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/omarkhal/dinehub/internal/domain"
)

func TestCategoryRepositoryListVisible(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCategoryRepository(NewDB(mock))

	restaurantID := uuid.New()
	one, two := 1, 2

	rows := pgxmock.NewRows([]string{"id", "restaurant_id", "name", "slug", "display_order", "visible_on_menu"}).
		AddRow(uuid.New(), (*uuid.UUID)(nil), "Starters", "starters", &one, true).
		AddRow(uuid.New(), &restaurantID, "Mains", "mains", &two, true).
		AddRow(uuid.New(), &restaurantID, "Specials", "specials", (*int)(nil), true)

	mock.ExpectQuery(`FROM menu_categories`).
		WithArgs(restaurantID).
		WillReturnRows(rows)

	cats, err := repo.ListVisible(context.Background(), restaurantID)
	require.NoError(t, err)
	require.Len(t, cats, 3)

	require.Equal(t, "starters", cats[0].Slug)
	require.Nil(t, cats[0].RestaurantID)
	require.Equal(t, "specials", cats[2].Slug)
	require.Nil(t, cats[2].DisplayOrder)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepositoryListVisibleError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCategoryRepository(NewDB(mock))

	restaurantID := uuid.New()
	mock.ExpectQuery(`FROM menu_categories`).
		WithArgs(restaurantID).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.ListVisible(context.Background(), restaurantID)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCategoryRepository(NewDB(mock))

	cat := domain.Category{
		ID:            uuid.New(),
		Name:          "Desserts",
		Slug:          "desserts",
		VisibleOnMenu: true,
	}
	mock.ExpectExec(`INSERT INTO menu_categories`).
		WithArgs(cat.ID, (*uuid.UUID)(nil), "Desserts", "desserts", (*int)(nil), true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), &cat)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
