package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("ActiveOnlyInDisplayOrder", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, slug, display_order FROM menu_categories WHERE is_active = TRUE ORDER BY display_order`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "display_order"}).
				AddRow(1, "Breakfast", "breakfast", 1).
				AddRow(2, "Drinks", "drinks", 2))

		categories, err := repo.GetCategories(context.Background())

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "breakfast", categories[0].Slug)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM menu_categories`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetCategories(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_GetItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM menu_items WHERE is_active = TRUE ORDER BY display_order`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "category_id", "name", "description", "base_price", "display_order",
		}).
			AddRow(1, 1, "Bacon Roll", "", 400, 1).
			AddRow(2, 1, "Breakfast Bap", "Build your own", 450, 2))

	mock.ExpectQuery(`SELECT .* FROM menu_item_options WHERE is_active = TRUE ORDER BY display_order`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "menu_item_id", "option_name", "price", "display_order",
		}).
			AddRow(10, 2, "Regular", 450, 1).
			AddRow(11, 2, "Large", 550, 2))

	items, err := repo.GetItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Empty(t, items[0].Options)
	require.Len(t, items[1].Options, 2)
	assert.Equal(t, "Large", items[1].Options[1].Name)
	assert.Equal(t, int64(550), items[1].Options[1].Price)
}
