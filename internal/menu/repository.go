package menu

import (
	"context"
	"database/sql"

	"munchbox-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCategories(ctx context.Context) ([]Category, error)
	GetItems(ctx context.Context) ([]Item, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, slug, display_order
		FROM menu_categories
		WHERE is_active = TRUE
		ORDER BY display_order
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query menu categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetItems returns every active item with its active options attached,
// both in display order.
func (r *repository) GetItems(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_id, name, COALESCE(description, ''), base_price, display_order
		FROM menu_items
		WHERE is_active = TRUE
		ORDER BY display_order
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query menu items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []Item
	byID := make(map[int64]*Item)

	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.CategoryID,
			&it.Name,
			&it.Description,
			&it.BasePrice,
			&it.DisplayOrder,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	optRows, err := r.db.QueryContext(ctx, `
		SELECT id, menu_item_id, option_name, price, display_order
		FROM menu_item_options
		WHERE is_active = TRUE
		ORDER BY display_order
	`)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o Option
		if err := optRows.Scan(&o.ID, &o.ItemID, &o.Name, &o.Price, &o.DisplayOrder); err != nil {
			return nil, err
		}
		if it, ok := byID[o.ItemID]; ok {
			it.Options = append(it.Options, o)
		}
	}
	return items, optRows.Err()
}
