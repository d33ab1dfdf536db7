package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"munchbox-be/internal/cart"
	"munchbox-be/internal/logger"
	"munchbox-be/internal/utils"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, req *cart.OrderRequest) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID int64) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrder persists an order and its lines as a best-effort two-step
// write: insert the order row, then insert every line in one batch. If the
// batch fails the just-created order is deleted again (cascade removes any
// partially-inserted lines) so readers never see an order without lines.
// This is deliberate compensation, not a transaction; a failed compensation
// escalates to IntegrityError.
func (r *repository) CreateOrder(ctx context.Context, req *cart.OrderRequest) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Int("line_count", len(req.Lines)),
	)

	o := &Order{
		OrderNumber:         utils.GenerateOrderNumber(),
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CollectionDate:      req.CollectionDate,
		CollectionTime:      req.CollectionTime,
		SpecialInstructions: req.SpecialInstructions,
		TotalAmount:         req.TotalAmount,
		Status:              StatusPending,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			order_number, customer_name, customer_phone,
			collection_date, collection_time, special_instructions,
			total_amount, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at
	`,
		o.OrderNumber,
		o.CustomerName,
		o.CustomerPhone,
		o.CollectionDate,
		o.CollectionTime,
		nullIfEmpty(o.SpecialInstructions),
		o.TotalAmount,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if err := r.insertLines(ctx, o.ID, req.Lines); err != nil {
		log.Error("failed to insert order lines, compensating",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)

		if _, delErr := r.db.ExecContext(ctx,
			`DELETE FROM orders WHERE id = $1`, o.ID,
		); delErr != nil {
			ierr := &IntegrityError{
				OrderID:     o.ID,
				OrderNumber: o.OrderNumber,
				Cause:       err,
				CleanupErr:  delErr,
			}
			log.Error("DATA INTEGRITY: compensating delete failed, order left without lines",
				zap.Int64("order_id", o.ID),
				zap.String("order_number", o.OrderNumber),
				zap.NamedError("cleanup_error", delErr),
				zap.Error(err),
			)
			return nil, ierr
		}

		return nil, fmt.Errorf("failed to insert order lines: %w", err)
	}

	for i := range req.Lines {
		l := req.Lines[i]
		o.Items = append(o.Items, Item{
			OrderID:        o.ID,
			MenuItemID:     l.MenuItemID,
			ItemName:       l.Name,
			SelectedOption: l.Option,
			UnitPrice:      l.UnitPrice,
			Quantity:       l.Quantity,
			TotalPrice:     l.TotalPrice,
		})
	}

	log.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Int64("total_amount", o.TotalAmount),
	)

	return o, nil
}

// insertLines writes every line in a single multi-row INSERT so the batch
// either lands whole or fails whole at the statement level.
func (r *repository) insertLines(ctx context.Context, orderID int64, lines []cart.Line) error {
	values := make([]string, 0, len(lines))
	args := make([]any, 0, len(lines)*7)

	for i, l := range lines {
		base := i * 7
		values = append(values, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		args = append(args,
			orderID,
			l.MenuItemID,
			l.Name,
			nullIfEmpty(l.Option),
			l.UnitPrice,
			l.Quantity,
			l.TotalPrice,
		)
	}

	query := `
		INSERT INTO order_items (
			order_id, menu_item_id, item_name, selected_option,
			unit_price, quantity, total_price
		) VALUES ` + strings.Join(values, ",")

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetOrders returns every order, newest first, with its lines attached.
func (r *repository) GetOrders(ctx context.Context) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrders"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, order_number, customer_name, customer_phone,
			collection_date, collection_time, special_instructions,
			total_amount, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	byID := make(map[int64]*Order)
	var ids []int64

	for rows.Next() {
		var o Order
		var collectionDate utils.CalendarDate
		var instructions sql.NullString
		if err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CustomerName,
			&o.CustomerPhone,
			&collectionDate,
			&o.CollectionTime,
			&instructions,
			&o.TotalAmount,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		o.CollectionDate = string(collectionDate)
		o.SpecialInstructions = instructions.String
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT
			id, order_id, menu_item_id, item_name, selected_option,
			unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item Item
		var option sql.NullString
		if err := itemRows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.ItemName,
			&option,
			&item.UnitPrice,
			&item.Quantity,
			&item.TotalPrice,
		); err != nil {
			log.Error("failed to scan order item row", zap.Error(err))
			return nil, err
		}
		item.SelectedOption = option.String
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	log.Debug("get orders success", zap.Int("count", len(orders)))
	return orders, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID int64) (*Order, error) {
	var o Order
	var collectionDate utils.CalendarDate
	var instructions sql.NullString

	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, order_number, customer_name, customer_phone,
			collection_date, collection_time, special_instructions,
			total_amount, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.CustomerPhone,
		&collectionDate,
		&o.CollectionTime,
		&instructions,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.CollectionDate = string(collectionDate)
	o.SpecialInstructions = instructions.String

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, order_id, menu_item_id, item_name, selected_option,
			unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		var option sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.ItemName,
			&option,
			&item.UnitPrice,
			&item.Quantity,
			&item.TotalPrice,
		); err != nil {
			return nil, err
		}
		item.SelectedOption = option.String
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}

// UpdateOrderStatus writes a new status. Only membership in the enum is
// checked here; whether the move is legal from the current status is the
// service's concern.
func (r *repository) UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
