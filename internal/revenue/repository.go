package revenue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"munchbox-be/internal/logger"
	"munchbox-be/internal/order"
	"munchbox-be/internal/utils"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// undefinedTableCode is the postgres error class for "relation does not
// exist" (42P01).
const undefinedTableCode = pq.ErrorCode("42P01")

type Repository interface {
	// ProbeAggregate issues a trivial read against daily_revenue. Returns
	// nil when the table is readable, ErrAggregateMissing when the relation
	// does not exist, and the raw error for anything else.
	ProbeAggregate(ctx context.Context) error

	GetDailyRecord(ctx context.Context, date string) (*DailyRecord, error)
	GetHistory(ctx context.Context, limit int) ([]DailyRecord, error)
	GetRange(ctx context.Context, from, to string) ([]DailyRecord, error)

	// ScanOrdersForDate computes the summary straight from the orders
	// table: non-cancelled orders collected on the given date.
	ScanOrdersForDate(ctx context.Context, date string) (Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ProbeAggregate(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM daily_revenue LIMIT 1`)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == undefinedTableCode {
			return ErrAggregateMissing
		}
		return err
	}
	defer rows.Close()
	return rows.Err()
}

func (r *repository) GetDailyRecord(ctx context.Context, date string) (*DailyRecord, error) {
	var rec DailyRecord
	var recDate utils.CalendarDate
	err := r.db.QueryRowContext(ctx, `
		SELECT id, date, total_orders, total_revenue, created_at, updated_at
		FROM daily_revenue
		WHERE date = $1
	`, date).Scan(
		&rec.ID,
		&recDate,
		&rec.TotalOrders,
		&rec.TotalRevenue,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read daily revenue for %s: %w", date, err)
	}
	rec.Date = string(recDate)
	return &rec, nil
}

func (r *repository) GetHistory(ctx context.Context, limit int) ([]DailyRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, total_orders, total_revenue, created_at, updated_at
		FROM daily_revenue
		ORDER BY date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *repository) GetRange(ctx context.Context, from, to string) ([]DailyRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, total_orders, total_revenue, created_at, updated_at
		FROM daily_revenue
		WHERE date >= $1 AND date <= $2
		ORDER BY date DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *repository) ScanOrdersForDate(ctx context.Context, date string) (Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE collection_date = $1 AND status <> $2
	`, date, order.StatusCancelled).Scan(&s.TotalOrders, &s.TotalRevenue)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to scan orders for revenue",
			zap.String("date", date),
			zap.Error(err),
		)
		return Summary{}, err
	}
	return s, nil
}

func scanRecords(rows *sql.Rows) ([]DailyRecord, error) {
	var records []DailyRecord
	for rows.Next() {
		var rec DailyRecord
		var recDate utils.CalendarDate
		if err := rows.Scan(
			&rec.ID,
			&recDate,
			&rec.TotalOrders,
			&rec.TotalRevenue,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rec.Date = string(recDate)
		records = append(records, rec)
	}
	return records, rows.Err()
}
