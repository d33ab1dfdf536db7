package revenue

import "time"

// DailyRecord is one row of the optional precomputed daily_revenue table.
// Revenue is in pence.
type DailyRecord struct {
	ID           int64
	Date         string
	TotalOrders  int
	TotalRevenue int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is a single day's order count and takings.
type Summary struct {
	TotalOrders  int
	TotalRevenue int64
}
