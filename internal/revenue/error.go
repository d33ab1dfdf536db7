package revenue

import "errors"

var (
	// ErrAggregateMissing means the daily_revenue relation does not exist in
	// this deployment. Not a fault: the aggregation migration is optional.
	ErrAggregateMissing = errors.New("daily revenue table does not exist")

	// ErrNoRecord means the table exists but has no row for the given date.
	ErrNoRecord = errors.New("no revenue record for date")
)
