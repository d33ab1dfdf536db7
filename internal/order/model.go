package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the staff-driven move from s to next is
// legal: pending -> preparing -> ready -> completed, with cancelled
// reachable from any pre-completion state. completed and cancelled are
// terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPreparing || next == StatusCancelled
	case StatusPreparing:
		return next == StatusReady || next == StatusCancelled
	case StatusReady:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Order is a same-day collection order. Amounts are in pence; line prices
// are a snapshot taken at order time and are never re-read from the live
// menu.
type Order struct {
	ID                  int64
	OrderNumber         string
	CustomerName        string
	CustomerPhone       string
	CollectionDate      string
	CollectionTime      string
	SpecialInstructions string
	TotalAmount         int64
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Items               []Item
}

type Item struct {
	ID             int64
	OrderID        int64
	MenuItemID     *int64
	ItemName       string
	SelectedOption string
	UnitPrice      int64
	Quantity       int
	TotalPrice     int64
}
