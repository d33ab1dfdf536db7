package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("illegal status transition")
)

// IntegrityError means the line-batch insert failed after the order row was
// created AND the compensating delete also failed, leaving a lineless order
// visible in storage. It is logged as a data-integrity event and needs
// manual reconciliation; it must never be folded into an ordinary
// persistence failure.
type IntegrityError struct {
	OrderID     int64
	OrderNumber string
	Cause       error
	CleanupErr  error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf(
		"order %s (id %d) left without lines: insert failed (%v) and compensating delete failed (%v)",
		e.OrderNumber, e.OrderID, e.Cause, e.CleanupErr,
	)
}

func (e *IntegrityError) Unwrap() error {
	return e.Cause
}
