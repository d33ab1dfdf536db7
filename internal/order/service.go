package order

import (
	"context"
	"fmt"
	"time"

	"munchbox-be/internal/cart"
	"munchbox-be/internal/hours"
	"munchbox-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// PlaceOrder materializes the submitted cart, re-checks the collection
	// slot against the clock, and persists the order. The returned order
	// carries the generated order number.
	PlaceOrder(ctx context.Context, sub cart.Submission) (*Order, error)

	// ListOrders returns every order with lines, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// UpdateStatus applies a staff-driven status move. The transition graph
	// is enforced here, on top of the permissive store.
	UpdateStatus(ctx context.Context, orderID int64, next Status) error

	// AvailableSlots returns the collection times offerable right now.
	AvailableSlots() []string
}

type service struct {
	repo   Repository
	weekly hours.WeeklyHours
	now    func() time.Time
}

func NewService(repo Repository, weekly hours.WeeklyHours) Service {
	return &service{
		repo:   repo,
		weekly: weekly,
		now:    time.Now,
	}
}

func (s *service) PlaceOrder(ctx context.Context, sub cart.Submission) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int("line_count", len(sub.Lines)),
	)

	now := s.now()
	today := now.Format("2006-01-02")

	// Same-day collection only: the date is pinned to today, a stale or
	// doctored client date is rejected rather than silently rewritten.
	if sub.CollectionDate == "" {
		sub.CollectionDate = today
	} else if sub.CollectionDate != today {
		return nil, &cart.ValidationError{
			Field:   "collection_date",
			Message: "same-day collection only",
		}
	}

	slots := hours.AvailableSlots(now, s.weekly)

	req, err := cart.Materialize(sub, slots)
	if err != nil {
		log.Info("order submission rejected", zap.Error(err))
		return nil, err
	}

	o, err := s.repo.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.String("collection_time", o.CollectionTime),
		zap.Int64("total_amount", o.TotalAmount),
	)
	return o, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.GetOrders(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, next Status) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	current, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return err
	}

	if !current.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
	)
	return nil
}

func (s *service) AvailableSlots() []string {
	return hours.AvailableSlots(s.now(), s.weekly)
}
