// Package revenue answers "how did today go" without ever blocking the
// order-taking path. Deployments may or may not have the precomputed
// daily_revenue table; availability is probed once, memoized for the life
// of the process, and everything degrades to a direct scan of the orders
// table when the aggregate cannot be read.
package revenue

import (
	"context"
	"errors"
	"sync"
	"time"

	"munchbox-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// IsAggregateAvailable reports whether the daily_revenue table can be
	// read. The first call probes storage; the answer is then memoized
	// until Reset.
	IsAggregateAvailable(ctx context.Context) bool

	// Reset clears the memoized availability so the next call probes again.
	// Called after the aggregation migration is applied so the process
	// picks it up without a restart.
	Reset()

	// TodayRevenue never fails: on any aggregate trouble it falls back to
	// scanning today's non-cancelled orders, and on scan trouble it
	// reports zeros.
	TodayRevenue(ctx context.Context) Summary

	// History returns up to limit daily records, newest date first. Empty,
	// not an error, when the aggregate is unavailable.
	History(ctx context.Context, limit int) []DailyRecord

	// Range returns daily records between from and to inclusive, newest
	// date first. Empty when the aggregate is unavailable.
	Range(ctx context.Context, from, to string) []DailyRecord
}

// service carries the process-wide tri-state availability memo: nil means
// not yet determined, which is distinct from a determined false.
type service struct {
	repo Repository
	now  func() time.Time

	mu        sync.Mutex
	available *bool
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) IsAggregateAvailable(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.available != nil {
		return *s.available
	}

	avail := true
	if err := s.repo.ProbeAggregate(ctx); err != nil {
		if errors.Is(err, ErrAggregateMissing) {
			avail = false
		} else {
			// Ambiguous probe failure: assume the table exists and the
			// fault is transient rather than caching a false negative.
			// Reads still fall back per-call, so a wrong true here costs
			// performance, not correctness.
			logger.FromCtx(ctx).Warn("daily revenue probe failed, assuming available",
				zap.Error(err),
			)
		}
	}

	s.available = &avail
	return avail
}

func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = nil
}

func (s *service) TodayRevenue(ctx context.Context) Summary {
	today := s.now().Format("2006-01-02")

	if !s.IsAggregateAvailable(ctx) {
		return s.scanFallback(ctx, today)
	}

	rec, err := s.repo.GetDailyRecord(ctx, today)
	if errors.Is(err, ErrNoRecord) {
		// No orders recorded yet today: a valid empty state.
		return Summary{}
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("daily revenue read failed, using orders scan",
			zap.Error(err),
		)
		return s.scanFallback(ctx, today)
	}

	return Summary{TotalOrders: rec.TotalOrders, TotalRevenue: rec.TotalRevenue}
}

func (s *service) History(ctx context.Context, limit int) []DailyRecord {
	if !s.IsAggregateAvailable(ctx) {
		return nil
	}

	records, err := s.repo.GetHistory(ctx, limit)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch revenue history", zap.Error(err))
		return nil
	}
	return records
}

func (s *service) Range(ctx context.Context, from, to string) []DailyRecord {
	if !s.IsAggregateAvailable(ctx) {
		return nil
	}

	records, err := s.repo.GetRange(ctx, from, to)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch revenue range", zap.Error(err))
		return nil
	}
	return records
}

func (s *service) scanFallback(ctx context.Context, date string) Summary {
	sum, err := s.repo.ScanOrdersForDate(ctx, date)
	if err != nil {
		// Reporting degrades to zeros rather than failing the caller.
		return Summary{}
	}
	return sum
}
