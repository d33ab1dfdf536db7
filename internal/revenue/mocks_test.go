package revenue

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ProbeAggregate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) GetDailyRecord(ctx context.Context, date string) (*DailyRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DailyRecord), args.Error(1)
}

func (m *MockRepository) GetHistory(ctx context.Context, limit int) ([]DailyRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DailyRecord), args.Error(1)
}

func (m *MockRepository) GetRange(ctx context.Context, from, to string) ([]DailyRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DailyRecord), args.Error(1)
}

func (m *MockRepository) ScanOrdersForDate(ctx context.Context, date string) (Summary, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(Summary), args.Error(1)
}
