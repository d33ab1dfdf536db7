package httpapi

import (
	"context"

	"munchbox-be/internal/cart"
	"munchbox-be/internal/menu"
	"munchbox-be/internal/order"
	"munchbox-be/internal/payment"
	"munchbox-be/internal/revenue"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, sub cart.Submission) (*order.Order, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID int64, next order.Status) error {
	args := m.Called(ctx, orderID, next)
	return args.Error(0)
}

func (m *MockOrderService) AvailableSlots() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Categories(ctx context.Context) ([]menu.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Category), args.Error(1)
}

func (m *MockMenuService) Items(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

type MockRevenueService struct {
	mock.Mock
}

func (m *MockRevenueService) IsAggregateAvailable(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockRevenueService) Reset() {
	m.Called()
}

func (m *MockRevenueService) TodayRevenue(ctx context.Context) revenue.Summary {
	args := m.Called(ctx)
	return args.Get(0).(revenue.Summary)
}

func (m *MockRevenueService) History(ctx context.Context, limit int) []revenue.DailyRecord {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]revenue.DailyRecord)
}

func (m *MockRevenueService) Range(ctx context.Context, from, to string) []revenue.DailyRecord {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]revenue.DailyRecord)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64, metadata map[string]string) (*payment.Intent, error) {
	args := m.Called(ctx, amount, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}
