package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"munchbox-be/internal/cart"
	"munchbox-be/internal/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 2025-06-04 is a Wednesday.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2025, 6, 4, hour, minute, 0, 0, time.UTC)
}

func newTestService(repo Repository, now time.Time) *service {
	return &service{
		repo:   repo,
		weekly: hours.Default(),
		now:    func() time.Time { return now },
	}
}

func itemID(n int64) *int64 { return &n }

func submissionFor(slot string) cart.Submission {
	return cart.Submission{
		Customer:       cart.Customer{Name: "Jo Bloggs", Phone: "07700900123"},
		CollectionTime: slot,
		Lines: []cart.Line{
			{MenuItemID: itemID(1), Name: "Bacon Roll", UnitPrice: 400, Quantity: 1},
		},
		ClaimedTotal: 400,
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, wednesdayAt(9, 0))

	created := &Order{ID: 1, OrderNumber: "#12345678", Status: StatusPending, TotalAmount: 400}
	repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req *cart.OrderRequest) bool {
		return req.CollectionDate == "2025-06-04" &&
			req.CollectionTime == "09:15" &&
			req.TotalAmount == 400
	})).Return(created, nil)

	o, err := svc.PlaceOrder(context.Background(), submissionFor("09:15"))

	require.NoError(t, err)
	assert.Equal(t, "#12345678", o.OrderNumber)
	repo.AssertExpectations(t)
}

func TestPlaceOrder_StaleSlotRejected(t *testing.T) {
	repo := new(MockRepository)
	// The client rendered slots at 09:00 but submits at 13:55, when the
	// shop can no longer take same-day orders.
	svc := newTestService(repo, wednesdayAt(13, 55))

	_, err := svc.PlaceOrder(context.Background(), submissionFor("09:15"))

	var verr *cart.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "collection_time", verr.Field)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ClosedDayRejected(t *testing.T) {
	repo := new(MockRepository)
	sunday := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, sunday)

	_, err := svc.PlaceOrder(context.Background(), submissionFor("10:30"))

	var verr *cart.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_WrongDateRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, wednesdayAt(9, 0))

	sub := submissionFor("09:15")
	sub.CollectionDate = "2025-06-05"

	_, err := svc.PlaceOrder(context.Background(), sub)

	var verr *cart.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "collection_date", verr.Field)
}

func TestPlaceOrder_PersistenceErrorSurfaced(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, wednesdayAt(9, 0))

	repo.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.PlaceOrder(context.Background(), submissionFor("09:15"))

	require.Error(t, err)
	var verr *cart.ValidationError
	assert.False(t, errors.As(err, &verr), "store failures are not validation errors")
}

func TestUpdateStatus_LegalTransitions(t *testing.T) {
	legal := []struct {
		from, to Status
	}{
		{StatusPending, StatusPreparing},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusPreparing, StatusCancelled},
		{StatusReady, StatusCancelled},
	}

	for _, tt := range legal {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo, wednesdayAt(9, 0))

			repo.On("GetOrderDetail", mock.Anything, int64(7)).
				Return(&Order{ID: 7, Status: tt.from}, nil)
			repo.On("UpdateOrderStatus", mock.Anything, int64(7), tt.to).Return(nil)

			err := svc.UpdateStatus(context.Background(), 7, tt.to)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateStatus_IllegalTransitions(t *testing.T) {
	illegal := []struct {
		from, to Status
	}{
		{StatusPending, StatusReady},
		{StatusPending, StatusCompleted},
		{StatusPreparing, StatusCompleted},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusPreparing},
		{StatusReady, StatusPreparing},
	}

	for _, tt := range illegal {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo, wednesdayAt(9, 0))

			repo.On("GetOrderDetail", mock.Anything, int64(7)).
				Return(&Order{ID: 7, Status: tt.from}, nil)

			err := svc.UpdateStatus(context.Background(), 7, tt.to)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_UnknownValueRejectedBeforeStorage(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, wednesdayAt(9, 0))

	err := svc.UpdateStatus(context.Background(), 7, Status("shipped"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "GetOrderDetail", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, wednesdayAt(9, 0))

	repo.On("GetOrderDetail", mock.Anything, int64(99)).
		Return(nil, ErrOrderNotFound)

	err := svc.UpdateStatus(context.Background(), 99, StatusPreparing)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAvailableSlots_DelegatesToClock(t *testing.T) {
	svc := newTestService(new(MockRepository), wednesdayAt(13, 50))
	assert.Empty(t, svc.AvailableSlots())

	svc = newTestService(new(MockRepository), wednesdayAt(9, 7))
	slots := svc.AvailableSlots()
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:30", slots[0])
}
