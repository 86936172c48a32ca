package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/RentLinkDrive/RentLinkDrive/internal/user"
	"github.com/RentLinkDrive/RentLinkDrive/internal/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore 内存版 Store。CreateIfAvailable 在锁内完成“查冲突 + 插入”，
// 语义与 MySQL 事务加锁实现一致，用于驱动并发用例。
type memStore struct {
	mu       sync.Mutex
	bookings map[string]*Booking
}

func newMemStore() *memStore {
	return &memStore{bookings: make(map[string]*Booking)}
}

func (m *memStore) CreateIfAvailable(_ context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.bookings {
		if ex.VehicleID != b.VehicleID {
			continue
		}
		if ConflictsWith(ex, b.PickupDate, b.ReturnDate) {
			return ErrDateConflict
		}
	}
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memStore) HasConflict(_ context.Context, vehicleID string, start, end time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.bookings {
		if ex.VehicleID == vehicleID && ConflictsWith(ex, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memStore) Update(_ context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memStore) ListByRenter(_ context.Context, renterID string) ([]Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Booking
	for _, b := range m.bookings {
		if b.RenterID == renterID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type memVehicles map[string]*vehicle.Vehicle

func (m memVehicles) FindByID(_ context.Context, id string) (*vehicle.Vehicle, error) {
	v, ok := m[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

type memRenters map[string]*user.User

func (m memRenters) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type failGateway struct{ err error }

func (g failGateway) Charge(context.Context, *Booking, PaymentDetails) error { return g.err }

type memSink struct {
	mu   sync.Mutex
	keys []string
}

func (s *memSink) PublishJSON(_ context.Context, key string, _ any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	return nil
}

func newTestService(store Store, sink EventSink) *Service {
	vehicles := memVehicles{
		"veh-1": {ID: "veh-1", OwnerID: "owner-1", DailyRateCents: 100, Currency: "USD"},
		"veh-2": {ID: "veh-2", OwnerID: "owner-1", DailyRateCents: 0, Currency: "USD"},
	}
	renters := memRenters{
		"renter-1": {ID: "renter-1", Username: "alice"},
		"renter-2": {ID: "renter-2", Username: "bob"},
	}
	return NewService(store, vehicles, renters, &StubGateway{}, sink, nil)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	sink := &memSink{}
	svc := newTestService(newMemStore(), sink)

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	assert.Equal(t, StatusWaitingPayment, b.Status)
	assert.Equal(t, int64(300), b.TotalPriceCents) // 100 × 3 天
	assert.Equal(t, "USD", b.Currency)
	assert.Equal(t, []string{"booking.created"}, sink.keys)
}

func TestCreateBookingSameDayMinimumCharge(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), b.TotalPriceCents)
}

func TestCreateBookingZeroRate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-2",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.TotalPriceCents)
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	_, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "missing",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "missing",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	assert.ErrorIs(t, err, ErrRenterNotFound)

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 4),
		ReturnDate: day(2026, 3, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateBookingDateConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	_, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 5),
		ReturnDate: day(2026, 3, 8),
	})
	require.NoError(t, err)

	// 完全重叠
	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-2",
		PickupDate: day(2026, 3, 6),
		ReturnDate: day(2026, 3, 7),
	})
	assert.ErrorIs(t, err, ErrDateConflict)

	// 边界日共享也冲突
	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-2",
		PickupDate: day(2026, 3, 8),
		ReturnDate: day(2026, 3, 10),
	})
	assert.ErrorIs(t, err, ErrDateConflict)

	// 另一辆车不受影响
	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-2",
		RenterID:   "renter-2",
		PickupDate: day(2026, 3, 5),
		ReturnDate: day(2026, 3, 8),
	})
	assert.NoError(t, err)
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	sink := &memSink{}
	svc := newTestService(newMemStore(), sink)

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	require.NoError(t, err)

	got, err := svc.ConfirmPayment(ctx, b.ID, PaymentDetails{Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
	assert.Equal(t, "card", got.PaymentMethod)
	require.NotNil(t, got.PaidAt)
	assert.Contains(t, sink.keys, "booking.confirmed")

	// 重复支付：拒绝，错误信息带当前状态
	_, err = svc.ConfirmPayment(ctx, b.ID, PaymentDetails{Method: "card"})
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, StatusConfirmed, ise.Current)
	assert.Contains(t, err.Error(), "CONFIRMED")
}

func TestConfirmPaymentNotFound(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	_, err := svc.ConfirmPayment(context.Background(), "missing", PaymentDetails{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmPaymentGatewayFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store, nil)
	svc.gateway = failGateway{err: errors.New("card declined")}

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 1),
		ReturnDate: day(2026, 3, 4),
	})
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, b.ID, PaymentDetails{Method: "card"})
	require.Error(t, err)

	// 网关失败后订单保持待支付，可重试
	latest, err := store.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusWaitingPayment, latest.Status)
	assert.Nil(t, latest.PaidAt)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	sink := &memSink{}
	svc := newTestService(newMemStore(), sink)

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 5),
		ReturnDate: day(2026, 3, 8),
	})
	require.NoError(t, err)

	got, err := svc.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)
	assert.Contains(t, sink.keys, "booking.cancelled")

	// 已确认订单不能取消
	b2, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 4, 1),
		ReturnDate: day(2026, 4, 3),
	})
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(ctx, b2.ID, PaymentDetails{Method: "card"})
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, b2.ID)
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, StatusConfirmed, ise.Current)
}

func TestCancelledBookingFreesDates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	b, err := svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 5),
		ReturnDate: day(2026, 3, 8),
	})
	require.NoError(t, err)
	_, err = svc.CancelBooking(ctx, b.ID)
	require.NoError(t, err)

	// 取消后同一区间可再次预订
	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-2",
		PickupDate: day(2026, 3, 5),
		ReturnDate: day(2026, 3, 8),
	})
	assert.NoError(t, err)
}

func TestListByRenter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBooking(ctx, CreateBookingInput{
			VehicleID:  "veh-1",
			RenterID:   "renter-1",
			PickupDate: day(2026, 3, 1+10*i),
			ReturnDate: day(2026, 3, 3+10*i),
		})
		require.NoError(t, err)
	}

	got, err := svc.ListByRenter(ctx, "renter-1")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.ListByRenter(ctx, "renter-2")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ListByRenter(ctx, "missing")
	assert.ErrorIs(t, err, ErrRenterNotFound)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	ok, err := svc.CheckAvailability(ctx, "veh-1", day(2026, 3, 5), day(2026, 3, 8))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  "veh-1",
		RenterID:   "renter-1",
		PickupDate: day(2026, 3, 5),
		ReturnDate: day(2026, 3, 8),
	})
	require.NoError(t, err)

	ok, err = svc.CheckAvailability(ctx, "veh-1", day(2026, 3, 8), day(2026, 3, 10))
	require.NoError(t, err)
	assert.False(t, ok)

	// 只读查询不占用区间，可重复调用
	ok, err = svc.CheckAvailability(ctx, "veh-1", day(2026, 3, 9), day(2026, 3, 10))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), nil)

	const n = 32
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(ctx, CreateBookingInput{
				VehicleID:  "veh-1",
				RenterID:   fmt.Sprintf("renter-%d", 1+i%2),
				PickupDate: day(2026, 3, 5),
				ReturnDate: day(2026, 3, 8),
			})
		}(i)
	}
	wg.Wait()

	success := 0
	for _, err := range errs {
		if err == nil {
			success++
			continue
		}
		assert.ErrorIs(t, err, ErrDateConflict)
	}
	assert.Equal(t, 1, success, "exactly one booking must win the interval")
}
