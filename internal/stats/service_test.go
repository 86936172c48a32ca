package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/RentLinkDrive/RentLinkDrive/internal/booking"
	"github.com/RentLinkDrive/RentLinkDrive/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memStatsStore struct {
	aggregates map[string][]StatusAggregate // ownerID -> 聚合行
	vehicles   map[string]int64
	users      int64
	allVeh     int64
	bookings   int64
	revenue    int64
}

func (m *memStatsStore) OwnerBookingAggregates(_ context.Context, ownerID string) ([]StatusAggregate, error) {
	return m.aggregates[ownerID], nil
}

func (m *memStatsStore) CountVehiclesByOwner(_ context.Context, ownerID string) (int64, error) {
	return m.vehicles[ownerID], nil
}

func (m *memStatsStore) PlatformCounts(_ context.Context) (int64, int64, int64, error) {
	return m.users, m.allVeh, m.bookings, nil
}

func (m *memStatsStore) ConfirmedRevenueCents(_ context.Context) (int64, error) {
	return m.revenue, nil
}

type memOwners map[string]*user.User

func (m memOwners) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := m[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestOwnerStats(t *testing.T) {
	// 车主有 1 笔已确认（收入 300）、1 笔待支付、1 笔已取消（金额 999，不计入任何一项）
	store := &memStatsStore{
		aggregates: map[string][]StatusAggregate{
			"owner-1": {
				{Status: booking.StatusConfirmed, Count: 1, RevenueCents: 300},
				{Status: booking.StatusWaitingPayment, Count: 1, RevenueCents: 200},
				{Status: booking.StatusCancelled, Count: 1, RevenueCents: 999},
			},
		},
		vehicles: map[string]int64{"owner-1": 2},
	}
	owners := memOwners{"owner@example.com": {ID: "owner-1", Email: "owner@example.com"}}
	svc := NewService(store, owners, nil, nil)

	snap, err := svc.OwnerStats(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", snap.OwnerID)
	assert.Equal(t, int64(300), snap.TotalRevenueCents)
	assert.Equal(t, int64(2), snap.ActiveVehicles)
	assert.Equal(t, int64(1), snap.PendingBookings)
	assert.Equal(t, int64(1), snap.CompletedBookings)

	// 看板只读：重复调用结果一致
	again, err := svc.OwnerStats(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, snap, again)
}

func TestOwnerStatsEmptyOwner(t *testing.T) {
	store := &memStatsStore{
		aggregates: map[string][]StatusAggregate{},
		vehicles:   map[string]int64{},
	}
	owners := memOwners{"new@example.com": {ID: "owner-2", Email: "new@example.com"}}
	svc := NewService(store, owners, nil, nil)

	// 有效车主但没有任何车和订单：全零快照，不是错误
	snap, err := svc.OwnerStats(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, &OwnerSnapshot{OwnerID: "owner-2"}, snap)
}

func TestOwnerStatsNotFound(t *testing.T) {
	svc := NewService(&memStatsStore{}, memOwners{}, nil, nil)

	_, err := svc.OwnerStats(context.Background(), "ghost@example.com")
	assert.True(t, errors.Is(err, booking.ErrOwnerNotFound))

	_, err = svc.OwnerStats(context.Background(), "   ")
	assert.True(t, errors.Is(err, booking.ErrInvalidArgument))
}

func TestAdminStats(t *testing.T) {
	store := &memStatsStore{
		users:    10,
		allVeh:   4,
		bookings: 7,
		revenue:  12345,
	}
	svc := NewService(store, memOwners{}, nil, nil)

	snap, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AdminSnapshot{
		TotalUsers:        10,
		TotalVehicles:     4,
		TotalBookings:     7,
		TotalRevenueCents: 12345,
	}, snap)
}

func TestAdminStatsZeroRevenue(t *testing.T) {
	// 没有任何已确认订单时收入为 0，而不是错误
	svc := NewService(&memStatsStore{users: 3}, memOwners{}, nil, nil)

	snap, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap.TotalRevenueCents)
	assert.Equal(t, int64(3), snap.TotalUsers)
}
