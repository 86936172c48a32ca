package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RentLinkDrive/RentLinkDrive/internal/booking"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/logger"
	"github.com/RentLinkDrive/RentLinkDrive/internal/user"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// OwnerSnapshot 车主看板快照（按需重算，不落库）。
// 四个数字来自同一次聚合查询，保证 pending + completed <= 订单总数。
type OwnerSnapshot struct {
	OwnerID           string `json:"owner_id"`
	TotalRevenueCents int64  `json:"total_revenue_cents"`
	ActiveVehicles    int64  `json:"active_vehicles"`
	PendingBookings   int64  `json:"pending_bookings"`
	CompletedBookings int64  `json:"completed_bookings"`
}

// AdminSnapshot 平台级看板快照。
type AdminSnapshot struct {
	TotalUsers        int64 `json:"total_users"`
	TotalVehicles     int64 `json:"total_vehicles"`
	TotalBookings     int64 `json:"total_bookings"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

// Store 聚合查询接口（由 *Repo 实现）。
type Store interface {
	OwnerBookingAggregates(ctx context.Context, ownerID string) ([]StatusAggregate, error)
	CountVehiclesByOwner(ctx context.Context, ownerID string) (int64, error)
	PlatformCounts(ctx context.Context) (users, vehicles, bookings int64, err error)
	ConfirmedRevenueCents(ctx context.Context) (int64, error)
}

// OwnerDirectory 车主身份解析（按邮箱）。
type OwnerDirectory interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service 看板统计。看板是尽力而为的快照，不要求与并发写事务一致，
// 但单次调用内的各项数字必须来自同一次取数。
type Service struct {
	store    Store
	owners   OwnerDirectory
	cache    *redis.Client // 可为 nil（无缓存直接回源）
	cacheTTL time.Duration
	log      logger.Logger
}

const adminSnapshotCacheKey = "stats:admin_snapshot"

func NewService(store Store, owners OwnerDirectory, cache *redis.Client, log logger.Logger) *Service {
	return &Service{
		store:    store,
		owners:   owners,
		cache:    cache,
		cacheTTL: 30 * time.Second,
		log:      log,
	}
}

// OwnerStats 车主看板：收入只计 CONFIRMED，取消订单不计入任何一项。
// 车主不存在返回 ErrOwnerNotFound；有效车主无车无单时返回全零快照。
func (s *Service) OwnerStats(ctx context.Context, ownerEmail string) (*OwnerSnapshot, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	ownerEmail = strings.TrimSpace(ownerEmail)
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: owner email required", booking.ErrInvalidArgument)
	}

	owner, err := s.owners.FindByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("lookup owner: %w", err)
	}

	aggs, err := s.store.OwnerBookingAggregates(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookings: %w", err)
	}
	vehicles, err := s.store.CountVehiclesByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	snap := &OwnerSnapshot{
		OwnerID:        owner.ID,
		ActiveVehicles: vehicles,
	}
	for _, a := range aggs {
		switch a.Status {
		case booking.StatusWaitingPayment:
			snap.PendingBookings = a.Count
		case booking.StatusConfirmed:
			snap.CompletedBookings = a.Count
			snap.TotalRevenueCents = a.RevenueCents
		}
	}
	return snap, nil
}

// AdminStats 平台看板。结果可被 Redis 短缓存；缓存不可用时直接回源。
func (s *Service) AdminStats(ctx context.Context) (*AdminSnapshot, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	if snap := s.cachedAdminSnapshot(ctx); snap != nil {
		return snap, nil
	}

	users, vehicles, bookings, err := s.store.PlatformCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform counts: %w", err)
	}
	revenue, err := s.store.ConfirmedRevenueCents(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirmed revenue: %w", err)
	}

	snap := &AdminSnapshot{
		TotalUsers:        users,
		TotalVehicles:     vehicles,
		TotalBookings:     bookings,
		TotalRevenueCents: revenue,
	}
	s.storeAdminSnapshot(ctx, snap)
	return snap, nil
}

func (s *Service) cachedAdminSnapshot(ctx context.Context) *AdminSnapshot {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, adminSnapshotCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.log != nil {
			s.log.Warnf("admin snapshot cache get failed: %v", err)
		}
		return nil
	}
	var snap AdminSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	return &snap
}

func (s *Service) storeAdminSnapshot(ctx context.Context, snap *AdminSnapshot) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, adminSnapshotCacheKey, raw, s.cacheTTL).Err(); err != nil && s.log != nil {
		s.log.Warnf("admin snapshot cache set failed: %v", err)
	}
}
