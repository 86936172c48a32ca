package stats

import (
	"context"
	"fmt"

	"github.com/RentLinkDrive/RentLinkDrive/internal/booking"
	"github.com/RentLinkDrive/RentLinkDrive/internal/user"
	"github.com/RentLinkDrive/RentLinkDrive/internal/vehicle"
	"gorm.io/gorm"
)

// StatusAggregate 某一状态下的订单数与金额合计（单位：分）。
type StatusAggregate struct {
	Status       booking.Status
	Count        int64
	RevenueCents int64
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

// OwnerBookingAggregates 车主名下所有车辆的订单，按状态聚合。
// 聚合下推到存储层（JOIN + GROUP BY），单次查询取回全部数字，
// 保证各计数来自同一快照，语义等价于“取全量订单再内存过滤”。
func (r *Repo) OwnerBookingAggregates(ctx context.Context, ownerID string) ([]StatusAggregate, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var rows []StatusAggregate
	err := db.Model(&booking.Booking{}).
		Select("bookings.status AS status, COUNT(*) AS count, COALESCE(SUM(bookings.total_price_cents), 0) AS revenue_cents").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("vehicles.owner_id = ?", ownerID).
		Group("bookings.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountVehiclesByOwner 车主名下车辆数。
func (r *Repo) CountVehiclesByOwner(ctx context.Context, ownerID string) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	var total int64
	err := db.Model(&vehicle.Vehicle{}).Where("owner_id = ?", ownerID).Count(&total).Error
	return total, err
}

// PlatformCounts 平台总量：用户 / 车辆 / 订单。
func (r *Repo) PlatformCounts(ctx context.Context) (users, vehicles, bookings int64, err error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, 0, 0, fmt.Errorf("repo db is nil")
	}
	if err = db.Model(&user.User{}).Count(&users).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&vehicle.Vehicle{}).Count(&vehicles).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&booking.Booking{}).Count(&bookings).Error; err != nil {
		return 0, 0, 0, err
	}
	return users, vehicles, bookings, nil
}

// ConfirmedRevenueCents 平台已确认订单总收入（分）；无数据时为 0。
func (r *Repo) ConfirmedRevenueCents(ctx context.Context) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	var total int64
	err := db.Model(&booking.Booking{}).
		Select("COALESCE(SUM(total_price_cents), 0)").
		Where("status = ?", booking.StatusConfirmed).
		Scan(&total).Error
	return total, err
}
