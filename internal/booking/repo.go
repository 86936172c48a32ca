package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

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

// conflictScope 冲突查询条件：同车辆、非取消、闭区间重叠。
// 可用性检查和插入前的加锁检查必须用同一份谓词。
func conflictScope(q *gorm.DB, vehicleID string, start, end time.Time) *gorm.DB {
	return q.
		Where("vehicle_id = ? AND status <> ?", vehicleID, StatusCancelled).
		Where("pickup_date <= ? AND return_date >= ?", end, start)
}

// CreateIfAvailable 在一个事务内完成“冲突检查 + 插入”：
// 先用 SELECT ... FOR UPDATE 锁住该车辆所有可能重叠的订单行，
// 确认无冲突后再写入，避免两个并发请求都看到“无冲突”而双双落库。
func (r *Repo) CreateIfAvailable(ctx context.Context, b *Booking) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var existing Booking
		err := conflictScope(
			tx.Model(&Booking{}).Clauses(clause.Locking{Strength: "UPDATE"}),
			b.VehicleID, b.PickupDate, b.ReturnDate,
		).Take(&existing).Error

		if err == nil {
			return ErrDateConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(b).Error
	})
}

// HasConflict 只读的可用性检查（不加锁）。
// 仅用于查询类场景；下单路径必须走 CreateIfAvailable。
func (r *Repo) HasConflict(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	var count int64
	if err := conflictScope(db.Model(&Booking{}), vehicleID, start, end).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Booking, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var b Booking
	if err := db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) Update(ctx context.Context, b *Booking) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(b).Error
}

// ListByRenter 按租客查询订单（存储顺序不做保证，调用方不应依赖排序）。
func (r *Repo) ListByRenter(ctx context.Context, renterID string) ([]Booking, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var bookings []Booking
	if err := db.Where("renter_id = ?", renterID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
