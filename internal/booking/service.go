package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RentLinkDrive/RentLinkDrive/internal/common/logger"
	"github.com/RentLinkDrive/RentLinkDrive/internal/user"
	"github.com/RentLinkDrive/RentLinkDrive/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store 订单存储接口（由 *Repo 实现；测试可用内存假实现）。
type Store interface {
	CreateIfAvailable(ctx context.Context, b *Booking) error
	HasConflict(ctx context.Context, vehicleID string, start, end time.Time) (bool, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	ListByRenter(ctx context.Context, renterID string) ([]Booking, error)
}

// VehicleDirectory 车辆目录只读协作方（catalog 拥有车辆数据，这里只取价格与归属）。
type VehicleDirectory interface {
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
}

// RenterDirectory 租客身份解析协作方。
type RenterDirectory interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// EventSink 业务事件出口（Kafka）。发布失败只记日志，不影响主流程。
type EventSink interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Service 封装订单生命周期的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
type Service struct {
	store    Store
	vehicles VehicleDirectory
	renters  RenterDirectory
	gateway  PaymentGateway
	events   EventSink
	log      logger.Logger
}

func NewService(store Store, vehicles VehicleDirectory, renters RenterDirectory, gateway PaymentGateway, events EventSink, log logger.Logger) *Service {
	return &Service{
		store:    store,
		vehicles: vehicles,
		renters:  renters,
		gateway:  gateway,
		events:   events,
		log:      log,
	}
}

// CreateBookingInput 下单入参。
type CreateBookingInput struct {
	VehicleID  string
	RenterID   string
	PickupDate time.Time
	ReturnDate time.Time
}

// CreateBooking 创建订单：
// 1. 车辆必须存在；2. 租客身份必须可解析；3. 日期区间合法；
// 4. 无重叠冲突（检查与插入在同一事务内加锁完成）；5. 计价；6. 以 WAITING_PAYMENT 落库。
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*Booking, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	vehicleID := strings.TrimSpace(in.VehicleID)
	renterID := strings.TrimSpace(in.RenterID)
	if vehicleID == "" {
		return nil, fmt.Errorf("%w: vehicle_id required", ErrInvalidArgument)
	}
	if renterID == "" {
		return nil, fmt.Errorf("%w: renter_id required", ErrInvalidArgument)
	}

	v, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("lookup vehicle: %w", err)
	}

	if _, err := s.renters.FindByID(ctx, renterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRenterNotFound
		}
		return nil, fmt.Errorf("lookup renter: %w", err)
	}

	start := NormalizeDate(in.PickupDate)
	end := NormalizeDate(in.ReturnDate)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	priceCents, err := Price(v.DailyRateCents, start, end)
	if err != nil {
		return nil, fmt.Errorf("compute price: %w", err)
	}

	b := &Booking{
		ID:              uuid.NewString(),
		VehicleID:       vehicleID,
		RenterID:        renterID,
		Status:          StatusWaitingPayment,
		PickupDate:      start,
		ReturnDate:      end,
		TotalPriceCents: priceCents,
		Currency:        v.Currency,
	}

	// 冲突检测与插入是一个原子单元；检测到冲突原样返回，不调整日期、不部分预订。
	if err := s.store.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	s.logInfo("booking created", map[string]interface{}{
		"booking_id": b.ID,
		"vehicle_id": b.VehicleID,
		"renter_id":  b.RenterID,
		"price":      b.TotalPriceCents,
	})
	s.publish(ctx, "booking.created", b)
	return b, nil
}

// ConfirmPayment 支付确认：仅允许 WAITING_PAYMENT -> CONFIRMED。
// 对 CONFIRMED / CANCELLED 的订单重复支付会被拒绝，错误信息带当前状态。
func (s *Service) ConfirmPayment(ctx context.Context, bookingID string, d PaymentDetails) (*Booking, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking_id required", ErrInvalidArgument)
	}

	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if b.Status != StatusWaitingPayment {
		return nil, &InvalidStateError{Current: b.Status, Attempted: StatusConfirmed}
	}

	// 网关失败时订单保持 WAITING_PAYMENT。
	if s.gateway != nil {
		if err := s.gateway.Charge(ctx, b, d); err != nil {
			return nil, fmt.Errorf("payment gateway: %w", err)
		}
	}

	if err := ApplyTransition(b, StatusConfirmed, time.Now().UTC()); err != nil {
		return nil, err
	}
	b.PaymentMethod = strings.TrimSpace(d.Method)

	if err := s.store.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logInfo("booking confirmed", map[string]interface{}{
		"booking_id": b.ID,
		"method":     b.PaymentMethod,
	})
	s.publish(ctx, "booking.confirmed", b)
	return b, nil
}

// CancelBooking 取消订单：仅允许 WAITING_PAYMENT -> CANCELLED。
// 取消是状态变更，不删除记录。
func (s *Service) CancelBooking(ctx context.Context, bookingID string) (*Booking, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking_id required", ErrInvalidArgument)
	}

	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if b.Status != StatusWaitingPayment {
		return nil, &InvalidStateError{Current: b.Status, Attempted: StatusCancelled}
	}
	if err := ApplyTransition(b, StatusCancelled, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logInfo("booking cancelled", map[string]interface{}{"booking_id": b.ID})
	s.publish(ctx, "booking.cancelled", b)
	return b, nil
}

// GetBooking 按 ID 查询。
func (s *Service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidArgument)
	}
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByRenter 查询租客的全部订单。
func (s *Service) ListByRenter(ctx context.Context, renterID string) ([]Booking, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	renterID = strings.TrimSpace(renterID)
	if renterID == "" {
		return nil, fmt.Errorf("%w: renter_id required", ErrInvalidArgument)
	}
	if _, err := s.renters.FindByID(ctx, renterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRenterNotFound
		}
		return nil, fmt.Errorf("lookup renter: %w", err)
	}
	return s.store.ListByRenter(ctx, renterID)
}

// CheckAvailability 只读可用性查询：true 表示区间可预订。
func (s *Service) CheckAvailability(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	if s == nil || s.store == nil {
		return false, fmt.Errorf("service not initialized")
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return false, fmt.Errorf("%w: vehicle_id required", ErrInvalidArgument)
	}
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if end.Before(start) {
		return false, ErrInvalidRange
	}
	conflict, err := s.store.HasConflict(ctx, vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.log == nil {
		return
	}
	s.log.WithFields(fields).Info(msg)
}

func (s *Service) publish(ctx context.Context, key string, b *Booking) {
	if s.events == nil {
		return
	}
	evt := map[string]any{
		"booking_id": b.ID,
		"vehicle_id": b.VehicleID,
		"renter_id":  b.RenterID,
		"status":     string(b.Status),
		"price":      b.TotalPriceCents,
		"pickup":     b.PickupDate.Format("2006-01-02"),
		"return":     b.ReturnDate.Format("2006-01-02"),
	}
	if err := s.events.PublishJSON(ctx, key, evt); err != nil && s.log != nil {
		s.log.Warnf("failed to publish %s event: %v", key, err)
	}
}
