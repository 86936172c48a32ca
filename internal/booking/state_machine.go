package booking

import (
	"fmt"
	"time"
)

// AllowTransition 定义订单状态机的允许流转关系。
// WAITING_PAYMENT 是唯一的初始态；CONFIRMED / CANCELLED 均为终态。
var AllowTransition = map[Status][]Status{
	StatusWaitingPayment: {StatusConfirmed, StatusCancelled},
	// 终态：不允许从 CONFIRMED / CANCELLED 再流转
	StatusConfirmed: {},
	StatusCancelled: {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
func CanTransition(from, to Status) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对订单应用状态变更，并维护关键时间字段。
// 调用前应已通过业务校验；这里再做一次状态机兜底校验。
func ApplyTransition(b *Booking, to Status, now time.Time) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	from := b.Status
	if !ValidStatus(from) {
		return fmt.Errorf("booking has unknown status: %q", from)
	}
	if !CanTransition(from, to) {
		return &InvalidStateError{Current: from, Attempted: to}
	}

	b.Status = to

	switch to {
	case StatusConfirmed:
		if b.PaidAt == nil {
			t := now
			b.PaidAt = &t
		}
	case StatusCancelled:
		if b.CancelledAt == nil {
			t := now
			b.CancelledAt = &t
		}
	}
	return nil
}
