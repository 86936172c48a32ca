package booking

import (
	"errors"
	"fmt"
)

// 业务可预期错误：直接返回给调用方渲染，不按系统故障记日志。
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrRenterNotFound  = errors.New("renter not found")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidArgument 入参缺失或非法（必填身份为空等）。
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRange 还车日早于取车日。
	ErrInvalidRange = errors.New("return date is before pickup date")

	// ErrDateConflict 请求区间与该车辆已有非取消订单重叠。
	ErrDateConflict = errors.New("vehicle is already booked for the requested dates")
)

// InvalidStateError 在订单当前状态不允许该操作时返回。
// 错误信息必须带上当前状态，调用方要据此向用户解释拒绝原因。
type InvalidStateError struct {
	Current   Status
	Attempted Status
}

func (e *InvalidStateError) Error() string {
	if e.Attempted != "" {
		return fmt.Sprintf("booking status is %s, cannot transition to %s", e.Current, e.Attempted)
	}
	return fmt.Sprintf("booking status is %s", e.Current)
}
