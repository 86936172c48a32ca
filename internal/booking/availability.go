package booking

import "time"

// Overlaps 闭区间重叠判断：start <= ret && end >= pickup。
// 边界日共享也算重叠（当日还车 + 当日取车视为冲突，与计价口径一致）。
func Overlaps(start, end, pickup, ret time.Time) bool {
	return !start.After(ret) && !end.Before(pickup)
}

// ConflictsWith 判断已有订单 b 是否与 [start, end] 冲突。
// 已取消的订单不占用车辆。
func ConflictsWith(b *Booking, start, end time.Time) bool {
	if b == nil || b.Status == StatusCancelled {
		return false
	}
	return Overlaps(start, end, b.PickupDate, b.ReturnDate)
}
