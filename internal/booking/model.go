package booking

import "time"

// Status 订单状态枚举（持久化为字符串）。
type Status string

const (
	StatusWaitingPayment Status = "WAITING_PAYMENT" // 已创建，待支付
	StatusConfirmed      Status = "CONFIRMED"       // 支付成功（终态）
	StatusCancelled      Status = "CANCELLED"       // 已取消（终态）
)

// ValidStatus 校验持久化读出的状态标签是否合法（不信任存量数据）。
func ValidStatus(s Status) bool {
	switch s {
	case StatusWaitingPayment, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking 租车订单 GORM 模型。
// 取还车日期按“日历日”处理：写入前统一截断到 UTC 零点。
type Booking struct {
	ID string `gorm:"primaryKey;size:36"`

	// 业务关联
	VehicleID string `gorm:"index;size:36;not null"`          // 被预订车辆
	RenterID  string `gorm:"index;size:36;not null"`          // 租客
	Status    Status `gorm:"type:varchar(16);index;not null"` // 当前状态

	// 日期区间（闭区间，边界日也算占用）
	PickupDate time.Time `gorm:"index;not null"` // 取车日
	ReturnDate time.Time `gorm:"index;not null"` // 还车日

	// 金额信息（单位：分）
	TotalPriceCents int64  `gorm:"not null;default:0"`
	Currency        string `gorm:"size:8;not null;default:'USD'"`

	// 支付信息（仅 CONFIRMED 后有值）
	PaymentMethod string     `gorm:"size:32"`
	PaidAt        *time.Time // 支付确认时间
	CancelledAt   *time.Time // 取消时间

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
