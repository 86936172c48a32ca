package vehicle

import (
	"time"
)

// 车辆可见性状态。下架（offline）的车辆不出现在搜索结果中。
const (
	StatusAvailable = "available"
	StatusOffline   = "offline"
)

// Vehicle 是 vehicles 表的 GORM 模型。
// 车辆由 catalog 独占维护；订单侧只读（取日租金与归属）。
type Vehicle struct {
	ID             string    `gorm:"primaryKey;size:36"`
	PlateNumber    string    `gorm:"uniqueIndex;size:32;not null"`
	Model          string    `gorm:"size:64"`
	City           string    `gorm:"index;size:64"`          // 所在城市
	OwnerID        string    `gorm:"index;size:36;not null"` // 车主
	DailyRateCents int64     `gorm:"not null;default:0"`     // 日租金（分），不允许为负
	Currency       string    `gorm:"size:8;not null;default:'USD'"`
	Status         string    `gorm:"size:16;not null"` // available / offline
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}
