package booking

import (
	"fmt"
	"time"
)

// NormalizeDate 截断到 UTC 当日零点。日期区间运算前都要先归一化。
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RentalDays 计算计费天数：max(1, 整天数)。
// 同日取还车按 1 天计；end 早于 start 返回 ErrInvalidRange。
func RentalDays(start, end time.Time) (int64, error) {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	days := int64(end.Sub(start) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// Price 根据日租金（分）与日期区间计算总价（分）。
// 日租金为 0 时总价为 0，不是错误；金额永远不为负。
func Price(dailyRateCents int64, start, end time.Time) (int64, error) {
	if dailyRateCents < 0 {
		return 0, fmt.Errorf("daily rate is negative: %d", dailyRateCents)
	}
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * dailyRateCents, nil
}
