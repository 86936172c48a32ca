package booking

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{"three days", day(2026, 3, 1), day(2026, 3, 4), 3},
		{"one day", day(2026, 3, 1), day(2026, 3, 2), 1},
		{"same day counts as one", day(2026, 3, 1), day(2026, 3, 1), 1},
		// 时分秒不参与计费：跨 23 小时但不足整天仍按最小 1 天
		{"sub-day hours ignored", time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC), time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RentalDays(tc.start, tc.end)
			if err != nil {
				t.Fatalf("RentalDays: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d days, got %d", tc.want, got)
			}
		})
	}
}

func TestRentalDaysInvalidRange(t *testing.T) {
	_, err := RentalDays(day(2026, 3, 4), day(2026, 3, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestPrice(t *testing.T) {
	// 100 分/天 × 3 天 = 300 分
	got, err := Price(100, day(2026, 3, 1), day(2026, 3, 4))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if got != 300 {
		t.Fatalf("expected 300, got %d", got)
	}

	// 日租金为 0：总价 0，不是错误
	got, err = Price(0, day(2026, 3, 1), day(2026, 3, 4))
	if err != nil {
		t.Fatalf("Price with zero rate: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	// 负日租金是错误
	if _, err := Price(-1, day(2026, 3, 1), day(2026, 3, 4)); err == nil {
		t.Fatalf("expected negative rate to fail")
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2026, 3, 1, 18, 30, 45, 123, time.FixedZone("CST", 8*3600))
	got := NormalizeDate(in)
	want := day(2026, 3, 1)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
