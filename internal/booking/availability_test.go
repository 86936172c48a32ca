package booking

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	mk := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name                       string
		start, end, pickup, ret    time.Time
		want                       bool
	}{
		{"disjoint before", mk(2026, 3, 1), mk(2026, 3, 3), mk(2026, 3, 5), mk(2026, 3, 8), false},
		{"disjoint after", mk(2026, 3, 10), mk(2026, 3, 12), mk(2026, 3, 5), mk(2026, 3, 8), false},
		{"contained", mk(2026, 3, 6), mk(2026, 3, 7), mk(2026, 3, 5), mk(2026, 3, 8), true},
		{"containing", mk(2026, 3, 1), mk(2026, 3, 10), mk(2026, 3, 5), mk(2026, 3, 8), true},
		{"partial overlap", mk(2026, 3, 7), mk(2026, 3, 12), mk(2026, 3, 5), mk(2026, 3, 8), true},
		// 闭区间：边界日共享视为冲突
		{"shared boundary pickup day", mk(2026, 3, 8), mk(2026, 3, 10), mk(2026, 3, 5), mk(2026, 3, 8), true},
		{"shared boundary return day", mk(2026, 3, 1), mk(2026, 3, 5), mk(2026, 3, 5), mk(2026, 3, 8), true},
		{"single day vs single day", mk(2026, 3, 5), mk(2026, 3, 5), mk(2026, 3, 5), mk(2026, 3, 5), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.start, tc.end, tc.pickup, tc.ret); got != tc.want {
				t.Fatalf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tc.start, tc.end, tc.pickup, tc.ret, got, tc.want)
			}
		})
	}
}

func TestConflictsWithIgnoresCancelled(t *testing.T) {
	mk := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}
	b := &Booking{
		Status:     StatusCancelled,
		PickupDate: mk(5),
		ReturnDate: mk(8),
	}
	if ConflictsWith(b, mk(5), mk(8)) {
		t.Fatalf("cancelled booking must not block the interval")
	}

	b.Status = StatusWaitingPayment
	if !ConflictsWith(b, mk(5), mk(8)) {
		t.Fatalf("waiting_payment booking must block the interval")
	}
	b.Status = StatusConfirmed
	if !ConflictsWith(b, mk(8), mk(10)) {
		t.Fatalf("confirmed booking must block the shared boundary day")
	}
	if ConflictsWith(nil, mk(5), mk(8)) {
		t.Fatalf("nil booking never conflicts")
	}
}
