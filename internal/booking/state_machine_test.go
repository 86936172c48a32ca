package booking

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusWaitingPayment, StatusConfirmed) {
		t.Fatalf("expected waiting_payment -> confirmed allowed")
	}
	if !CanTransition(StatusWaitingPayment, StatusCancelled) {
		t.Fatalf("expected waiting_payment -> cancelled allowed")
	}
	// 终态不允许任何流转
	if CanTransition(StatusConfirmed, StatusCancelled) {
		t.Fatalf("expected confirmed -> cancelled not allowed")
	}
	if CanTransition(StatusCancelled, StatusConfirmed) {
		t.Fatalf("expected cancelled -> confirmed not allowed")
	}
	if CanTransition(StatusConfirmed, StatusConfirmed) {
		t.Fatalf("expected confirmed -> confirmed not allowed")
	}
	if CanTransition(Status("UNKNOWN"), StatusConfirmed) {
		t.Fatalf("expected unknown status to reject all transitions")
	}
}

func TestApplyTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	b := &Booking{Status: StatusWaitingPayment}
	if err := ApplyTransition(b, StatusConfirmed, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("expected status CONFIRMED, got %s", b.Status)
	}
	if b.PaidAt == nil || !b.PaidAt.Equal(now) {
		t.Fatalf("expected paid_at = %v, got %v", now, b.PaidAt)
	}

	c := &Booking{Status: StatusWaitingPayment}
	if err := ApplyTransition(c, StatusCancelled, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if c.CancelledAt == nil || !c.CancelledAt.Equal(now) {
		t.Fatalf("expected cancelled_at = %v, got %v", now, c.CancelledAt)
	}
}

func TestApplyTransitionRejectsTerminalStates(t *testing.T) {
	now := time.Now().UTC()

	b := &Booking{Status: StatusConfirmed}
	err := ApplyTransition(b, StatusCancelled, now)
	if err == nil {
		t.Fatalf("expected transition from CONFIRMED to fail")
	}
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected *InvalidStateError, got %T", err)
	}
	// 错误信息必须包含当前状态
	if !strings.Contains(err.Error(), "CONFIRMED") {
		t.Fatalf("expected error to mention current status, got %q", err.Error())
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("booking must be unchanged after rejected transition, got %s", b.Status)
	}
}

func TestApplyTransitionUnknownStatus(t *testing.T) {
	b := &Booking{Status: Status("GARBAGE")}
	if err := ApplyTransition(b, StatusConfirmed, time.Now()); err == nil {
		t.Fatalf("expected unknown status to be rejected")
	}
}
