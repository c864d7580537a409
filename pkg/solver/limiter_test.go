package solver

import (
	"context"
	"testing"
	"time"
)

func TestLimiterDefaultsToInfinite(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	if !limiter.Ok(1000000) {
		t.Error("Default limiter should search forever")
	}
	if limiter.StopReason() != StopNone {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopNone)
	}
}

func TestLimiterStates(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetStates(100))
	limiter.Reset()

	if ok := limiter.Ok(99); !ok {
		t.Errorf("<States=%d: ok=%v, want=%v", 99, ok, !ok)
	}
	if ok := limiter.Ok(100); ok {
		t.Errorf(">States=%d: ok=%v, want=%v", 100, ok, !ok)
	}
	if limiter.StopReason() != StopStates {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopStates)
	}
}

func TestLimiterMovetime(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()

	if ok := limiter.Ok(1); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}

	time.Sleep(time.Millisecond * 101)
	if ok := limiter.Ok(1); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}
	if limiter.StopReason() != StopMovetime {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopMovetime)
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf("after Reset: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterInterrupt(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()
	limiter.SetStop(true)

	if limiter.Ok(1) {
		t.Error("Ok after SetStop(true)")
	}
	if limiter.StopReason() != StopInterrupt {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopInterrupt)
	}
}

func TestLimiterContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	limiter := NewLimiter()
	limiter.SetContext(ctx)
	limiter.Reset()

	if !limiter.Ok(1) {
		t.Error("not Ok before cancellation")
	}

	cancel()
	if limiter.Ok(1) {
		t.Error("Ok after cancellation")
	}
	if limiter.StopReason() != StopInterrupt {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopInterrupt)
	}
}

func TestStopReasonString(t *testing.T) {
	cases := map[StopReason]string{
		StopNone:      "None",
		StopInterrupt: "Interrupt",
		StopMovetime:  "Movetime",
		StopStates:    "States",
		StopSolved:    "Solved",
		StopExhausted: "Exhausted",
	}
	for reason, want := range cases {
		if reason.String() != want {
			t.Errorf("%d.String()=%q, want=%q", reason, reason.String(), want)
		}
	}
}
