package solver

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            // stopped by the caller, via SetStop or context cancellation
	StopMovetime             // time budget spent
	StopStates               // state budget spent
	StopSolved               // an exact match was popped
	StopExhausted            // the queue emptied without an exact match
)

func (sr StopReason) String() string {
	switch sr {
	case StopInterrupt:
		return "Interrupt"
	case StopMovetime:
		return "Movetime"
	case StopStates:
		return "States"
	case StopSolved:
		return "Solved"
	case StopExhausted:
		return "Exhausted"
	}
	return "None"
}

// Limiter decides, once per loop iteration, whether the search may keep
// going. The stop flag may be set from another goroutine.
type Limiter struct {
	limits *Limits
	Timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on search setup
func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

// Get elapsed time in ms (from the last 'Reset' call)
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

// Ok reports whether the search may continue, and records the stop
// reason when it may not.
func (l *Limiter) Ok(popped uint32) bool {
	if l.Stop() {
		l.reason = StopInterrupt
		return false
	}
	if l.limits.Infinite {
		return true
	}
	if l.Timer.IsEnd() {
		l.reason = StopMovetime
		return false
	}
	if popped >= l.limits.States {
		l.reason = StopStates
		return false
	}
	return true
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// setReason records terminal engine outcomes (Solved, Exhausted).
func (l *Limiter) setReason(reason StopReason) {
	l.reason = reason
}
