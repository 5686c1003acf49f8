// Package frame measures the variable time step of the game loop and,
// optionally, caps the frame rate.
package frame

import (
	"time"

	"go.uber.org/zap"
)

// Callback receives the measured frame rate about once a second.
type Callback func(fps float32)

type Clock interface {
	Now() time.Time
	Sleep(time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Timer hands out the delta time of each frame. Deltas are clamped to
// maxDelta so a stall (window drag, breakpoint) does not tunnel the ball
// through bricks.
type Timer struct {
	clock    Clock
	period   time.Duration // zero means unlimited
	maxDelta float32

	last     time.Time
	started  bool
	next     time.Time
	refTime  time.Time
	frames   int
	callback Callback
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithCallback sets the frame rate callback.
func WithCallback(cb Callback) Option {
	return func(t *Timer) {
		if cb != nil {
			t.callback = cb
		}
	}
}

// WithLogger reports the frame rate at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(t *Timer) {
		if l == nil {
			return
		}
		t.callback = func(fps float32) {
			l.Debug("Frame rate", zap.Float32("fps", fps))
		}
	}
}

// NewTimer returns a timer limiting the loop to targetFps frames per
// second. targetFps <= 0 disables the limit.
func NewTimer(targetFps int, maxDelta float32, opts ...Option) *Timer {
	t := &Timer{
		clock:    systemClock{},
		maxDelta: maxDelta,
		callback: func(float32) {},
	}
	if targetFps > 0 {
		t.period = time.Second / time.Duration(targetFps)
	}
	for _, opt := range opts {
		opt(t)
	}
	t.refTime = t.clock.Now()
	return t
}

// BeginFrame returns the seconds elapsed since the previous BeginFrame.
// The first frame has a delta of zero.
func (t *Timer) BeginFrame() float32 {
	now := t.clock.Now()
	t.next = now.Add(t.period)

	var dt float32
	if t.started {
		dt = float32(now.Sub(t.last).Seconds())
	}
	t.last = now
	t.started = true

	if dt < 0 {
		dt = 0
	}
	if t.maxDelta > 0 && dt > t.maxDelta {
		dt = t.maxDelta
	}
	return dt
}

// EndFrame counts the frame, reports the rate once per second and sleeps
// out the rest of the frame period.
func (t *Timer) EndFrame() {
	now := t.clock.Now()
	t.frames++
	if delta := now.Sub(t.refTime); delta >= time.Second {
		t.callback(float32(t.frames) / float32(delta.Seconds()))
		t.refTime = now
		t.frames = 0
	}
	if t.period > 0 && t.next.After(now) {
		t.clock.Sleep(t.next.Sub(now))
	}
}
