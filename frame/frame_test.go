package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockClock struct {
	time  time.Time
	slept time.Duration
}

func (c *mockClock) Now() time.Time { return c.time }

func (c *mockClock) Sleep(d time.Duration) {
	c.slept = d
	c.time = c.time.Add(d)
}

func (c *mockClock) Advance(d time.Duration) {
	c.time = c.time.Add(d)
}

func newMockClock() *mockClock {
	return &mockClock{time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestFirstFrameHasZeroDelta(t *testing.T) {
	clock := newMockClock()
	timer := NewTimer(0, 0.1, WithClock(clock))

	assert.Equal(t, float32(0), timer.BeginFrame())
	clock.Advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, timer.BeginFrame(), 1e-6)
}

func TestDeltaIsClamped(t *testing.T) {
	clock := newMockClock()
	timer := NewTimer(0, 0.05, WithClock(clock))
	timer.BeginFrame()

	clock.Advance(3 * time.Second)
	assert.Equal(t, float32(0.05), timer.BeginFrame())

	clock.Advance(-time.Second)
	assert.Equal(t, float32(0), timer.BeginFrame(), "clock going backwards")
}

func TestNoClampWithoutMaxDelta(t *testing.T) {
	clock := newMockClock()
	timer := NewTimer(0, 0, WithClock(clock))
	timer.BeginFrame()
	clock.Advance(2 * time.Second)
	assert.InDelta(t, 2, timer.BeginFrame(), 1e-6)
}

func TestEndFrameSleepsOutPeriod(t *testing.T) {
	clock := newMockClock()
	timer := NewTimer(10, 0.1, WithClock(clock))

	timer.BeginFrame()
	clock.Advance(40 * time.Millisecond)
	timer.EndFrame()
	assert.Equal(t, 60*time.Millisecond, clock.slept)

	clock.slept = 0
	timer.BeginFrame()
	clock.Advance(150 * time.Millisecond)
	timer.EndFrame()
	assert.Equal(t, time.Duration(0), clock.slept, "late frames do not sleep")
}

func TestUnlimitedNeverSleeps(t *testing.T) {
	clock := newMockClock()
	timer := NewTimer(0, 0.1, WithClock(clock))
	timer.BeginFrame()
	timer.EndFrame()
	assert.Equal(t, time.Duration(0), clock.slept)
}

func TestFrameRateCallback(t *testing.T) {
	clock := newMockClock()
	var got []float32
	timer := NewTimer(0, 0.1, WithClock(clock), WithCallback(func(fps float32) {
		got = append(got, fps)
	}))

	for i := 0; i < 50; i++ {
		timer.BeginFrame()
		clock.Advance(20 * time.Millisecond)
		timer.EndFrame()
	}

	if assert.Len(t, got, 1) {
		assert.InDelta(t, 50, got[0], 1e-3)
	}
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	timer := NewTimer(0, 0.1, WithClock(nil), WithCallback(nil), WithLogger(nil))
	timer.refTime = timer.refTime.Add(-2 * time.Second)

	assert.NotPanics(t, func() {
		timer.BeginFrame()
		timer.EndFrame()
	})
	assert.Equal(t, 0, timer.frames, "rate was reported and the count reset")
}

func TestLoggerReportsRate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	clock := newMockClock()
	timer := NewTimer(0, 0.1, WithClock(clock), WithLogger(zap.New(core)))

	timer.BeginFrame()
	clock.Advance(time.Second)
	timer.EndFrame()

	entries := logs.FilterMessage("Frame rate").All()
	if assert.Len(t, entries, 1) {
		assert.InDelta(t, 1, entries[0].ContextMap()["fps"], 1e-6)
	}
}
