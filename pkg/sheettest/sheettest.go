// Package sheettest provides deterministic test helpers for panel code:
// a controllable clock for the animation system and a scripted pointer
// driver for drag gestures.
//
// Since helpers here are used from _test files alongside the standard
// testing package, import it with an alias:
//
//	import sheettest "github.com/go-sheet/sheet/pkg/sheettest"
package sheettest

import (
	"sync"
	"time"

	"github.com/go-sheet/sheet/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Install makes the fake clock the animation time source and returns a
// cleanup function restoring the previous clock.
func (c *FakeClock) Install() func() {
	prev := animation.SetClock(c)
	return func() { animation.SetClock(prev) }
}

// Pump advances the clock by d and steps all active tickers, simulating
// one host frame.
func (c *FakeClock) Pump(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}

// PumpUntilIdle pumps 16ms frames until no tickers remain active, up to
// maxFrames. Returns the number of frames pumped.
func (c *FakeClock) PumpUntilIdle(maxFrames int) int {
	frames := 0
	for animation.HasActiveTickers() && frames < maxFrames {
		c.Pump(16 * time.Millisecond)
		frames++
	}
	return frames
}
