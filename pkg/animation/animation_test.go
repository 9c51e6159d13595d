package animation

import (
	"math"
	"sync"
	"testing"
	"time"
)

// testClock is a minimal controllable clock for driving tickers.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSpringSimulation_SettlesAtTarget(t *testing.T) {
	sim := NewSpringSimulation(IOSSpring(), 0, 500, 300)

	steps := 0
	for !sim.IsDone() && steps < 10000 {
		sim.Step(0.016)
		steps++
	}

	if !sim.IsDone() {
		t.Fatal("spring never settled")
	}
	if sim.Position() != 300 {
		t.Errorf("settled position = %f, want exactly 300", sim.Position())
	}
	if sim.Velocity() != 0 {
		t.Errorf("settled velocity = %f, want 0", sim.Velocity())
	}
}

func TestSpringSimulation_CriticallyDampedDoesNotOscillate(t *testing.T) {
	// Starting above the target with no velocity, a critically damped
	// spring approaches from one side only.
	sim := NewSpringSimulation(IOSSpring(), 500, 0, 200)
	for !sim.IsDone() {
		sim.Step(0.016)
		// Allow 1px of numerical slack from the discrete integration.
		if sim.Position() < 199 {
			t.Fatalf("critically damped spring overshot to %f", sim.Position())
		}
	}
}

func TestSpringSimulation_BouncyOvershoots(t *testing.T) {
	sim := NewSpringSimulation(BouncySpring(), 0, 0, 200)
	overshot := false
	for !sim.IsDone() {
		sim.Step(0.016)
		if sim.Position() > 200+distanceTolerance {
			overshot = true
		}
	}
	if !overshot {
		t.Error("underdamped spring should overshoot the target")
	}
}

func TestSpringSimulation_ZeroDtIsNoOp(t *testing.T) {
	sim := NewSpringSimulation(IOSSpring(), 100, 0, 200)
	if sim.Step(0) {
		t.Error("Step(0) should not settle")
	}
	if sim.Position() != 100 {
		t.Errorf("Step(0) moved position to %f", sim.Position())
	}
}

func TestAnimationController_ReachesTarget(t *testing.T) {
	clk := newTestClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	c := NewAnimationController(200 * time.Millisecond)
	defer c.Dispose()

	var fired int
	c.AddListener(func() { fired++ })

	c.Forward()
	if !c.IsAnimating() {
		t.Fatal("controller should be animating after Forward")
	}

	for range 25 {
		clk.advance(10 * time.Millisecond)
		StepTickers()
	}

	if c.Value != 1.0 {
		t.Errorf("Value = %f, want 1.0", c.Value)
	}
	if !c.IsCompleted() {
		t.Errorf("Status = %s, want completed", c.Status())
	}
	if fired == 0 {
		t.Error("listener never fired")
	}
}

func TestAnimationController_CurveApplied(t *testing.T) {
	clk := newTestClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.Curve = EaseOut

	c.Forward()
	clk.advance(50 * time.Millisecond)
	StepTickers()

	// EaseOut front-loads progress: at t=0.5 the value is well past 0.5.
	if c.Value <= 0.5 {
		t.Errorf("eased Value at halfway = %f, want > 0.5", c.Value)
	}
}

func TestCubicBezier_Endpoints(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	if got := curve(0); got != 0 {
		t.Errorf("curve(0) = %f, want 0", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("curve(1) = %f, want 1", got)
	}
	mid := curve(0.5)
	if math.Abs(mid-0.78) > 0.01 {
		t.Errorf("curve(0.5) = %f, want ~0.78", mid)
	}
}

func TestTweenFloat64(t *testing.T) {
	tw := TweenFloat64(100, 300)
	if got := tw.Evaluate(0); got != 100 {
		t.Errorf("Evaluate(0) = %f, want 100", got)
	}
	if got := tw.Evaluate(0.5); got != 200 {
		t.Errorf("Evaluate(0.5) = %f, want 200", got)
	}
	if got := tw.Evaluate(1); got != 300 {
		t.Errorf("Evaluate(1) = %f, want 300", got)
	}
}
