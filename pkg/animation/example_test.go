package animation_test

import (
	"fmt"

	"github.com/go-sheet/sheet/pkg/animation"
)

// This example shows how to use spring physics for gesture-driven settling.
func ExampleSpringSimulation() {
	// A fling released at 500 px/s, settling on a detent at 300px.
	sim := animation.NewSpringSimulation(
		animation.IOSSpring(),
		0,   // current extent
		500, // release velocity
		300, // target extent
	)

	// Step the simulation once per frame.
	dt := 0.016 // ~60fps
	for !sim.IsDone() {
		sim.Step(dt)
	}

	fmt.Printf("Final position: %.0f\n", sim.Position())

	// Output:
	// Final position: 300
}

// This example shows how to map controller progress onto an extent range.
func ExampleTweenFloat64() {
	extent := animation.TweenFloat64(120, 720)

	fmt.Printf("Quarter: %.0f\n", extent.Evaluate(0.25))
	fmt.Printf("Full: %.0f\n", extent.Evaluate(1))

	// Output:
	// Quarter: 270
	// Full: 720
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
