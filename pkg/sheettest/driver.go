package sheettest

import (
	"time"

	"github.com/go-sheet/sheet/pkg/geometry"
	"github.com/go-sheet/sheet/pkg/gestures"
)

// PointerSink receives simulated pointer events. *panel.Presenter
// satisfies it.
type PointerSink interface {
	HandlePointer(gestures.PointerEvent)
}

// nextPointerID is incremented per gesture to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// DragGesture scripts a single-pointer vertical drag.
type DragGesture struct {
	// From is the initial contact position.
	From geometry.Offset
	// By is the total travel of the gesture.
	By geometry.Offset
	// Duration is the wall time of the gesture (default 100ms). Together
	// with By it determines the release velocity.
	Duration time.Duration
	// Frames is the number of move samples (default 10).
	Frames int
}

// Apply replays the gesture against the sink, stamping events from clk so
// velocity tracking stays deterministic. The clock is advanced by the
// gesture's duration.
func (g DragGesture) Apply(clk *FakeClock, sink PointerSink) {
	frames := g.Frames
	if frames <= 0 {
		frames = 10
	}
	duration := g.Duration
	if duration <= 0 {
		duration = 100 * time.Millisecond
	}

	id := allocPointerID()
	sink.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Phase:     gestures.PointerPhaseDown,
		Position:  g.From,
		Time:      clk.Now(),
	})

	step := geometry.Offset{X: g.By.X / float64(frames), Y: g.By.Y / float64(frames)}
	frameTime := duration / time.Duration(frames)
	position := g.From
	for range frames {
		clk.Advance(frameTime)
		position = position.Add(step)
		sink.HandlePointer(gestures.PointerEvent{
			PointerID: id,
			Phase:     gestures.PointerPhaseMove,
			Position:  position,
			Time:      clk.Now(),
		})
	}

	sink.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Phase:     gestures.PointerPhaseUp,
		Position:  position,
		Time:      clk.Now(),
	})
}

// Fling replays a fast vertical drag: travel deltaY in 50ms. Negative
// deltaY is an upward (expanding) fling.
func Fling(clk *FakeClock, sink PointerSink, deltaY float64) {
	DragGesture{
		From:     geometry.Offset{X: 100, Y: 400},
		By:       geometry.Offset{Y: deltaY},
		Duration: 50 * time.Millisecond,
	}.Apply(clk, sink)
}

// SlowDrag replays a deliberate vertical drag: travel deltaY over a full
// second, slow enough to stay under any realistic velocity threshold.
func SlowDrag(clk *FakeClock, sink PointerSink, deltaY float64) {
	DragGesture{
		From:     geometry.Offset{X: 100, Y: 400},
		By:       geometry.Offset{Y: deltaY},
		Duration: time.Second,
		Frames:   30,
	}.Apply(clk, sink)
}
