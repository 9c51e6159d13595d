package gestures

import (
	"math"
	"time"

	"github.com/go-sheet/sheet/pkg/geometry"
)

// VerticalDragRecognizer recognizes vertical drags from raw pointer events
// and can conditionally accept or reject them based on the drag direction
// and context. Conditional acceptance enables content-aware dragging where
// the panel decides whether to handle a gesture or let it pass through to
// scrollable content.
//
// Feed PointerPhaseDown events to [VerticalDragRecognizer.AddPointer] and
// everything else to [VerticalDragRecognizer.HandleEvent]. The recognizer
// tracks one pointer at a time.
type VerticalDragRecognizer struct {
	// ShouldAccept is called once the drag exceeds slop, with the total
	// vertical travel so far. Returning false rejects the gesture.
	ShouldAccept func(totalDelta float64) bool
	OnStart      func(DragStartDetails)
	OnUpdate     func(DragUpdateDetails)
	OnEnd        func(DragEndDetails)
	OnCancel     func()

	// Slop overrides DefaultTouchSlop when positive.
	Slop float64

	pointer  int64           // current pointer being tracked
	tracking bool            // true between down and up/cancel
	start    geometry.Offset // initial touch position
	last     geometry.Offset // most recent touch position
	lastTime time.Time       // timestamp of last sample (for velocity)
	velocity float64         // smoothed vertical velocity in px/s
	accepted bool            // true once the drag is recognized
	rejected bool            // true if the gesture was rejected
	started  bool            // true after OnStart has fired
}

// AddPointer begins tracking a pointer from its down event.
func (r *VerticalDragRecognizer) AddPointer(event PointerEvent) {
	r.pointer = event.PointerID
	r.tracking = true
	r.start = event.Position
	r.last = event.Position
	r.lastTime = eventTime(event)
	r.velocity = 0
	r.accepted = false
	r.rejected = false
	r.started = false
}

// HandleEvent processes a move, up, or cancel event for the tracked pointer.
func (r *VerticalDragRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.handleUp(event)
	case PointerPhaseCancel:
		r.handleCancel()
	}
}

// IsActive reports whether an accepted drag is in progress.
func (r *VerticalDragRecognizer) IsActive() bool {
	return r.tracking && r.accepted
}

// handleMove decides acceptance once slop is exceeded and tracks velocity
// for fling detection.
func (r *VerticalDragRecognizer) handleMove(event PointerEvent) {
	now := eventTime(event)
	dt := now.Sub(r.lastTime).Seconds()

	total := event.Position.Sub(r.start)
	primary := math.Abs(total.Y)
	orthogonal := math.Abs(total.X)

	if !r.accepted {
		slop := r.Slop
		if slop <= 0 {
			slop = DefaultTouchSlop
		}
		if primary > slop && primary >= orthogonal {
			// Vertical movement dominant: ask the callback whether to accept.
			shouldAccept := true
			if r.ShouldAccept != nil {
				shouldAccept = r.ShouldAccept(total.Y)
			}
			if shouldAccept {
				r.accepted = true
				r.ensureStarted()
			} else {
				r.rejected = true
				return
			}
		} else if orthogonal > slop {
			// Horizontal movement dominant: likely a horizontal scroll.
			r.rejected = true
			return
		}
	}

	// Exponential smoothing keeps fling detection stable across jittery
	// pointer sampling.
	delta := event.Position.Sub(r.last)
	if dt > 0 {
		inst := delta.Y / dt
		r.velocity = r.velocity*0.8 + inst*0.2
	}

	if r.accepted && r.OnUpdate != nil {
		r.OnUpdate(DragUpdateDetails{
			Position:     event.Position,
			Delta:        delta,
			PrimaryDelta: delta.Y,
		})
	}

	r.last = event.Position
	r.lastTime = now
}

func (r *VerticalDragRecognizer) handleUp(event PointerEvent) {
	r.tracking = false
	if !r.accepted {
		return
	}
	if r.OnEnd != nil {
		r.OnEnd(DragEndDetails{
			Position:        event.Position,
			Velocity:        geometry.Offset{Y: r.velocity},
			PrimaryVelocity: r.velocity,
		})
	}
}

func (r *VerticalDragRecognizer) handleCancel() {
	if r.accepted && r.OnCancel != nil {
		r.OnCancel()
	}
	r.tracking = false
	r.rejected = true
}

func (r *VerticalDragRecognizer) ensureStarted() {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: r.start})
	}
}

func eventTime(event PointerEvent) time.Time {
	if !event.Time.IsZero() {
		return event.Time
	}
	return time.Now()
}
