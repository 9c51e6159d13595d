// Package gestures converts host-delivered pointer events into drag
// callbacks for the panel controller.
//
// The package does not integrate with any platform gesture recognizer: the
// host forwards raw pointer down/move/up/cancel events and the
// [VerticalDragRecognizer] applies touch slop, axis locking, and velocity
// tracking before dispatching drag details.
package gestures

import (
	"fmt"
	"time"

	"github.com/go-sheet/sheet/pkg/geometry"
)

// PointerPhase identifies the stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is the initial contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is contact movement.
	PointerPhaseMove
	// PointerPhaseUp is contact release.
	PointerPhaseUp
	// PointerPhaseCancel is delivered when the host's gesture system
	// aborts the interaction (e.g., recognizer reset).
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample delivered by the host.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	Position  geometry.Offset
	// Time is when the sample was taken. A zero value falls back to the
	// wall clock; hosts and tests should stamp events for accurate
	// velocity tracking.
	Time time.Time
}

// DefaultTouchSlop is the minimum travel in logical pixels before a drag
// is recognized.
const DefaultTouchSlop = 18.0

// DragStartDetails describes the start of an accepted drag.
type DragStartDetails struct {
	Position geometry.Offset
}

// DragUpdateDetails describes pointer movement during a drag.
type DragUpdateDetails struct {
	Position geometry.Offset
	Delta    geometry.Offset
	// PrimaryDelta is the movement along the drag axis (Y for vertical).
	PrimaryDelta float64
}

// DragEndDetails describes the release ending a drag.
type DragEndDetails struct {
	Position geometry.Offset
	Velocity geometry.Offset
	// PrimaryVelocity is the velocity along the drag axis in px/s.
	PrimaryVelocity float64
}
