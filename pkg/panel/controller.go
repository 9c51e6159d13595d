package panel

import (
	"math"

	"github.com/go-sheet/sheet/pkg/detent"
)

// DragSnapController owns a panel's settled detent and in-flight drag
// offset, and decides which detent to snap to when a drag ends.
//
// The controller is a synchronous state machine with two states: settled,
// and dragging with a live offset. It performs no background work and is
// not safe for concurrent use: it is owned and mutated exclusively by the
// UI-thread-bound presenter that wraps it.
//
// The snap decision is two-phase. A release faster than the velocity
// threshold snaps exactly one step in the direction of travel, regardless
// of position: a quick flick always advances or retreats even when it only
// covered a fraction of the distance. A slower release snaps to whichever
// detent is nearest the velocity-weighted projection of the rest position.
type DragSnapController struct {
	detents           detent.Set
	velocityThreshold float64
	velocityDamping   float64

	containerExtent float64
	current         detent.Detent
	dragOrigin      detent.Detent // settled detent when the drag began
	liveOffset      float64       // positive = dragged toward smaller extents
	dragging        bool

	listeners       map[int]func()
	settleListeners map[int]func(detent.Detent)
	nextListener    int
}

// NewDragSnapController creates a controller from the given configuration.
func NewDragSnapController(cfg Config) *DragSnapController {
	cfg = normalizeConfig(cfg)
	return &DragSnapController{
		detents:           cfg.Detents,
		velocityThreshold: cfg.VelocityThreshold,
		velocityDamping:   cfg.VelocityDamping,
		current:           cfg.InitialDetent,
		listeners:         make(map[int]func()),
		settleListeners:   make(map[int]func(detent.Detent)),
	}
}

// Detents returns the controller's detent set.
func (c *DragSnapController) Detents() detent.Set {
	return c.detents
}

// CurrentDetent returns the settled detent. It changes only when a drag
// settles or on a programmatic transition.
func (c *DragSnapController) CurrentDetent() detent.Detent {
	return c.current
}

// LiveDragOffset returns the in-flight drag offset. It is nonzero only
// while a drag is active and resets to zero on release.
func (c *DragSnapController) LiveDragOffset() float64 {
	return c.liveOffset
}

// IsDragging reports whether a drag gesture is active.
func (c *DragSnapController) IsDragging() bool {
	return c.dragging
}

// ContainerExtent returns the host container size last pushed in.
func (c *DragSnapController) ContainerExtent() float64 {
	return c.containerExtent
}

// SetContainerExtent records the host container size. Called by the
// presenter when the host layout changes; the controller never measures
// anything itself.
func (c *DragSnapController) SetContainerExtent(extent float64) {
	if extent < 0 {
		extent = 0
	}
	if c.containerExtent == extent {
		return
	}
	c.containerExtent = extent
	c.notify()
}

// BeginDrag enters the dragging state with a zero offset. Beginning a drag
// while one is active restarts the offset without settling.
func (c *DragSnapController) BeginDrag() {
	c.dragging = true
	c.dragOrigin = c.current
	c.liveOffset = 0
	c.notify()
}

// DragUpdate accumulates a gesture delta into the live offset. Positive
// deltas drag toward smaller extents (downward for a bottom-anchored
// panel). The offset is not clamped; display clamping is the presenter's
// concern.
func (c *DragSnapController) DragUpdate(delta float64) {
	if !c.dragging {
		return
	}
	c.liveOffset += delta
	c.notify()
}

// DragEnd leaves the dragging state and settles on a detent chosen from
// the release velocity (px/s, positive = toward smaller extents) and the
// accumulated offset.
func (c *DragSnapController) DragEnd(velocity float64) {
	if !c.dragging {
		return
	}
	target := c.findTargetDetent(velocity)
	c.dragging = false
	c.liveOffset = 0
	c.settle(target)
}

// CancelDrag aborts an in-flight drag, reverting to the detent that was
// settled when the drag began. Hosts map gesture-recognizer cancellation
// onto this; it is a no-op outside a drag.
func (c *DragSnapController) CancelDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.liveOffset = 0
	c.settle(c.dragOrigin)
}

// ExpandToNext settles one detent larger, clamping at the largest.
func (c *DragSnapController) ExpandToNext() {
	c.settle(c.detents.Next(c.current))
}

// CollapseToPrevious settles one detent smaller, clamping at the smallest.
func (c *DragSnapController) CollapseToPrevious() {
	c.settle(c.detents.Previous(c.current))
}

// CycleToNext settles one detent larger, wrapping to the smallest past the
// largest. Used for tap-to-cycle handle interactions.
func (c *DragSnapController) CycleToNext() {
	c.settle(c.detents.CycleNext(c.current))
}

// JumpTo settles directly on the given detent. A detent outside the set
// settles on the nearest member instead.
func (c *DragSnapController) JumpTo(d detent.Detent) {
	if !c.detents.Contains(d) {
		d = c.detents.Nearest(d.ResolvedExtent(c.containerExtent), c.containerExtent)
	}
	c.settle(d)
}

// DisplayExtent returns the extent the presenter should render: the
// settled detent's resolved extent offset by the live drag, clamped to
// [half the smallest detent, 95% of the container].
func (c *DragSnapController) DisplayExtent() float64 {
	raw := c.current.ResolvedExtent(c.containerExtent) - c.liveOffset
	min := 0.5 * c.detents.Smallest().ResolvedExtent(c.containerExtent)
	max := 0.95 * c.containerExtent
	if max < min {
		max = min
	}
	return clampFloat(raw, min, max)
}

// AddListener registers a callback invoked after every state change
// (container updates, drag progress, settles). Returns an unsubscribe
// function.
func (c *DragSnapController) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddSettleListener registers a callback invoked when the controller
// commits to a detent. Returns an unsubscribe function.
func (c *DragSnapController) AddSettleListener(fn func(detent.Detent)) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextListener
	c.nextListener++
	c.settleListeners[id] = fn
	return func() {
		delete(c.settleListeners, id)
	}
}

// findTargetDetent implements the two-phase snap policy for a release with
// the given velocity.
func (c *DragSnapController) findTargetDetent(velocity float64) detent.Detent {
	// Fast release: snap exactly one step in the direction of travel.
	// The projection is ignored entirely so a flick never skips detents.
	if math.Abs(velocity) > c.velocityThreshold {
		if velocity < 0 {
			return c.detents.Next(c.current)
		}
		return c.detents.Previous(c.current)
	}

	// Slow release: snap to the detent nearest the projected rest
	// position. The damping factor is a tuned constant.
	projected := c.dragOrigin.ResolvedExtent(c.containerExtent) - c.liveOffset - velocity*c.velocityDamping
	return c.detents.Nearest(projected, c.containerExtent)
}

func (c *DragSnapController) settle(d detent.Detent) {
	changed := d != c.current
	c.current = d
	c.notify()
	if changed {
		for _, fn := range c.settleListeners {
			fn(d)
		}
	}
}

func (c *DragSnapController) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}

// clampFloat constrains v to the range [min, max].
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
