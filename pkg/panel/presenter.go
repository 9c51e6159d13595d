package panel

import (
	"time"

	"github.com/go-sheet/sheet/pkg/animation"
	"github.com/go-sheet/sheet/pkg/gestures"
)

// AnimationStyle selects how the presenter interpolates the display extent
// between settled detents.
type AnimationStyle int

const (
	// AnimateSpring uses a critically damped spring seeded with the
	// release velocity. This is the default.
	AnimateSpring AnimationStyle = iota
	// AnimateCurve uses a fixed-duration eased transition.
	AnimateCurve
	// AnimateNone jumps to the new extent immediately.
	AnimateNone
)

// PresenterConfig configures a Presenter.
type PresenterConfig struct {
	// Controller is the drag-snap controller to present. Required.
	Controller *DragSnapController
	// Render is invoked with the display extent whenever it changes. The
	// host draws its content at that extent; what the content is stays
	// entirely the host's business.
	Render func(displayExtent float64)
	// ShouldStartDrag is consulted with the total vertical travel once a
	// gesture exceeds slop. Hosts use it to coordinate with scrollable
	// content. Nil accepts every vertical drag.
	ShouldStartDrag func(totalDelta float64) bool

	// Style selects the settle transition. AnimateSpring when zero.
	Style AnimationStyle
	// CurveDuration is the transition length for AnimateCurve
	// (default 300ms).
	CurveDuration time.Duration
	// Curve is the easing for AnimateCurve (default SheetSettleCurve).
	Curve func(float64) float64
}

// Presenter is the thin shim between a host surface and a
// DragSnapController. It forwards pointer events into the controller
// through a vertical drag recognizer, and maps the controller's discrete
// detents onto a continuously animated display extent.
//
// The controller only ever reports settled detents; all interpolation
// lives here.
type Presenter struct {
	controller *DragSnapController
	recognizer *gestures.VerticalDragRecognizer
	render     func(float64)

	style         AnimationStyle
	curveDuration time.Duration
	curve         func(float64) float64

	displayExtent float64
	animTarget    float64
	spring        *animation.SpringSimulation
	ticker        *animation.Ticker
	curveAnim     *animation.AnimationController

	unsubscribe func()
}

// NewPresenter creates a presenter bound to cfg.Controller.
func NewPresenter(cfg PresenterConfig) *Presenter {
	p := &Presenter{
		controller:    cfg.Controller,
		render:        cfg.Render,
		style:         cfg.Style,
		curveDuration: cfg.CurveDuration,
		curve:         cfg.Curve,
	}
	if p.curveDuration <= 0 {
		p.curveDuration = 300 * time.Millisecond
	}
	if p.curve == nil {
		p.curve = animation.SheetSettleCurve
	}

	p.recognizer = &gestures.VerticalDragRecognizer{
		ShouldAccept: cfg.ShouldStartDrag,
		OnStart:      p.onDragStart,
		OnUpdate:     p.onDragUpdate,
		OnEnd:        p.onDragEnd,
		OnCancel:     p.onDragCancel,
	}

	p.displayExtent = p.controller.DisplayExtent()
	p.unsubscribe = p.controller.AddListener(p.onControllerChange)
	return p
}

// HandlePointer feeds a host pointer event into the drag recognizer.
func (p *Presenter) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		p.recognizer.AddPointer(event)
		return
	}
	p.recognizer.HandleEvent(event)
}

// SetContainerExtent pushes a host layout change to the controller and
// re-targets any running settle animation.
func (p *Presenter) SetContainerExtent(extent float64) {
	p.controller.SetContainerExtent(extent)
	if !p.controller.IsDragging() {
		p.animateTo(p.controller.DisplayExtent(), 0)
	}
}

// Controller returns the wrapped drag-snap controller.
func (p *Presenter) Controller() *DragSnapController {
	return p.controller
}

// DisplayExtent returns the extent the host should render right now,
// including any in-flight settle animation.
func (p *Presenter) DisplayExtent() float64 {
	return p.displayExtent
}

// IsAnimating reports whether a settle transition is running.
func (p *Presenter) IsAnimating() bool {
	return (p.ticker != nil && p.ticker.IsActive()) ||
		(p.curveAnim != nil && p.curveAnim.IsAnimating())
}

// Dispose stops animations and detaches from the controller. The host
// must stop forwarding pointer events after disposal.
func (p *Presenter) Dispose() {
	p.stopAnimation()
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *Presenter) onDragStart(gestures.DragStartDetails) {
	p.stopAnimation()
	p.controller.BeginDrag()
}

func (p *Presenter) onDragUpdate(d gestures.DragUpdateDetails) {
	// Downward pointer travel (positive Y) shrinks a bottom-anchored
	// panel, which is a positive drag offset.
	p.controller.DragUpdate(d.PrimaryDelta)
}

func (p *Presenter) onDragEnd(d gestures.DragEndDetails) {
	p.controller.DragEnd(d.PrimaryVelocity)
	// Seed the settle spring with the release velocity mapped into
	// extent space (up is positive extent growth).
	p.animateTo(p.controller.DisplayExtent(), -d.PrimaryVelocity)
}

func (p *Presenter) onDragCancel() {
	p.controller.CancelDrag()
	p.animateTo(p.controller.DisplayExtent(), 0)
}

// onControllerChange tracks the controller while dragging and re-targets
// the settle animation on programmatic transitions.
func (p *Presenter) onControllerChange() {
	if p.controller.IsDragging() {
		p.setDisplayExtent(p.controller.DisplayExtent())
		return
	}
	target := p.controller.DisplayExtent()
	if p.IsAnimating() {
		if target != p.animTarget {
			p.animateTo(target, 0)
		}
	} else if p.displayExtent != target {
		p.animateTo(target, 0)
	}
}

func (p *Presenter) animateTo(target, velocity float64) {
	p.stopAnimation()
	p.animTarget = target
	if p.displayExtent == target {
		return
	}

	switch p.style {
	case AnimateNone:
		p.setDisplayExtent(target)
	case AnimateCurve:
		p.startCurve(target)
	default:
		p.startSpring(target, velocity)
	}
}

func (p *Presenter) startSpring(target, velocity float64) {
	p.spring = animation.NewSpringSimulation(
		animation.IOSSpring(),
		p.displayExtent,
		velocity,
		target,
	)

	lastTime := animation.Now()
	p.ticker = animation.NewTicker(func(time.Duration) {
		if p.spring == nil {
			p.ticker.Stop()
			return
		}
		now := animation.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// Cap dt so a stalled frame loop cannot jump the panel.
		const maxDt = 0.032
		if dt > maxDt {
			dt = maxDt
		}

		done := p.spring.Step(dt)
		p.setDisplayExtent(p.spring.Position())
		if done {
			p.ticker.Stop()
		}
	})
	p.ticker.Start()
}

func (p *Presenter) startCurve(target float64) {
	tween := animation.TweenFloat64(p.displayExtent, target)
	p.curveAnim = animation.NewAnimationController(p.curveDuration)
	p.curveAnim.Curve = p.curve
	p.curveAnim.AddListener(func() {
		p.setDisplayExtent(tween.Transform(p.curveAnim))
	})
	p.curveAnim.Forward()
}

func (p *Presenter) stopAnimation() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
	p.spring = nil
	if p.curveAnim != nil {
		p.curveAnim.Dispose()
		p.curveAnim = nil
	}
}

func (p *Presenter) setDisplayExtent(extent float64) {
	if p.displayExtent == extent {
		return
	}
	p.displayExtent = extent
	if p.render != nil {
		p.render(extent)
	}
}
