package panel_test

import (
	"testing"
	"time"

	"github.com/go-sheet/sheet/pkg/detent"
	"github.com/go-sheet/sheet/pkg/panel"
	sheettest "github.com/go-sheet/sheet/pkg/sheettest"
)

func newTestPresenter(t *testing.T, cfg panel.PresenterConfig) (*panel.Presenter, *sheettest.FakeClock) {
	t.Helper()
	clk := sheettest.NewFakeClock()
	t.Cleanup(clk.Install())

	if cfg.Controller == nil {
		cfg.Controller = panel.NewDragSnapController(panel.Config{
			Detents:       detent.NewSet(detent.Small, detent.Medium, detent.Large),
			InitialDetent: detent.Medium,
		})
	}
	p := panel.NewPresenter(cfg)
	t.Cleanup(p.Dispose)
	p.SetContainerExtent(800)
	clk.PumpUntilIdle(1000) // settle the opening transition
	return p, clk
}

func TestPresenter_FlingExpandsToNextDetent(t *testing.T) {
	p, clk := newTestPresenter(t, panel.PresenterConfig{})

	sheettest.Fling(clk, p, -100) // fast upward fling

	if got := p.Controller().CurrentDetent(); got != detent.Large {
		t.Fatalf("after upward fling: %s, want large", got)
	}

	clk.PumpUntilIdle(1000)
	if got := p.DisplayExtent(); got != 720 {
		t.Errorf("settled DisplayExtent = %f, want 720", got)
	}
}

func TestPresenter_SlowDragSnapsToNearest(t *testing.T) {
	p, clk := newTestPresenter(t, panel.PresenterConfig{})

	sheettest.SlowDrag(clk, p, 250) // deliberate downward drag

	if got := p.Controller().CurrentDetent(); got != detent.Small {
		t.Fatalf("after slow downward drag: %s, want small", got)
	}

	clk.PumpUntilIdle(1000)
	if got := p.DisplayExtent(); got != 120 {
		t.Errorf("settled DisplayExtent = %f, want 120", got)
	}
}

func TestPresenter_DragTracksPointer(t *testing.T) {
	var rendered []float64
	p, clk := newTestPresenter(t, panel.PresenterConfig{
		Render: func(extent float64) { rendered = append(rendered, extent) },
	})
	rendered = rendered[:0]

	sheettest.SlowDrag(clk, p, 100)

	if len(rendered) == 0 {
		t.Fatal("render callback never fired during the drag")
	}
	// The panel follows the pointer downward before the settle animation
	// brings it back.
	min := rendered[0]
	for _, e := range rendered {
		if e < min {
			min = e
		}
	}
	if min >= 400 {
		t.Errorf("display extent never dropped below the settled 400, min = %f", min)
	}
}

func TestPresenter_ProgrammaticTransitionAnimates(t *testing.T) {
	p, clk := newTestPresenter(t, panel.PresenterConfig{})

	p.Controller().ExpandToNext()
	if !p.IsAnimating() {
		t.Fatal("programmatic transition should start a settle animation")
	}

	// Mid-animation the extent is strictly between the detents.
	clk.Pump(32 * time.Millisecond)
	mid := p.DisplayExtent()
	if mid <= 400 || mid >= 720 {
		t.Errorf("mid-animation extent = %f, want between 400 and 720", mid)
	}

	clk.PumpUntilIdle(1000)
	if got := p.DisplayExtent(); got != 720 {
		t.Errorf("settled extent = %f, want 720", got)
	}
	if p.IsAnimating() {
		t.Error("animation should be finished")
	}
}

func TestPresenter_CurveStyleSettles(t *testing.T) {
	p, clk := newTestPresenter(t, panel.PresenterConfig{
		Style:         panel.AnimateCurve,
		CurveDuration: 200 * time.Millisecond,
	})

	p.Controller().CollapseToPrevious()
	clk.PumpUntilIdle(1000)

	if got := p.DisplayExtent(); got != 120 {
		t.Errorf("curve settle extent = %f, want 120", got)
	}
}

func TestPresenter_NoAnimationStyleJumps(t *testing.T) {
	p, _ := newTestPresenter(t, panel.PresenterConfig{Style: panel.AnimateNone})

	p.Controller().ExpandToNext()
	if p.IsAnimating() {
		t.Error("AnimateNone should not animate")
	}
	if got := p.DisplayExtent(); got != 720 {
		t.Errorf("DisplayExtent = %f, want 720 immediately", got)
	}
}

func TestPresenter_ShouldStartDragVeto(t *testing.T) {
	p, clk := newTestPresenter(t, panel.PresenterConfig{
		ShouldStartDrag: func(totalDelta float64) bool {
			// Scrolled content consumes downward drags.
			return totalDelta < 0
		},
	})

	sheettest.SlowDrag(clk, p, 250)
	if got := p.Controller().CurrentDetent(); got != detent.Medium {
		t.Errorf("vetoed drag settled on %s, want medium unchanged", got)
	}

	sheettest.Fling(clk, p, -100)
	if got := p.Controller().CurrentDetent(); got != detent.Large {
		t.Errorf("accepted upward drag settled on %s, want large", got)
	}
}

func TestPresenter_ContainerResizeRetargets(t *testing.T) {
	p, clk := newTestPresenter(t, panel.PresenterConfig{Style: panel.AnimateNone})

	if got := p.DisplayExtent(); got != 400 {
		t.Fatalf("initial DisplayExtent = %f, want 400", got)
	}

	p.SetContainerExtent(600)
	clk.PumpUntilIdle(1000)
	if got := p.DisplayExtent(); got != 300 {
		t.Errorf("DisplayExtent after resize = %f, want 300", got)
	}
}
