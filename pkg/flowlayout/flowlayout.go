// Package flowlayout computes wrapping chip/tag layouts: items are packed
// into runs along a main axis and wrap to a new run when they exceed the
// available extent.
//
// The package is pure geometry. Callers measure their items, pass the
// sizes in, and receive per-item offsets back; nothing here touches a
// rendering surface.
package flowlayout

import (
	"fmt"
	"math"

	"github.com/go-sheet/sheet/pkg/geometry"
)

// Axis is the direction items flow before wrapping.
type Axis int

const (
	// AxisHorizontal flows items left to right, wrapping into new rows.
	AxisHorizontal Axis = iota
	// AxisVertical flows items top to bottom, wrapping into new columns.
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment controls how items are positioned along the main axis within
// each run.
type Alignment int

const (
	// AlignStart places items at the start of each run.
	AlignStart Alignment = iota
	// AlignEnd places items at the end of each run.
	AlignEnd
	// AlignCenter centers items within each run.
	AlignCenter
	// AlignSpaceBetween distributes free space evenly between items, with
	// none before the first or after the last item.
	AlignSpaceBetween
	// AlignSpaceAround distributes free space evenly with half-sized
	// spaces at the ends of each run.
	AlignSpaceAround
	// AlignSpaceEvenly distributes free space evenly, including equal
	// space before the first and after the last item.
	AlignSpaceEvenly
)

// CrossAlignment controls how items sit along the cross axis within a run.
type CrossAlignment int

const (
	// CrossAlignStart places items at the start of the cross axis.
	CrossAlignStart CrossAlignment = iota
	// CrossAlignEnd places items at the end of the cross axis.
	CrossAlignEnd
	// CrossAlignCenter centers items along the cross axis of their run.
	CrossAlignCenter
)

// Config configures a flow layout pass.
type Config struct {
	// Axis is the flow direction. Horizontal when zero.
	Axis Axis
	// Alignment positions items along the main axis within runs.
	Alignment Alignment
	// CrossAlignment positions items along the cross axis within runs.
	CrossAlignment CrossAlignment
	// Spacing is the gap between items within a run.
	Spacing float64
	// RunSpacing is the gap between runs.
	RunSpacing float64
}

// Run describes one packed line of items.
type Run struct {
	// MainExtent is the total main-axis size of the run's items plus
	// spacing.
	MainExtent float64
	// CrossExtent is the largest cross-axis item size in the run.
	CrossExtent float64
	// FirstItem and Count identify the run's slice of the input.
	FirstItem int
	Count     int
}

// Result is the outcome of a layout pass.
type Result struct {
	// Size is the bounding size of all runs.
	Size geometry.Size
	// Offsets holds one top-left offset per input item.
	Offsets []geometry.Offset
	// Runs describes how items were packed into lines.
	Runs []Run
}

// Layout packs items into runs within maxMainExtent and positions them.
// Items larger than maxMainExtent occupy a run of their own and overflow
// it. maxMainExtent must be finite; the caller decides when to wrap, so an
// unbounded main axis has no meaning here.
func Layout(cfg Config, maxMainExtent float64, items []geometry.Size) Result {
	if math.IsInf(maxMainExtent, 1) || maxMainExtent == math.MaxFloat64 {
		panic("flowlayout: Layout requires a finite main extent to determine when to wrap")
	}
	if len(items) == 0 {
		return Result{}
	}

	// Phase 1: pack items into runs.
	runs := make([]Run, 0)
	var current Run
	for i, item := range items {
		itemMain := mainAxis(cfg.Axis, item)
		itemCross := crossAxis(cfg.Axis, item)

		spacing := 0.0
		if current.Count > 0 {
			spacing = cfg.Spacing
		}
		if current.Count > 0 && current.MainExtent+spacing+itemMain > maxMainExtent {
			runs = append(runs, current)
			current = Run{FirstItem: i}
			spacing = 0
		}

		current.MainExtent += spacing + itemMain
		current.CrossExtent = math.Max(current.CrossExtent, itemCross)
		current.Count++
	}
	runs = append(runs, current)

	// Phase 2: total cross extent across runs.
	totalCross := 0.0
	maxMain := 0.0
	for i, run := range runs {
		totalCross += run.CrossExtent
		if i > 0 {
			totalCross += cfg.RunSpacing
		}
		maxMain = math.Max(maxMain, run.MainExtent)
	}

	// Phase 3: position items within runs.
	offsets := make([]geometry.Offset, len(items))
	crossCursor := 0.0
	item := 0
	for _, run := range runs {
		freeMain := math.Max(0, maxMainExtent-run.MainExtent)
		itemSpacing, mainOffset := distribute(cfg.Alignment, freeMain, run.Count)

		mainCursor := mainOffset
		for i := range run.Count {
			size := items[item]
			crossOffset := crossShift(cfg.CrossAlignment, run.CrossExtent, crossAxis(cfg.Axis, size))
			offsets[item] = makeOffset(cfg.Axis, mainCursor, crossCursor+crossOffset)

			mainCursor += mainAxis(cfg.Axis, size) + itemSpacing
			if i < run.Count-1 {
				mainCursor += cfg.Spacing
			}
			item++
		}
		crossCursor += run.CrossExtent + cfg.RunSpacing
	}

	return Result{
		Size:    makeSize(cfg.Axis, maxMain, totalCross),
		Offsets: offsets,
		Runs:    runs,
	}
}

// distribute computes per-item spacing and the leading offset for the
// given alignment, free space, and item count.
func distribute(alignment Alignment, freeSpace float64, count int) (spacing, offset float64) {
	if count == 0 {
		return 0, 0
	}
	switch alignment {
	case AlignEnd:
		offset = freeSpace
	case AlignCenter:
		offset = freeSpace * 0.5
	case AlignSpaceBetween:
		if count > 1 {
			spacing = freeSpace / float64(count-1)
		}
	case AlignSpaceAround:
		spacing = freeSpace / float64(count)
		offset = spacing * 0.5
	case AlignSpaceEvenly:
		spacing = freeSpace / float64(count+1)
		offset = spacing
	}
	return
}

func crossShift(alignment CrossAlignment, runCross, itemCross float64) float64 {
	free := runCross - itemCross
	if free <= 0 {
		return 0
	}
	switch alignment {
	case CrossAlignEnd:
		return free
	case CrossAlignCenter:
		return free * 0.5
	default:
		return 0
	}
}

func mainAxis(axis Axis, size geometry.Size) float64 {
	if axis == AxisVertical {
		return size.Height
	}
	return size.Width
}

func crossAxis(axis Axis, size geometry.Size) float64 {
	if axis == AxisVertical {
		return size.Width
	}
	return size.Height
}

func makeOffset(axis Axis, main, cross float64) geometry.Offset {
	if axis == AxisVertical {
		return geometry.Offset{X: cross, Y: main}
	}
	return geometry.Offset{X: main, Y: cross}
}

func makeSize(axis Axis, main, cross float64) geometry.Size {
	if axis == AxisVertical {
		return geometry.Size{Width: cross, Height: main}
	}
	return geometry.Size{Width: main, Height: cross}
}
