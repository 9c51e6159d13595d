// Package detent defines the rest positions a draggable panel can settle at.
//
// A [Detent] is a named rule for computing a target extent (the height of a
// bottom-anchored panel) from the size of its container. A [Set] is an
// ordered collection of detents that answers nearest/next/previous queries
// for the snap logic in the panel package.
package detent

import "fmt"

// Kind identifies the sizing rule of a detent.
type Kind int

const (
	// KindSmall resolves to max(120, containerExtent*0.15).
	KindSmall Kind = iota
	// KindMedium resolves to half the container extent.
	KindMedium
	// KindLarge resolves to 90% of the container extent.
	KindLarge
	// KindFraction resolves to a fraction of the container extent,
	// clamped to [0.1, 1.0].
	KindFraction
	// KindFixed resolves to an absolute extent, capped at 95% of the
	// container extent.
	KindFixed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSmall:
		return "small"
	case KindMedium:
		return "medium"
	case KindLarge:
		return "large"
	case KindFraction:
		return "fraction"
	case KindFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Detent is an immutable rule for a target rest extent. Detents are
// comparable value types: two detents are equal when they have the same
// kind and parameter.
type Detent struct {
	kind  Kind
	value float64
}

// Common detent presets.
var (
	// Small is a compact peek position: max(120, containerExtent*0.15).
	Small = Detent{kind: KindSmall}
	// Medium is half the container extent.
	Medium = Detent{kind: KindMedium}
	// Large is 90% of the container extent.
	Large = Detent{kind: KindLarge}
)

// Fraction creates a detent at the given fraction of the container extent.
// The fraction is clamped to [0.1, 1.0] at resolution time.
func Fraction(f float64) Detent {
	return Detent{kind: KindFraction, value: f}
}

// Fixed creates a detent at an absolute extent in logical pixels. The
// extent is capped at 95% of the container at resolution time.
func Fixed(extent float64) Detent {
	return Detent{kind: KindFixed, value: extent}
}

// Kind returns the detent's sizing rule.
func (d Detent) Kind() Kind {
	return d.kind
}

// Value returns the parameter for fraction and fixed detents. It is zero
// for the named presets.
func (d Detent) Value() float64 {
	return d.value
}

// String returns a human-readable representation of the detent.
func (d Detent) String() string {
	switch d.kind {
	case KindFraction:
		return fmt.Sprintf("fraction(%g)", d.value)
	case KindFixed:
		return fmt.Sprintf("fixed(%g)", d.value)
	default:
		return d.kind.String()
	}
}

// ResolvedExtent computes the absolute extent this detent maps to for the
// given container extent. The result always lies in [0, containerExtent].
// There is no failure mode: out-of-range parameters are clamped.
func (d Detent) ResolvedExtent(containerExtent float64) float64 {
	if containerExtent < 0 {
		containerExtent = 0
	}
	var extent float64
	switch d.kind {
	case KindSmall:
		extent = 120
		if scaled := containerExtent * 0.15; scaled > extent {
			extent = scaled
		}
	case KindMedium:
		extent = containerExtent * 0.5
	case KindLarge:
		extent = containerExtent * 0.9
	case KindFraction:
		extent = containerExtent * clampFloat(d.value, 0.1, 1.0)
	case KindFixed:
		extent = d.value
		if cap := containerExtent * 0.95; extent > cap {
			extent = cap
		}
	}
	return clampFloat(extent, 0, containerExtent)
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
