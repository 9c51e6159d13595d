package detent

import (
	"math"
	"sort"
	"strings"
)

// sortReferenceExtent is the fixed container size used to order a set's
// detents. Using a stable reference instead of the live container keeps the
// relative order of small/medium/large from flipping as the host resizes.
const sortReferenceExtent = 1000

// DefaultDetents is used when a set is constructed empty.
var DefaultDetents = []Detent{Medium, Large}

// Set is an ordered collection of detents, sorted ascending by resolved
// extent at a fixed reference size. A Set is never empty: constructing one
// without detents falls back to [DefaultDetents]. Duplicate detents are
// permitted and keep their insertion order among equal extents.
//
// The zero Set is not valid; use [NewSet].
type Set struct {
	detents []Detent
}

// NewSet creates a set from the given detents, ordered ascending by their
// extent at the reference size. An empty argument list yields the default
// {medium, large} set.
func NewSet(detents ...Detent) Set {
	if len(detents) == 0 {
		detents = DefaultDetents
	}
	sorted := make([]Detent, len(detents))
	copy(sorted, detents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ResolvedExtent(sortReferenceExtent) < sorted[j].ResolvedExtent(sortReferenceExtent)
	})
	return Set{detents: sorted}
}

// Len returns the number of detents in the set.
func (s Set) Len() int {
	return len(s.ordered())
}

// SortedAscending returns the detents in ascending order of resolved
// extent. The returned slice is a copy.
func (s Set) SortedAscending() []Detent {
	ordered := s.ordered()
	out := make([]Detent, len(ordered))
	copy(out, ordered)
	return out
}

// Smallest returns the detent with the lowest resolved extent.
func (s Set) Smallest() Detent {
	return s.ordered()[0]
}

// Largest returns the detent with the highest resolved extent.
func (s Set) Largest() Detent {
	ordered := s.ordered()
	return ordered[len(ordered)-1]
}

// Contains reports whether d is a member of the set.
func (s Set) Contains(d Detent) bool {
	return s.indexOf(d) >= 0
}

// Nearest returns the detent whose resolved extent is closest to the given
// extent for the given container size. Ties are broken by the first detent
// encountered in ascending order. Nearest never fails: a degenerate
// container (extent zero) makes all distances equal and the first detent
// wins.
func (s Set) Nearest(extent, containerExtent float64) Detent {
	ordered := s.ordered()
	nearest := ordered[0]
	minDist := math.Abs(extent - nearest.ResolvedExtent(containerExtent))
	for _, d := range ordered[1:] {
		dist := math.Abs(extent - d.ResolvedExtent(containerExtent))
		if dist < minDist {
			minDist = dist
			nearest = d
		}
	}
	return nearest
}

// Next returns the detent one step above d in ascending order. It clamps
// at the boundary: requesting Next from the largest detent returns the
// largest detent unchanged.
func (s Set) Next(after Detent) Detent {
	ordered := s.ordered()
	if i := s.indexOf(after); i >= 0 {
		if i+1 < len(ordered) {
			return ordered[i+1]
		}
		return ordered[len(ordered)-1]
	}
	// Not a member: step to the first detent above its reference extent.
	return s.nextAbove(after.ResolvedExtent(sortReferenceExtent))
}

// Previous returns the detent one step below d in ascending order,
// clamping at the smallest detent.
func (s Set) Previous(before Detent) Detent {
	ordered := s.ordered()
	if i := s.indexOf(before); i >= 0 {
		if i > 0 {
			return ordered[i-1]
		}
		return ordered[0]
	}
	return s.previousBelow(before.ResolvedExtent(sortReferenceExtent))
}

// CycleNext returns the detent one step above d, wrapping to the smallest
// detent past the largest. Used for tap-to-cycle handle interactions.
func (s Set) CycleNext(after Detent) Detent {
	ordered := s.ordered()
	if i := s.indexOf(after); i >= 0 {
		return ordered[(i+1)%len(ordered)]
	}
	if after.ResolvedExtent(sortReferenceExtent) >= s.Largest().ResolvedExtent(sortReferenceExtent)-1 {
		return ordered[0]
	}
	return s.nextAbove(after.ResolvedExtent(sortReferenceExtent))
}

// String returns a human-readable representation of the set.
func (s Set) String() string {
	names := make([]string, 0, len(s.ordered()))
	for _, d := range s.ordered() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// ordered returns the backing slice, substituting the defaults for a zero
// Set so queries never observe an empty collection.
func (s Set) ordered() []Detent {
	if len(s.detents) == 0 {
		return DefaultDetents
	}
	return s.detents
}

// indexOf returns the position of the first detent equal to d, or -1.
func (s Set) indexOf(d Detent) int {
	for i, member := range s.ordered() {
		if member == d {
			return i
		}
	}
	return -1
}

// nextAbove returns the first detent whose reference extent exceeds the
// given one, or the largest detent when none does.
func (s Set) nextAbove(referenceExtent float64) Detent {
	ordered := s.ordered()
	for _, d := range ordered {
		if d.ResolvedExtent(sortReferenceExtent) > referenceExtent+1 {
			return d
		}
	}
	return ordered[len(ordered)-1]
}

// previousBelow returns the last detent whose reference extent is below the
// given one, or the smallest detent when none is.
func (s Set) previousBelow(referenceExtent float64) Detent {
	ordered := s.ordered()
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].ResolvedExtent(sortReferenceExtent) < referenceExtent-1 {
			return ordered[i]
		}
	}
	return ordered[0]
}
