package detent

import "testing"

func TestNewSet_EmptyFallsBack(t *testing.T) {
	s := NewSet()
	ordered := s.SortedAscending()
	if len(ordered) != 2 {
		t.Fatalf("Expected 2 detents, got %d", len(ordered))
	}
	if ordered[0] != Medium {
		t.Errorf("Expected first default detent to be medium, got %s", ordered[0])
	}
	if ordered[1] != Large {
		t.Errorf("Expected second default detent to be large, got %s", ordered[1])
	}
}

func TestNewSet_SortsAscending(t *testing.T) {
	s := NewSet(Large, Small, Medium)
	ordered := s.SortedAscending()
	if ordered[0] != Small || ordered[1] != Medium || ordered[2] != Large {
		t.Errorf("Expected [small medium large], got %v", ordered)
	}
}

func TestNewSet_OrderingUsesReferenceExtent(t *testing.T) {
	// At tiny container sizes Small's 120px floor would resolve above
	// Medium, but ordering must not depend on the live container.
	s := NewSet(Medium, Small, Large)
	ordered := s.SortedAscending()
	if ordered[0] != Small {
		t.Errorf("Expected small first regardless of container size, got %s", ordered[0])
	}

	// Queries at different container sizes see the same order.
	for _, container := range []float64{100, 800, 2000} {
		if got := s.Next(Small); got != Medium {
			t.Errorf("container %f: Next(small) = %s, want medium", container, got)
		}
	}
}

func TestSet_DuplicatesKeptInInsertionOrder(t *testing.T) {
	a := Fraction(0.5)
	b := Fraction(0.5)
	s := NewSet(a, Fixed(100), b)
	ordered := s.SortedAscending()
	if len(ordered) != 3 {
		t.Fatalf("Expected duplicates to be kept, got %d detents", len(ordered))
	}
	if ordered[1] != a || ordered[2] != b {
		t.Errorf("Expected stable order among equal extents, got %v", ordered)
	}
}

func TestSet_Nearest(t *testing.T) {
	s := NewSet(Small, Medium, Large)
	const container = 800.0 // resolves to 120, 400, 720

	tests := []struct {
		extent   float64
		expected Detent
	}{
		{0, Small},
		{200, Small},
		{300, Medium},
		{450, Medium},
		{600, Large},
		{1000, Large},
	}
	for _, tt := range tests {
		if got := s.Nearest(tt.extent, container); got != tt.expected {
			t.Errorf("Nearest(%f) = %s, want %s", tt.extent, got, tt.expected)
		}
	}
}

func TestSet_NearestTieBreaksAscending(t *testing.T) {
	s := NewSet(Fraction(0.25), Fraction(0.75))
	// 400 is equidistant from 200 and 600: the first in ascending order wins.
	if got := s.Nearest(400, 800); got != Fraction(0.25) {
		t.Errorf("Nearest tie = %s, want fraction(0.25)", got)
	}
}

func TestSet_NearestZeroContainer(t *testing.T) {
	s := NewSet(Small, Medium, Large)
	// All extents resolve to 0: the first detent wins.
	if got := s.Nearest(0, 0); got != Small {
		t.Errorf("Nearest with zero container = %s, want small", got)
	}
}

func TestSet_NextPreviousClampAtBoundaries(t *testing.T) {
	s := NewSet(Small, Medium, Large)

	if got := s.Next(Small); got != Medium {
		t.Errorf("Next(small) = %s, want medium", got)
	}
	if got := s.Next(Large); got != Large {
		t.Errorf("Next(large) = %s, want large (no wraparound)", got)
	}
	if got := s.Previous(Large); got != Medium {
		t.Errorf("Previous(large) = %s, want medium", got)
	}
	if got := s.Previous(Small); got != Small {
		t.Errorf("Previous(small) = %s, want small (no wraparound)", got)
	}
}

func TestSet_CycleNextWraps(t *testing.T) {
	s := NewSet(Small, Medium, Large)
	if got := s.CycleNext(Small); got != Medium {
		t.Errorf("CycleNext(small) = %s, want medium", got)
	}
	if got := s.CycleNext(Large); got != Small {
		t.Errorf("CycleNext(large) = %s, want small (wraps)", got)
	}
}

func TestSet_SingleMember(t *testing.T) {
	only := Fraction(0.6)
	s := NewSet(only)
	if got := s.Next(only); got != only {
		t.Errorf("Next on single-member set = %s, want %s", got, only)
	}
	if got := s.Previous(only); got != only {
		t.Errorf("Previous on single-member set = %s, want %s", got, only)
	}
	if got := s.CycleNext(only); got != only {
		t.Errorf("CycleNext on single-member set = %s, want %s", got, only)
	}
	if got := s.Nearest(9999, 800); got != only {
		t.Errorf("Nearest on single-member set = %s, want %s", got, only)
	}
}

func TestSet_NonMemberQueriesUsePosition(t *testing.T) {
	s := NewSet(Small, Large)
	// Medium is not in the set; Next steps to the first detent above it.
	if got := s.Next(Medium); got != Large {
		t.Errorf("Next(medium) on {small, large} = %s, want large", got)
	}
	if got := s.Previous(Medium); got != Small {
		t.Errorf("Previous(medium) on {small, large} = %s, want small", got)
	}
}

func TestSet_SmallestLargest(t *testing.T) {
	s := NewSet(Medium, Fixed(150), Large)
	if got := s.Smallest(); got != Fixed(150) {
		t.Errorf("Smallest() = %s, want fixed(150)", got)
	}
	if got := s.Largest(); got != Large {
		t.Errorf("Largest() = %s, want large", got)
	}
}

func TestSet_Contains(t *testing.T) {
	s := NewSet(Small, Fraction(0.4))
	if !s.Contains(Fraction(0.4)) {
		t.Error("Contains(fraction(0.4)) should be true")
	}
	if s.Contains(Medium) {
		t.Error("Contains(medium) should be false")
	}
}

func TestSet_ZeroValueBehavesAsDefault(t *testing.T) {
	var s Set
	if s.Len() != 2 {
		t.Fatalf("zero Set should expose the defaults, got %d detents", s.Len())
	}
	if got := s.Smallest(); got != Medium {
		t.Errorf("zero Set Smallest() = %s, want medium", got)
	}
}
