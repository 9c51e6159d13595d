// Package panel implements detent-based positioning for draggable panels:
// a drag-snap controller that converts gesture deltas and release velocity
// into discrete detent transitions, and a presenter that maps controller
// state onto an animated display extent.
package panel

import "github.com/go-sheet/sheet/pkg/detent"

// Default tuning constants. Both were calibrated against touch input;
// trackpad or stylus hosts can override them per Config (or load a profile
// with the sheetsim tool).
const (
	// DefaultVelocityThreshold is the release speed (px/s) above which a
	// drag snaps in its direction of travel instead of to the nearest
	// detent.
	DefaultVelocityThreshold = 500.0
	// DefaultVelocityDamping weights the release velocity when projecting
	// the rest position for nearest-detent snapping. A predictive
	// heuristic, not physics.
	DefaultVelocityDamping = 0.2
)

// Config configures a DragSnapController. The zero value gets the default
// detent set {medium, large}, the medium initial detent, and the default
// tuning constants.
type Config struct {
	// Detents are the rest positions the panel can settle at. An empty
	// set falls back to {medium, large}.
	Detents detent.Set
	// InitialDetent is the settled position at construction. When it is
	// not a member of the resolved set, the controller starts at medium
	// if present, else at the smallest detent.
	InitialDetent detent.Detent
	// VelocityThreshold is the directional-snap cutoff in px/s.
	// Zero or negative selects DefaultVelocityThreshold.
	VelocityThreshold float64
	// VelocityDamping weights velocity in the rest-position projection.
	// Zero or negative selects DefaultVelocityDamping.
	VelocityDamping float64
}

// normalizeConfig fills in zero values with defaults and resolves the
// initial detent against the set.
func normalizeConfig(cfg Config) Config {
	cfg.Detents = detent.NewSet(cfg.Detents.SortedAscending()...)
	if cfg.VelocityThreshold <= 0 {
		cfg.VelocityThreshold = DefaultVelocityThreshold
	}
	if cfg.VelocityDamping <= 0 {
		cfg.VelocityDamping = DefaultVelocityDamping
	}
	if !cfg.Detents.Contains(cfg.InitialDetent) {
		if cfg.Detents.Contains(detent.Medium) {
			cfg.InitialDetent = detent.Medium
		} else {
			cfg.InitialDetent = cfg.Detents.Smallest()
		}
	}
	return cfg
}
