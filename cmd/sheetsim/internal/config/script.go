package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-sheet/sheet/pkg/detent"
	"gopkg.in/yaml.v3"
)

// Script describes a replayable drag session.
type Script struct {
	// Container is the available extent in px.
	Container float64 `yaml:"container"`
	// Detents lists the positions, e.g. [small, medium, fraction:0.7].
	Detents []string `yaml:"detents"`
	// Initial names the starting detent. Empty selects the default.
	Initial string `yaml:"initial,omitempty"`
	// Drags are replayed in order.
	Drags []DragStep `yaml:"drags"`
}

// DragStep is a single drag gesture: a finger travel and release velocity.
type DragStep struct {
	// Offset is the finger travel in px, positive toward smaller extents.
	Offset float64 `yaml:"offset"`
	// Velocity is the release velocity in px/s, same sign convention.
	Velocity float64 `yaml:"velocity"`
}

// LoadScript reads a drag script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	if s.Container <= 0 {
		return nil, fmt.Errorf("script %s: container must be positive, got %g", path, s.Container)
	}

	return &s, nil
}

// ParseDetent converts a detent name into a detent value. Recognized forms
// are "small", "medium", "large", "fraction:F" and "fixed:H".
func ParseDetent(name string) (detent.Detent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small":
		return detent.Small, nil
	case "medium":
		return detent.Medium, nil
	case "large":
		return detent.Large, nil
	}

	kind, arg, ok := strings.Cut(name, ":")
	if ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return detent.Detent{}, fmt.Errorf("invalid detent %q: %w", name, err)
		}
		switch strings.ToLower(strings.TrimSpace(kind)) {
		case "fraction":
			return detent.Fraction(v), nil
		case "fixed":
			return detent.Fixed(v), nil
		}
	}

	return detent.Detent{}, fmt.Errorf("unknown detent %q", name)
}

// ParseDetents converts a list of detent names.
func ParseDetents(names []string) ([]detent.Detent, error) {
	detents := make([]detent.Detent, 0, len(names))
	for _, name := range names {
		d, err := ParseDetent(name)
		if err != nil {
			return nil, err
		}
		detents = append(detents, d)
	}
	return detents, nil
}
