package cmd

import (
	"fmt"

	"github.com/go-sheet/sheet/cmd/sheetsim/internal/config"
	"github.com/go-sheet/sheet/pkg/detent"
	"github.com/go-sheet/sheet/pkg/panel"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay a drag script and print settle traces",
		Long: `Replay a YAML drag script against a snap controller.

Each drag step applies a finger travel and release velocity, then the
resulting settle target is printed. Positive offsets and velocities
point toward smaller extents (finger moving down).

Tuning constants are read from sheet.yaml at the project root when
present; otherwise the library defaults apply.

Script format:

  container: 800
  detents: [small, medium, large]
  initial: medium
  drags:
    - offset: 250
      velocity: 50
    - offset: -30
      velocity: -600`,
		Usage: "sheetsim run <script.yaml>",
		Run:   runScript,
	})
}

func runScript(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a script path, got %d arguments", len(args))
	}

	script, err := config.LoadScript(args[0])
	if err != nil {
		return err
	}

	tuning := loadTuning()

	detents, err := config.ParseDetents(script.Detents)
	if err != nil {
		return err
	}

	cfg := panel.Config{
		Detents:           detent.NewSet(detents...),
		VelocityThreshold: tuning.VelocityThreshold,
		VelocityDamping:   tuning.VelocityDamping,
	}
	if script.Initial != "" {
		initial, err := config.ParseDetent(script.Initial)
		if err != nil {
			return err
		}
		cfg.InitialDetent = initial
	}

	ctrl := panel.NewDragSnapController(cfg)
	ctrl.SetContainerExtent(script.Container)

	fmt.Printf("Container %g px, detents %s\n", script.Container, ctrl.Detents())
	fmt.Printf("Start at %s (%.1f px)\n\n", ctrl.CurrentDetent(),
		ctrl.CurrentDetent().ResolvedExtent(script.Container))

	for i, step := range script.Drags {
		from := ctrl.CurrentDetent()
		ctrl.BeginDrag()
		ctrl.DragUpdate(step.Offset)
		ctrl.DragEnd(step.Velocity)
		to := ctrl.CurrentDetent()

		fmt.Printf("drag %d: offset %+.0f px, velocity %+.0f px/s\n", i+1, step.Offset, step.Velocity)
		fmt.Printf("        %s (%.1f px) -> %s (%.1f px)\n",
			from, from.ResolvedExtent(script.Container),
			to, to.ResolvedExtent(script.Container))
	}

	return nil
}

// loadTuning resolves the optional sheet.yaml profile. Missing project
// metadata is not an error; the library defaults apply.
func loadTuning() config.TuningConfig {
	root, err := config.FindProjectRoot()
	if err != nil {
		return config.TuningConfig{}
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		fmt.Printf("Warning: ignoring tuning profile: %v\n", err)
		return config.TuningConfig{}
	}

	if resolved.Tuning != (config.TuningConfig{}) {
		fmt.Printf("Using tuning profile from %s (module %s)\n", root, resolved.ModulePath)
	}
	return resolved.Tuning
}
