package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sheet/sheet/cmd/sheetsim/internal/config"
	"github.com/go-sheet/sheet/pkg/detent"
)

func init() {
	RegisterCommand(&Command{
		Name:  "detents",
		Short: "Print resolved extents for a container size",
		Long: `Print the resolved extent of each detent at a given container size,
in snap order (smallest first).

Detents are named small, medium, large, fraction:F or fixed:H.`,
		Usage: "sheetsim detents [--container PX] [--set NAME,NAME,...]",
		Run:   runDetents,
	})
}

func runDetents(args []string) error {
	container := 800.0
	names := []string{"small", "medium", "large"}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--container":
			if i+1 >= len(args) {
				return fmt.Errorf("--container requires a size in px")
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return fmt.Errorf("invalid container size %q: %w", args[i+1], err)
			}
			container = v
			i++
		case strings.HasPrefix(arg, "--container="):
			v, err := strconv.ParseFloat(strings.TrimPrefix(arg, "--container="), 64)
			if err != nil {
				return fmt.Errorf("invalid container size %q: %w", arg, err)
			}
			container = v
		case arg == "--set":
			if i+1 >= len(args) {
				return fmt.Errorf("--set requires a comma-separated detent list")
			}
			names = strings.Split(args[i+1], ",")
			i++
		case strings.HasPrefix(arg, "--set="):
			names = strings.Split(strings.TrimPrefix(arg, "--set="), ",")
		default:
			return fmt.Errorf("unknown argument %q", arg)
		}
	}

	if container <= 0 {
		return fmt.Errorf("container size must be positive, got %g", container)
	}

	parsed, err := config.ParseDetents(names)
	if err != nil {
		return err
	}

	set := detent.NewSet(parsed...)
	fmt.Printf("Container %g px:\n", container)
	for _, d := range set.SortedAscending() {
		fmt.Printf("  %-14s %8.1f px\n", d, d.ResolvedExtent(container))
	}

	return nil
}
