// Command sheetsim replays drag gestures against a detent snap controller
// for tuning calibration without an attached device.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-sheet/sheet/cmd/sheetsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !strings.HasPrefix(err.Error(), "unknown command") {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
