// Command panzoom opens an image in a window that pans with the mouse and
// zooms with the wheel.
//
//	panzoom view photo.jpg --hud --watch
//	panzoom config > panzoom.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "panzoom",
		Short: "Pan and zoom a large image",
		Long: `panzoom shows one image in a window. Drag to pan, release to glide,
scroll to zoom around the cursor. The image always covers the window.

Keys: R or 0 resets the view, H toggles the HUD, D toggles debug logging,
Escape or Q quits.`,
		Version:      fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newConfigCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
