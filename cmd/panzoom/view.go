package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
	"github.com/phanxgames/panzoom/ebitenhost"
	"github.com/phanxgames/panzoom/internal/config"
	"github.com/phanxgames/panzoom/internal/loader"
)

type viewOptions struct {
	configPath string
	width      int
	height     int
	maxScale   float64
	debug      bool
	watch      bool
	script     string
	hud        bool
	shotDir    string
}

func newViewCommand() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view <image>",
		Short: "Open an image in a pan/zoom window",
		Long: `Opens the image at the given path (PNG, JPEG, GIF, BMP, TIFF or WebP)
in a resizable window. The view starts at the smallest scale that covers
the window.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runView(args[0], cfg, opts)
		},
	}

	addConfigFlag(cmd, &opts.configPath)
	cmd.Flags().IntVarP(&opts.width, "width", "W", 1024, "Initial window width")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 768, "Initial window height")
	cmd.Flags().Float64Var(&opts.maxScale, "max-scale", panzoom.DefaultMaxScale, "Maximum zoom scale (overrides config)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log viewer state changes to stderr (overrides config)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the image when the file changes")
	cmd.Flags().StringVar(&opts.script, "script", "", "Replay a JSON input script and exit when it ends")
	cmd.Flags().BoolVar(&opts.hud, "hud", false, "Show the FPS, scale and cursor overlay")
	cmd.Flags().StringVar(&opts.shotDir, "screenshots", "screenshots", "Directory for script screenshots")

	return cmd
}

// addConfigFlag registers --config on cmd.
func addConfigFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "config", "c", config.DefaultPath, "Path to a YAML config file")
}

// resolveConfig loads the config file and applies flags the user set
// explicitly. Flags left at their defaults never override the file.
func resolveConfig(cmd *cobra.Command, opts viewOptions) (panzoom.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return panzoom.Config{}, err
	}
	if cmd.Flags().Changed("max-scale") {
		cfg.MaxScale = opts.maxScale
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}
	if err := cfg.Validate(); err != nil {
		return panzoom.Config{}, err
	}
	return cfg, nil
}

func runView(path string, cfg panzoom.Config, opts viewOptions) error {
	if !loader.Supported(path) {
		log.Printf("⚠️  %s has an unrecognised extension, trying anyway", path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Decode in the background while the header is inspected.
	pending := loader.LoadAsync(ctx, path)
	if info, err := loader.Stat(path); err == nil {
		line := fmt.Sprintf("%s: %dx%d %s, %d bytes", filepath.Base(path), info.Width, info.Height, info.Format, info.Size)
		if info.Camera != "" {
			line += ", " + info.Camera
		}
		log.Println(line)
	}
	res := <-pending
	if res.Err != nil {
		return res.Err
	}

	gameOpts := ebitenhost.Options{
		Width:           opts.width,
		Height:          opts.height,
		HUD:             opts.hud,
		ScreenshotDir:   opts.shotDir,
		ExitOnScriptEnd: opts.script != "",
	}
	if opts.watch {
		reloads, err := loader.Watch(ctx, path, loader.DefaultDebounce)
		if err != nil {
			return err
		}
		gameOpts.Reloads = reloads
	}

	g, err := ebitenhost.NewGame(res.Image, cfg, gameOpts)
	if err != nil {
		return err
	}
	if opts.script != "" {
		runner, err := ebitenhost.LoadScriptFile(opts.script)
		if err != nil {
			return err
		}
		g.SetScript(runner)
	}

	return ebitenhost.Run(g, ebitenhost.RunConfig{
		Title:     "panzoom - " + filepath.Base(path),
		Width:     opts.width,
		Height:    opts.height,
		Resizable: true,
	})
}
