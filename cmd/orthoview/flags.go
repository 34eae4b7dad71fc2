package main

import (
	"flag"
	"io"
	"orthocam/internal/config"
)

// applyFlags parses command-line options into the global viewer settings.
// Options left unset keep the current settings.
func applyFlags(args []string, output io.Writer) error {
	width, height := config.GetWindowSize()
	near, far := config.GetClipPlanes()

	fs := flag.NewFlagSet("orthoview", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&width, "width", width, "window width in pixels")
	fs.IntVar(&height, "height", height, "window height in pixels")
	fs.Float64Var(&near, "near", near, "initial near clip plane")
	fs.Float64Var(&far, "far", far, "initial far clip plane")
	clipStep := fs.Float64("clip-step", config.GetClipStep(), "clip plane change per key press")
	slowFrame := fs.Duration("slow-frame", config.GetSlowFrameThreshold(), "log frames slower than this")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.SetWindowSize(width, height)
	config.SetClipPlanes(near, far)
	config.SetClipStep(*clipStep)
	config.SetSlowFrameThreshold(*slowFrame)
	return nil
}
