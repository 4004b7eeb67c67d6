// Package histcmp compares histograms stored in several files and writes
// one comparison image per histogram key.
package histcmp

import (
	"io"
	"os"
)

// DefaultSize is the default square canvas size in pixels.
const DefaultSize = 1500

// Options configures a comparison run.
type Options struct {
	// Normalize rescales every histogram with a nonzero integral to unit integral.
	Normalize bool
	// OutputDir is the directory images are written to.
	OutputDir string
	// Stdout receives progress messages. Nil means os.Stdout.
	Stdout io.Writer
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		Stdout:    os.Stdout,
	}
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o Options) outputDir() string {
	if o.OutputDir == "" {
		return "."
	}
	return o.OutputDir
}
