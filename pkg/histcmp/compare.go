package histcmp

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
	"github.com/ukaji3/histcmp-go/pkg/histcmp/source"
)

// Renderer draws comparison images.
type Renderer interface {
	// Overlay draws 1D histograms on shared axes into a single image.
	Overlay(o *models.Overlay) error
	// ColorMap draws one 2D histogram as a filled colour map.
	ColorMap(m *models.ColorMap) error
}

// OverlayLegend is the legend position of 1D overlays, in normalized
// canvas coordinates.
var OverlayLegend = models.LegendBox{X1: 0.5, Y1: 0.65, X2: 0.88, Y2: 0.88}

// yRangeFactor is the headroom above the tallest bin of an overlay.
const yRangeFactor = 1.5

// Comparator compares the histograms of several inputs key by key.
type Comparator struct {
	// Inputs are the files to compare; the first one drives key iteration.
	Inputs []Input
	// Options configures the run.
	Options Options
	// Renderer draws the images.
	Renderer Renderer
	// Open opens an input. Nil means source.Open.
	Open func(path string) (source.File, error)
}

// New creates a Comparator using the default file backends.
func New(inputs []Input, r Renderer, opts Options) *Comparator {
	return &Comparator{
		Inputs:   inputs,
		Options:  opts,
		Renderer: r,
		Open:     source.Open,
	}
}

// Run opens every input and renders each key of the first input.
// Any open or render failure aborts the run; the returned summary covers
// the keys processed so far.
func (c *Comparator) Run() (*models.Summary, error) {
	if len(c.Inputs) > MaxInputs {
		return nil, fmt.Errorf("%d inputs: %w", len(c.Inputs), ErrTooManyInputs)
	}
	if len(c.Inputs) == 0 {
		return nil, ErrUsage
	}

	files, err := c.openAll()
	if err != nil {
		return nil, err
	}
	defer closeAll(files)

	labels := make([]string, len(c.Inputs))
	for i, in := range c.Inputs {
		labels[i] = in.Label
	}
	summary := &models.Summary{
		Normalize: c.Options.Normalize,
		Labels:    labels,
	}

	out := c.Options.stdout()
	for key := range files[0].Keys() {
		fmt.Fprintf(out, "OBJ %s\n", key)

		ks, err := c.compareKey(key, files, out)
		if err != nil {
			return summary, err
		}
		summary.Keys = append(summary.Keys, ks)
	}

	return summary, nil
}

// openAll opens every input or none.
func (c *Comparator) openAll() ([]source.File, error) {
	open := c.Open
	if open == nil {
		open = source.Open
	}

	files := make([]source.File, 0, len(c.Inputs))
	for _, in := range c.Inputs {
		f, err := open(in.Path)
		if err != nil {
			closeAll(files)
			return nil, &FileOpenError{Path: in.Path, Err: err}
		}
		files = append(files, f)
	}
	return files, nil
}

func closeAll(files []source.File) {
	for _, f := range files {
		f.Close()
	}
}

func (c *Comparator) compareKey(key string, files []source.File, out io.Writer) (models.KeySummary, error) {
	set, stats, err := c.gather(key, files, out)
	if err != nil {
		return models.KeySummary{}, err
	}

	ks := models.KeySummary{
		Key:   key,
		Kind:  set.Kind().String(),
		Files: stats,
	}

	switch set.Kind() {
	case models.Kind1D:
		file, err := c.render1D(set)
		if err != nil {
			return ks, err
		}
		ks.Outputs = []string{file}
	case models.Kind2D:
		zmax, outputs, err := c.render2D(set)
		if err != nil {
			return ks, err
		}
		ks.ZMax = zmax
		ks.Outputs = outputs
	default:
		ks.Skipped = "not a 1D or 2D histogram"
		fmt.Fprintf(out, " -- skipping %s: %s\n", key, ks.Skipped)
	}

	for _, file := range ks.Outputs {
		fmt.Fprintf(out, "Info: %s has been created\n", file)
	}
	return ks, nil
}

// gather fetches key from every file, then styles and normalizes the
// present histograms. Missing keys, unsupported objects and histograms of
// a different variant than the first file's become nil entries.
func (c *Comparator) gather(key string, files []source.File, out io.Writer) (*models.ComparisonSet, []models.FileStat, error) {
	set := &models.ComparisonSet{
		Key:     key,
		Entries: make([]*models.Histogram, len(files)),
	}
	stats := make([]models.FileStat, len(files))

	for i, f := range files {
		stats[i].Label = c.Inputs[i].Label

		h, err := f.Get(key)
		switch {
		case err == nil:
		case errors.Is(err, source.ErrKeyNotFound):
			continue
		case errors.Is(err, source.ErrUnsupportedObject):
			if i == 0 {
				return set, stats, nil
			}
			fmt.Fprintf(out, " -- %s: %v\n", f.Path(), err)
			continue
		default:
			return nil, nil, fmt.Errorf("%s: %w", f.Path(), err)
		}

		if i > 0 && h.Kind() != set.Kind() {
			fmt.Fprintf(out, " -- %s: %s is %v, expected %v\n", f.Path(), key, h.Kind(), set.Kind())
			continue
		}

		style, err := StyleFor(i)
		if err != nil {
			return nil, nil, err
		}
		h.Line = style

		stats[i].Present = true
		stats[i].Integral = h.Integral()
		if c.Options.Normalize {
			stats[i].Scaled = h.Normalize()
		}
		stats[i].Max = h.Max()

		set.Entries[i] = h
	}

	return set, stats, nil
}

func (c *Comparator) render1D(set *models.ComparisonSet) (string, error) {
	var entries []models.LegendEntry
	for i, h := range set.Entries {
		if h == nil {
			continue
		}
		entries = append(entries, models.LegendEntry{Label: c.Inputs[i].Label, Hist: h})
	}

	o := &models.Overlay{
		Key:     set.Key,
		Entries: entries,
		YMax:    yRangeFactor * set.Max(),
		Legend:  OverlayLegend,
		File:    filepath.Join(c.Options.outputDir(), OverlayName(set.Key)),
	}
	if err := c.Renderer.Overlay(o); err != nil {
		return "", &RenderError{Key: set.Key, File: o.File, Err: err}
	}
	return o.File, nil
}

// render2D draws each present histogram on its own. The shared z maximum
// is reported but not applied; each map keeps its own colour range.
func (c *Comparator) render2D(set *models.ComparisonSet) (float64, []string, error) {
	zmax := set.Max()
	first := c.Inputs[0].Label

	var outputs []string
	for i, h := range set.Entries {
		if h == nil {
			continue
		}
		label := c.Inputs[i].Label

		h.Title = strings.Join(append(strings.Split(h.Title, " "), strings.Split(label, " ")...), " ")
		h.ZTitle = "Ratio" + label + "/" + first

		m := &models.ColorMap{
			Key:   set.Key,
			Label: label,
			Hist:  h,
			File:  filepath.Join(c.Options.outputDir(), ColorMapName(set.Key, label)),
		}
		if err := c.Renderer.ColorMap(m); err != nil {
			return zmax, outputs, &RenderError{Key: set.Key, File: m.File, Err: err}
		}
		outputs = append(outputs, m.File)
	}
	return zmax, outputs, nil
}

// OverlayName returns the image name of a 1D overlay: "cmp" joined by
// underscores with the key minus its first underscore-delimited segment.
func OverlayName(key string) string {
	return plotName(append([]string{"cmp"}, keyTail(key)...)) + ".png"
}

// ColorMapName returns the image name of one file's 2D map. Spaces in the
// label become underscores.
func ColorMapName(key, label string) string {
	parts := append([]string{"nocmp2d"}, keyTail(key)...)
	parts = append(parts, strings.Split(label, " ")...)
	return plotName(parts) + ".png"
}

func keyTail(key string) []string {
	return strings.Split(key, "_")[1:]
}

func plotName(parts []string) string {
	return strings.Join(parts, "_")
}
