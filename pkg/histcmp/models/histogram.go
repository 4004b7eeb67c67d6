// Package models defines data structures for histogram comparison.
package models

import (
	"go-hep.org/x/hep/hbook"
)

// Kind identifies which histogram variant a Histogram holds.
type Kind int

const (
	// KindUnknown is the zero Kind; no render path accepts it.
	KindUnknown Kind = iota
	// Kind1D is a one-dimensional histogram, overlaid across files.
	Kind1D
	// Kind2D is a two-dimensional histogram, tiled one image per file.
	Kind2D
)

func (k Kind) String() string {
	switch k {
	case Kind1D:
		return "1D"
	case Kind2D:
		return "2D"
	default:
		return "unknown"
	}
}

// Histogram is a named 1D or 2D histogram with display attributes.
// Exactly one of the backing hbook histograms is set.
type Histogram struct {
	// Name is the key the histogram was stored under.
	Name string
	// Title is the plot title.
	Title string
	// XTitle is the X-axis title.
	XTitle string
	// YTitle is the Y-axis title.
	YTitle string
	// ZTitle is the colour-scale title (2D only).
	ZTitle string
	// Line is the line styling applied when drawing.
	Line LineStyle

	h1 *hbook.H1D
	h2 *hbook.H2D
}

// NewH1D wraps a one-dimensional hbook histogram.
func NewH1D(name string, h *hbook.H1D) *Histogram {
	return &Histogram{Name: name, Title: annTitle(h.Ann), h1: h}
}

// NewH2D wraps a two-dimensional hbook histogram.
func NewH2D(name string, h *hbook.H2D) *Histogram {
	return &Histogram{Name: name, Title: annTitle(h.Ann), h2: h}
}

func annTitle(ann hbook.Annotation) string {
	if v, ok := ann["title"].(string); ok {
		return v
	}
	return ""
}

// Kind reports the variant held by h.
func (h *Histogram) Kind() Kind {
	switch {
	case h.h1 != nil:
		return Kind1D
	case h.h2 != nil:
		return Kind2D
	default:
		return KindUnknown
	}
}

// H1D returns the backing 1D histogram, or nil for other kinds.
func (h *Histogram) H1D() *hbook.H1D { return h.h1 }

// H2D returns the backing 2D histogram, or nil for other kinds.
func (h *Histogram) H2D() *hbook.H2D { return h.h2 }

// Integral returns the sum of all in-range bin contents.
// Underflow and overflow are excluded.
func (h *Histogram) Integral() float64 {
	sum := 0.0
	switch h.Kind() {
	case Kind1D:
		for _, b := range h.h1.Binning.Bins {
			sum += b.SumW()
		}
	case Kind2D:
		for _, b := range h.h2.Binning.Bins {
			sum += b.SumW()
		}
	}
	return sum
}

// Max returns the largest bin content, or 0 for an empty histogram.
func (h *Histogram) Max() float64 {
	var (
		maxv  float64
		first = true
	)
	visit := func(v float64) {
		if first || v > maxv {
			maxv = v
			first = false
		}
	}
	switch h.Kind() {
	case Kind1D:
		for _, b := range h.h1.Binning.Bins {
			visit(b.SumW())
		}
	case Kind2D:
		for _, b := range h.h2.Binning.Bins {
			visit(b.SumW())
		}
	}
	return maxv
}

// Scale multiplies every bin content (and its error) by factor.
func (h *Histogram) Scale(factor float64) {
	switch h.Kind() {
	case Kind1D:
		h.h1.Scale(factor)
	case Kind2D:
		scaleH2D(h.h2, factor)
	}
}

// scaleH2D scales every 2D distribution of h, outflows included.
// hbook.H2D has no Scale method of its own.
func scaleH2D(h *hbook.H2D, f float64) {
	for i := range h.Binning.Bins {
		scaleDist2D(&h.Binning.Bins[i].Dist, f)
	}
	for i := range h.Binning.Outflows {
		scaleDist2D(&h.Binning.Outflows[i], f)
	}
	scaleDist2D(&h.Binning.Dist, f)
}

func scaleDist2D(d *hbook.Dist2D, f float64) {
	f2 := f * f
	for _, axis := range []*hbook.Dist1D{&d.X, &d.Y} {
		axis.Dist.SumW *= f
		axis.Dist.SumW2 *= f2
		axis.Stats.SumWX *= f
		axis.Stats.SumWX2 *= f2
	}
	d.Stats.SumWXY *= f
}

// Normalize rescales h to unit integral.
// It reports false and leaves h untouched when the integral is zero.
func (h *Histogram) Normalize() bool {
	integral := h.Integral()
	if integral == 0 {
		return false
	}
	h.Scale(1 / integral)
	return true
}
