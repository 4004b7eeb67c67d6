// Package render draws comparison images as PNG files.
package render

import (
	"errors"
	"os"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// DPI is the resolution images are rendered at.
const DPI = 96

// Fractions of the canvas reserved outside the frame, matching the
// default frame of the analysis framework's canvases.
const (
	frameRight = 0.9
	frameTop   = 0.9
	// colorBarWidth is the right margin of 2D maps, holding the colour bar.
	colorBarWidth = 0.17
	// leftPadding is blank space left of the Y title, on top of the room
	// the axis reserves for its labels.
	leftPadding = 0.05
)

const paletteColors = 255

// ErrNothingToDraw indicates an overlay with no entries.
var ErrNothingToDraw = errors.New("nothing to draw")

// PNG renders square PNG images.
type PNG struct {
	// Size is the side of the canvas in pixels.
	Size int
}

// New returns a PNG renderer with the given canvas side in pixels.
func New(size int) *PNG {
	return &PNG{Size: size}
}

// Overlay draws every entry with error bars on shared axes.
func (r *PNG) Overlay(o *models.Overlay) error {
	if len(o.Entries) == 0 {
		return ErrNothingToDraw
	}

	p := hplot.New()
	first := o.Entries[0].Hist
	p.Title.Text = first.Title
	p.X.Label.Text = first.XTitle
	p.Y.Label.Text = first.YTitle

	for _, e := range o.Entries {
		h := hplot.NewH1D(e.Hist.H1D(), hplot.WithYErrBars(true))
		h.LineStyle = r.lineStyle(e.Hist.Line)
		if h.YErrs != nil {
			h.YErrs.LineStyle = r.lineStyle(e.Hist.Line)
			h.YErrs.LineStyle.Dashes = nil
		}
		p.Add(h)
		p.Legend.Add(e.Label, h)
	}

	if o.YMax > 0 {
		p.Y.Min = 0
		p.Y.Max = o.YMax
	}

	side := r.side()
	p.Legend.Top = o.Legend.Y1+o.Legend.Y2 > 1
	p.Legend.Left = o.Legend.X1+o.Legend.X2 < 1
	if p.Legend.Left {
		p.Legend.XOffs = side * vg.Length(o.Legend.X1-(1-frameRight))
	} else {
		p.Legend.XOffs = -side * vg.Length(frameRight-o.Legend.X2)
	}
	if p.Legend.Top {
		p.Legend.YOffs = -side * vg.Length(frameTop-o.Legend.Y2)
	} else {
		p.Legend.YOffs = side * vg.Length(o.Legend.Y1-(1-frameTop))
	}

	return r.save(o.File, func(dc draw.Canvas) {
		p.Draw(frame(dc, side, 0))
	})
}

// ColorMap draws a 2D histogram as a filled colour map with a colour bar
// titled by the histogram's ZTitle. The colour range spans the
// histogram's own minimum and maximum.
func (r *PNG) ColorMap(m *models.ColorMap) error {
	h2 := m.Hist.H2D()
	if h2 == nil {
		return ErrNothingToDraw
	}

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(0)
	cm.SetMax(1)

	hm := hplot.NewH2D(h2, cm.Palette(paletteColors))
	zmin, zmax := hm.HeatMap.Min, hm.HeatMap.Max
	if zmax <= zmin {
		zmax = zmin + 1
		hm.HeatMap.Max = zmax
	}
	cm.SetMax(zmax)
	cm.SetMin(zmin)

	p := hplot.New()
	p.Title.Text = m.Hist.Title
	p.X.Label.Text = m.Hist.XTitle
	p.Y.Label.Text = m.Hist.YTitle
	p.Add(hm)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: paletteColors})
	bar.HideX()
	bar.Y.Label.Text = m.Hist.ZTitle

	side := r.side()
	barWidth := side * colorBarWidth
	return r.save(m.File, func(dc draw.Canvas) {
		p.Draw(frame(dc, side, barWidth))
		bar.Draw(draw.Crop(dc, side-barWidth, 0, 0, 0))
	})
}

// frame returns the part of a canvas of the given side left for the plot,
// after the left padding and right reserved width are taken off.
func frame(dc draw.Canvas, side, right vg.Length) draw.Canvas {
	return draw.Crop(dc, side*leftPadding, -right, 0, 0)
}

func (r *PNG) side() vg.Length {
	return pixels(r.Size)
}

func (r *PNG) lineStyle(ls models.LineStyle) draw.LineStyle {
	style := draw.LineStyle{
		Color: ls.Color,
		Width: pixels(ls.Width),
	}
	for _, d := range ls.Dash.Pattern() {
		style.Dashes = append(style.Dashes, vg.Length(d)*vg.Inch/DPI)
	}
	return style
}

func (r *PNG) save(file string, paint func(dc draw.Canvas)) error {
	side := r.side()
	img := vgimg.NewWith(vgimg.UseWH(side, side), vgimg.UseDPI(DPI))
	paint(draw.New(img))

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// pixels converts a pixel count at DPI to a vg length.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / DPI
}
