package models

import "image/color"

// DashStyle is a numbered line style, using the numbering of the
// analysis framework the input files come from.
type DashStyle int

const (
	// Solid is an unbroken line.
	Solid DashStyle = 1
	// Dashed is a line of short dashes.
	Dashed DashStyle = 2
	// Dotted is a dotted line.
	Dotted DashStyle = 3
	// DashDot alternates dashes and dots.
	DashDot DashStyle = 4
	// LongDash is a line of long dashes.
	LongDash DashStyle = 9
)

// Pattern returns the on/off dash lengths in pixels; nil means solid.
func (s DashStyle) Pattern() []float64 {
	switch s {
	case Dashed:
		return []float64{12, 12}
	case Dotted:
		return []float64{4, 8}
	case DashDot:
		return []float64{12, 16, 4, 16}
	case LongDash:
		return []float64{40, 20}
	default:
		return nil
	}
}

// LineStyle holds the line attributes of a drawn histogram.
type LineStyle struct {
	// Color is the line colour.
	Color color.RGBA
	// Width is the line width in pixels.
	Width int
	// Dash is the dash style.
	Dash DashStyle
}
