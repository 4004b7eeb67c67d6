package histcmp

import (
	"fmt"
	"image/color"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// MaxInputs is the number of palette entries, and so the number of files
// a single comparison can hold.
const MaxInputs = 5

// LineWidth is the line width in pixels of every drawn histogram.
const LineWidth = 4

var lineColors = [MaxInputs]color.RGBA{
	{R: 255, A: 255},         // red
	{B: 255, A: 255},         // blue
	{R: 204, G: 102, A: 255}, // orange
	{R: 153, B: 153, A: 255}, // magenta
	{G: 153, A: 255},         // green
}

var dashStyles = [MaxInputs]models.DashStyle{
	models.Solid,
	models.LongDash,
	models.Dashed,
	models.Dotted,
	models.DashDot,
}

// LineColors returns the per-position line colours.
func LineColors() [MaxInputs]color.RGBA { return lineColors }

// DashStyles returns the per-position dash styles.
func DashStyles() [MaxInputs]models.DashStyle { return dashStyles }

// StyleFor returns the line style of the input at position i.
func StyleFor(i int) (models.LineStyle, error) {
	if i < 0 || i >= MaxInputs {
		return models.LineStyle{}, fmt.Errorf("input %d: %w", i, ErrTooManyInputs)
	}
	return models.LineStyle{
		Color: lineColors[i],
		Width: LineWidth,
		Dash:  dashStyles[i],
	}, nil
}
