package models

// LegendEntry pairs a drawn histogram with its legend label.
type LegendEntry struct {
	// Label is the legend text.
	Label string
	// Hist is the histogram drawn for this entry.
	Hist *Histogram
}

// LegendBox is a legend position in normalized canvas coordinates.
type LegendBox struct {
	X1, Y1, X2, Y2 float64
}

// Overlay describes one image of 1D histograms drawn on shared axes.
type Overlay struct {
	// Key is the histogram key being compared.
	Key string
	// Entries are the present histograms in input-file order.
	// The first entry supplies the title and axis titles.
	Entries []LegendEntry
	// YMax is the upper bound of the visible Y range; 0 leaves it automatic.
	YMax float64
	// Legend is where the legend is placed.
	Legend LegendBox
	// File is the output image path.
	File string
}

// ColorMap describes one image of a single 2D histogram.
type ColorMap struct {
	// Key is the histogram key being drawn.
	Key string
	// Label is the legend label of the file the histogram came from.
	Label string
	// Hist is the histogram; its ZTitle labels the colour bar.
	Hist *Histogram
	// File is the output image path.
	File string
}
