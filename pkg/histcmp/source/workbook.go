package source

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go-hep.org/x/hep/hbook"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// Header tags in cell A1 of a histogram sheet.
const (
	TagH1D = "H1D"
	TagH2D = "H2D"
)

// Workbook reads histograms from an Excel workbook, one sheet per key.
//
// Row 1 of a sheet is the header:
//
//	H1D | nbins | xmin | xmax | title | xtitle | ytitle
//	H2D | nx | xmin | xmax | ny | ymin | ymax | title | xtitle | ytitle | ztitle
//
// Every following row is one fill: x, w for 1D and x, y, w for 2D.
// A missing weight counts as 1.
type Workbook struct {
	path string
	f    *excelize.File
	keys keyIndex
}

// OpenWorkbook opens an Excel workbook and indexes its sheets.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	wb := &Workbook{path: path, f: f}
	for _, name := range f.GetSheetList() {
		wb.keys.add(name)
	}
	return wb, nil
}

// Path returns the file path.
func (w *Workbook) Path() string { return w.path }

// Keys yields sheet names in workbook order.
func (w *Workbook) Keys() iter.Seq[string] { return w.keys.seq() }

// Get builds the histogram described by the sheet named key.
func (w *Workbook) Get(key string) (*models.Histogram, error) {
	if !w.keys.has(key) {
		return nil, ErrKeyNotFound
	}

	rows, err := w.f.GetRows(key)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", key, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("sheet %q has no header: %w", key, ErrUnsupportedObject)
	}

	header := rows[0]
	switch strings.ToUpper(strings.TrimSpace(header[0])) {
	case TagH1D:
		return buildH1D(key, header, rows[1:])
	case TagH2D:
		return buildH2D(key, header, rows[1:])
	default:
		return nil, fmt.Errorf("sheet %q has tag %q: %w", key, header[0], ErrUnsupportedObject)
	}
}

// Close closes the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

func buildH1D(key string, header []string, fills [][]string) (*models.Histogram, error) {
	nbins, err := headerInt(header, 1)
	if err != nil {
		return nil, headerError(key, err)
	}
	xmin, err := headerFloat(header, 2)
	if err != nil {
		return nil, headerError(key, err)
	}
	xmax, err := headerFloat(header, 3)
	if err != nil {
		return nil, headerError(key, err)
	}
	if nbins <= 0 || xmax <= xmin {
		return nil, headerError(key, fmt.Errorf("invalid binning %d [%v, %v)", nbins, xmin, xmax))
	}

	h1 := hbook.NewH1D(nbins, xmin, xmax)
	for i, row := range fills {
		vals, err := parseFloats(row, 1, 2)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", key, i+2, err)
		}
		if vals == nil {
			continue
		}
		h1.Fill(vals[0], vals[1])
	}

	h := models.NewH1D(key, h1)
	h.Title = cell(header, 4)
	h.XTitle = cell(header, 5)
	h.YTitle = cell(header, 6)
	return h, nil
}

func buildH2D(key string, header []string, fills [][]string) (*models.Histogram, error) {
	nx, err := headerInt(header, 1)
	if err != nil {
		return nil, headerError(key, err)
	}
	xmin, err := headerFloat(header, 2)
	if err != nil {
		return nil, headerError(key, err)
	}
	xmax, err := headerFloat(header, 3)
	if err != nil {
		return nil, headerError(key, err)
	}
	ny, err := headerInt(header, 4)
	if err != nil {
		return nil, headerError(key, err)
	}
	ymin, err := headerFloat(header, 5)
	if err != nil {
		return nil, headerError(key, err)
	}
	ymax, err := headerFloat(header, 6)
	if err != nil {
		return nil, headerError(key, err)
	}
	if nx <= 0 || ny <= 0 || xmax <= xmin || ymax <= ymin {
		return nil, headerError(key, fmt.Errorf("invalid binning %dx%d", nx, ny))
	}

	h2 := hbook.NewH2D(nx, xmin, xmax, ny, ymin, ymax)
	for i, row := range fills {
		vals, err := parseFloats(row, 2, 3)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", key, i+2, err)
		}
		if vals == nil {
			continue
		}
		h2.Fill(vals[0], vals[1], vals[2])
	}

	h := models.NewH2D(key, h2)
	h.Title = cell(header, 7)
	h.XTitle = cell(header, 8)
	h.YTitle = cell(header, 9)
	h.ZTitle = cell(header, 10)
	return h, nil
}

func headerError(key string, err error) error {
	return fmt.Errorf("sheet %q header: %v: %w", key, err, ErrUnsupportedObject)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func headerInt(row []string, i int) (int, error) {
	return strconv.Atoi(cell(row, i))
}

func headerFloat(row []string, i int) (float64, error) {
	return strconv.ParseFloat(cell(row, i), 64)
}

// parseFloats reads the first n cells of a fill row.
// The last value is the weight and defaults to 1 when the row has only
// required cells. A fully blank row returns nil.
func parseFloats(row []string, required, n int) ([]float64, error) {
	blank := true
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, nil
	}

	vals := make([]float64, n)
	vals[n-1] = 1
	for i := 0; i < n; i++ {
		s := cell(row, i)
		if s == "" {
			if i < required {
				return nil, fmt.Errorf("missing value in column %d", i+1)
			}
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
