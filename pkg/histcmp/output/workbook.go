package output

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// SummarySheet is the sheet WriteWorkbook writes to.
const SummarySheet = "summary"

var summaryHeader = []interface{}{
	"key", "kind", "label", "present", "integral", "max", "scaled", "zmax", "outputs", "skipped",
}

// WriteWorkbook writes a run summary as an xlsx workbook with one row per
// key and file.
func WriteWorkbook(s *models.Summary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeader); err != nil {
		return err
	}

	row := 2
	for _, k := range s.Keys {
		outputs := strings.Join(k.Outputs, ",")
		files := k.Files
		if len(files) == 0 {
			files = []models.FileStat{{}}
		}
		for _, fs := range files {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{
				k.Key, k.Kind, fs.Label, fs.Present, fs.Integral, fs.Max, fs.Scaled, k.ZMax, outputs, k.Skipped,
			}
			if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	return f.SaveAs(path)
}
