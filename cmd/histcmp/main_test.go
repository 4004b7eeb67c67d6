package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/histcmp-go/pkg/histcmp"
	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

func writeInput(t *testing.T, dir, name string, scale float64) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "h_energy"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	f.SetSheetRow("h_energy", "A1", &[]interface{}{"H1D", 5, 0, 5, "Energy", "E", "Events"})
	for i := 0; i < 5; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow("h_energy", cell, &[]interface{}{float64(i) + 0.5, scale * float64(i+1)})
	}

	if _, err := f.NewSheet("h2_xy"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetSheetRow("h2_xy", "A1", &[]interface{}{"H2D", 2, 0, 2, 2, 0, 2, "XY", "x", "y"})
	f.SetSheetRow("h2_xy", "A2", &[]interface{}{0.5, 0.5, scale})
	f.SetSheetRow("h2_xy", "A3", &[]interface{}{1.5, 0.5, 2 * scale})

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save %s: %v", name, err)
	}
	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUsage(t *testing.T) {
	out, err := execute("true", "a.root", "A")
	if err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	if !strings.HasPrefix(out, "Usage: ") {
		t.Errorf("Expected usage message, got %q", out)
	}
	if !strings.Contains(out, "[--]") {
		t.Errorf("Expected usage to mention --, got %q", out)
	}
}

func TestDashLabel(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.xlsx", 1)
	b := writeInput(t, dir, "b.xlsx", 2)

	out, err := execute("-o", dir, "--size", "200", "--", "false", a, "-10deg", b, "B")
	if err != nil {
		t.Fatalf("Compare failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "nocmp2d_xy_-10deg.png")); err != nil {
		t.Errorf("Expected image for label -10deg: %v", err)
	}
}

func TestSecondLabelMissing(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "a.xlsx", 1)

	out, err := execute("true", in, "l1", in, "-o", dir)
	if !errors.Is(err, histcmp.ErrLabelCountMismatch) {
		t.Fatalf("Expected ErrLabelCountMismatch, got %v", err)
	}
	if strings.Contains(out, "Usage: ") {
		t.Errorf("Expected an abort, not usage:\n%s", out)
	}

	pngs, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	if len(pngs) != 0 {
		t.Errorf("Expected no images, found %v", pngs)
	}
}

func TestLabelMismatch(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "a.xlsx", 1)

	_, err := execute("false", in, "A", in, "B", in, "-o", dir)
	if !errors.Is(err, histcmp.ErrLabelCountMismatch) {
		t.Fatalf("Expected ErrLabelCountMismatch, got %v", err)
	}

	pngs, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	if len(pngs) != 0 {
		t.Errorf("Expected no images, found %v", pngs)
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "a.xlsx", 1)

	_, err := execute("false", in, "A", filepath.Join(dir, "missing.xlsx"), "B", "-o", dir)
	var openErr *histcmp.FileOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Expected FileOpenError, got %v", err)
	}

	pngs, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	if len(pngs) != 0 {
		t.Errorf("Expected no images, found %v", pngs)
	}
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.xlsx", 1)
	b := writeInput(t, dir, "b.xlsx", 3)
	outDir := filepath.Join(dir, "plots")
	summaryPath := filepath.Join(dir, "summary.json")

	out, err := execute("true", a, "GENIE v2", b, "GENIE v3",
		"-o", outDir, "--size", "200", "--summary", summaryPath)
	if err != nil {
		t.Fatalf("Compare failed: %v\n%s", err, out)
	}

	for _, name := range []string{
		"cmp_energy.png",
		"nocmp2d_xy_GENIE_v2.png",
		"nocmp2d_xy_GENIE_v3.png",
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}
	if !strings.Contains(out, "OBJ h_energy") || !strings.Contains(out, "OBJ h2_xy") {
		t.Errorf("Expected per-key progress, got:\n%s", out)
	}

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}
	var summary models.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}
	if summary.Images() != 3 {
		t.Errorf("Expected 3 images in summary, got %d", summary.Images())
	}
	if !summary.Keys[0].Files[1].Scaled || summary.Keys[0].Files[1].Integral != 45 {
		t.Errorf("Unexpected stats for b.xlsx: %+v", summary.Keys[0].Files[1])
	}
}
