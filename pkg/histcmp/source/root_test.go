package source

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

func writeTestROOT(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hists.root")
	f, err := groot.Create(path)
	if err != nil {
		t.Fatalf("Failed to create ROOT file: %v", err)
	}

	h1 := hbook.NewH1D(10, 0, 10)
	h1.Fill(1.5, 3)
	h1.Fill(2.5, 7)
	if err := f.Put("h_energy", rhist.NewH1DFrom(h1)); err != nil {
		t.Fatalf("Failed to write h_energy: %v", err)
	}

	h2 := hbook.NewH2D(2, 0, 2, 2, 0, 2)
	h2.Fill(0.5, 0.5, 2)
	h2.Fill(1.5, 0.5, 5)
	if err := f.Put("h2_xy", rhist.NewH2DFrom(h2)); err != nil {
		t.Fatalf("Failed to write h2_xy: %v", err)
	}

	if err := f.Put("meta", rbase.NewObjString("produced by test")); err != nil {
		t.Fatalf("Failed to write meta: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close ROOT file: %v", err)
	}
	return path
}

func TestROOTFile(t *testing.T) {
	rf, err := Open(writeTestROOT(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rf.Close()

	keys := slices.Collect(rf.Keys())
	expected := []string{"h_energy", "h2_xy", "meta"}
	if !slices.Equal(keys, expected) {
		t.Errorf("Keys() = %v, expected %v", keys, expected)
	}

	h1, err := rf.Get("h_energy")
	if err != nil {
		t.Fatalf("Get(h_energy) failed: %v", err)
	}
	if h1.Kind() != models.Kind1D {
		t.Errorf("h_energy kind = %v, expected 1D", h1.Kind())
	}
	if h1.Integral() != 10 {
		t.Errorf("h_energy integral = %v, expected 10", h1.Integral())
	}

	h2, err := rf.Get("h2_xy")
	if err != nil {
		t.Fatalf("Get(h2_xy) failed: %v", err)
	}
	if h2.Kind() != models.Kind2D {
		t.Errorf("h2_xy kind = %v, expected 2D", h2.Kind())
	}
	if h2.Max() != 5 {
		t.Errorf("h2_xy max = %v, expected 5", h2.Max())
	}

	if _, err := rf.Get("meta"); !errors.Is(err, ErrUnsupportedObject) {
		t.Errorf("Get(meta) error = %v, expected ErrUnsupportedObject", err)
	}
	if _, err := rf.Get("absent"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(absent) error = %v, expected ErrKeyNotFound", err)
	}
}
