package source

import (
	"fmt"
	"iter"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook/rootcnv"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// ROOTFile reads histograms from a ROOT file.
type ROOTFile struct {
	path string
	f    *groot.File
	keys keyIndex
}

// OpenROOT opens a ROOT file and indexes its top-level keys.
func OpenROOT(path string) (*ROOTFile, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, err
	}

	rf := &ROOTFile{path: path, f: f}
	for _, k := range f.Keys() {
		rf.keys.add(k.Name())
	}
	return rf, nil
}

// Path returns the file path.
func (r *ROOTFile) Path() string { return r.path }

// Keys yields top-level key names in the order ROOT stored them.
// A key written with several cycles appears once per cycle.
func (r *ROOTFile) Keys() iter.Seq[string] { return r.keys.seq() }

// Get reads and converts the histogram stored under key.
// Every TH1 flavour maps to Kind1D and every TH2 flavour to Kind2D.
func (r *ROOTFile) Get(key string) (*models.Histogram, error) {
	if !r.keys.has(key) {
		return nil, ErrKeyNotFound
	}

	obj, err := r.f.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}

	var h *models.Histogram
	switch o := obj.(type) {
	case rhist.H2:
		h = models.NewH2D(key, rootcnv.H2D(o))
		h.Title = o.Title()
		h.XTitle = axisTitle(o, "x")
		h.YTitle = axisTitle(o, "y")
	case rhist.H1:
		h = models.NewH1D(key, rootcnv.H1D(o))
		h.Title = o.Title()
		h.XTitle = axisTitle(o, "x")
		h.YTitle = axisTitle(o, "y")
	default:
		return nil, fmt.Errorf("%q is a %s: %w", key, obj.Class(), ErrUnsupportedObject)
	}
	return h, nil
}

// Close closes the ROOT file.
func (r *ROOTFile) Close() error {
	return r.f.Close()
}

// axisTitle returns the title of the named axis if the histogram exposes it.
func axisTitle(obj any, axis string) string {
	var ax any
	switch axis {
	case "x":
		if h, ok := obj.(interface{ XAxis() rhist.Axis }); ok {
			ax = h.XAxis()
		}
	case "y":
		if h, ok := obj.(interface{ YAxis() rhist.Axis }); ok {
			ax = h.YAxis()
		}
	}
	if n, ok := ax.(root.Named); ok {
		return n.Title()
	}
	return ""
}
