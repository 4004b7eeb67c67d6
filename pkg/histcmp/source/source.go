// Package source opens histogram collection files.
package source

import (
	"errors"
	"iter"
	"path/filepath"
	"strings"

	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
)

// ErrKeyNotFound indicates the file holds no object under the requested key.
var ErrKeyNotFound = errors.New("key not found")

// ErrUnsupportedObject indicates the object under a key is not a 1D or 2D histogram.
var ErrUnsupportedObject = errors.New("unsupported object")

// File is an open, read-only collection of named histograms.
type File interface {
	// Path returns the path the file was opened from.
	Path() string
	// Keys yields the stored keys in the file's own order.
	Keys() iter.Seq[string]
	// Get returns the histogram stored under key.
	// It returns ErrKeyNotFound if the key is absent and
	// ErrUnsupportedObject if the object is not a histogram.
	Get(key string) (*models.Histogram, error)
	// Close releases the underlying file.
	Close() error
}

// Open opens path with the backend matching its extension.
// Excel workbooks (.xlsx, .xlsm) use the workbook backend;
// everything else is read as a ROOT file.
func Open(path string) (File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return OpenWorkbook(path)
	default:
		return OpenROOT(path)
	}
}

// keyIndex keeps keys in stored order with O(1) membership checks.
type keyIndex struct {
	order []string
	set   map[string]struct{}
}

func (k *keyIndex) add(name string) {
	if k.set == nil {
		k.set = make(map[string]struct{})
	}
	k.order = append(k.order, name)
	k.set[name] = struct{}{}
}

func (k *keyIndex) has(name string) bool {
	_, ok := k.set[name]
	return ok
}

func (k *keyIndex) seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range k.order {
			if !yield(name) {
				return
			}
		}
	}
}
