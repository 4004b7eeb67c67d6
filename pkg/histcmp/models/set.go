package models

// ComparisonSet holds one histogram per input file for a single key.
// Entries keep input-file order; a nil entry means the file lacks the key.
type ComparisonSet struct {
	// Key is the shared histogram key.
	Key string
	// Entries is indexed by input-file position.
	Entries []*Histogram
}

// Primary returns the first file's histogram.
func (s *ComparisonSet) Primary() *Histogram {
	if len(s.Entries) == 0 {
		return nil
	}
	return s.Entries[0]
}

// Kind returns the variant of the primary histogram, which decides the
// render path for the whole set.
func (s *ComparisonSet) Kind() Kind {
	p := s.Primary()
	if p == nil {
		return KindUnknown
	}
	return p.Kind()
}

// Max returns the largest bin content over all present entries.
func (s *ComparisonSet) Max() float64 {
	var (
		maxv  float64
		found bool
	)
	for _, h := range s.Entries {
		if h == nil {
			continue
		}
		if v := h.Max(); !found || v > maxv {
			maxv = v
			found = true
		}
	}
	return maxv
}

// Present returns the number of non-nil entries.
func (s *ComparisonSet) Present() int {
	n := 0
	for _, h := range s.Entries {
		if h != nil {
			n++
		}
	}
	return n
}
