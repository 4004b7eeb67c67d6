package models

// FileStat records what happened to one file's histogram for a key.
type FileStat struct {
	// Label is the file's legend label.
	Label string `json:"label"`
	// Present is false when the file lacks the key or holds another variant.
	Present bool `json:"present"`
	// Integral is the integral before normalization.
	Integral float64 `json:"integral"`
	// Max is the largest bin content after normalization.
	Max float64 `json:"max"`
	// Scaled reports whether normalization was applied.
	Scaled bool `json:"scaled"`
}

// KeySummary records the outcome for one histogram key.
type KeySummary struct {
	// Key is the histogram key.
	Key string `json:"key"`
	// Kind is "1D", "2D" or "unknown".
	Kind string `json:"kind"`
	// Files holds per-file stats in input order.
	Files []FileStat `json:"files"`
	// ZMax is the largest bin content across files (2D only).
	ZMax float64 `json:"zmax,omitempty"`
	// Outputs lists the image paths written for the key.
	Outputs []string `json:"outputs,omitempty"`
	// Skipped explains why no image was written, if so.
	Skipped string `json:"skipped,omitempty"`
}

// Summary is the record of a whole comparison run.
type Summary struct {
	// Normalize reports whether normalization was enabled.
	Normalize bool `json:"normalize"`
	// Labels are the legend labels in input order.
	Labels []string `json:"labels"`
	// Keys holds one entry per key of the first file, in iteration order.
	Keys []KeySummary `json:"keys"`
}

// Images returns the total number of images written.
func (s *Summary) Images() int {
	n := 0
	for _, k := range s.Keys {
		n += len(k.Outputs)
	}
	return n
}
