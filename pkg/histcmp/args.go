package histcmp

import (
	"fmt"
	"io"
	"strconv"
)

// minArgs is the normalize flag plus the shortest argument list that names
// two files. Fewer is a usage error; a missing second label is caught by
// the file/label count check.
const minArgs = 4

// Input is one file to compare and its legend label.
type Input struct {
	// Path is the histogram file path.
	Path string
	// Label is the legend label, also used in 2D output names.
	Label string
}

// Args holds parsed positional arguments.
type Args struct {
	// Normalize is the parsed normalize flag.
	Normalize bool
	// Inputs are the file/label pairs in command-line order.
	Inputs []Input
}

// Paths returns the input paths in order.
func (a Args) Paths() []string {
	paths := make([]string, len(a.Inputs))
	for i, in := range a.Inputs {
		paths[i] = in.Path
	}
	return paths
}

// Labels returns the legend labels in order.
func (a Args) Labels() []string {
	labels := make([]string, len(a.Inputs))
	for i, in := range a.Inputs {
		labels[i] = in.Label
	}
	return labels
}

// ParseArgs parses "normalize file1 label1 file2 label2 ...".
// args must not include the program name. Each accepted pair is echoed
// to echo, which may be nil.
func ParseArgs(args []string, echo io.Writer) (Args, error) {
	if echo == nil {
		echo = io.Discard
	}
	if len(args) < minArgs {
		return Args{}, ErrUsage
	}

	normalize, err := strconv.ParseBool(args[0])
	if err != nil {
		return Args{}, fmt.Errorf("%q: %w", args[0], ErrInvalidNormalize)
	}
	fmt.Fprintln(echo, normalize)

	var paths, labels []string
	for i, arg := range args[1:] {
		if i%2 == 0 {
			paths = append(paths, arg)
			fmt.Fprintf(echo, "Adding to comparison: %s\n", arg)
		} else {
			labels = append(labels, arg)
			fmt.Fprintf(echo, " -- legend title: %s\n", arg)
		}
	}

	if len(paths) != len(labels) {
		return Args{}, fmt.Errorf("%d files, %d labels: %w", len(paths), len(labels), ErrLabelCountMismatch)
	}
	if len(paths) > MaxInputs {
		return Args{}, fmt.Errorf("%d inputs: %w", len(paths), ErrTooManyInputs)
	}

	inputs := make([]Input, len(paths))
	for i := range paths {
		inputs[i] = Input{Path: paths[i], Label: labels[i]}
	}
	return Args{Normalize: normalize, Inputs: inputs}, nil
}
