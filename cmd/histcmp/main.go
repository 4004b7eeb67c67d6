// Package main provides the CLI entry point for histcmp.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/histcmp-go/pkg/histcmp"
	"github.com/ukaji3/histcmp-go/pkg/histcmp/models"
	"github.com/ukaji3/histcmp-go/pkg/histcmp/output"
	"github.com/ukaji3/histcmp-go/pkg/histcmp/render"
)

const usageLine = "histcmp [flags] [--] normalize (true/false) input1.root legendtitle1 input2.root legendtitle2 " +
	"[input3.root legendtitle3 input4.root legendtitle4 input5.root legendtitle5]"

type flags struct {
	outputDir   string
	size        int
	summaryPath string
	pretty      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "histcmp normalize file1 label1 file2 label2 [file3 label3 ...]",
		Short: "Compare histograms across files",
		Long: `histcmp overlays 1D histograms and tiles 2D histograms stored under the
same key in 2 to 5 ROOT or xlsx files, writing one PNG per key.

Flags may appear anywhere. Put "--" before the positional arguments when a
path or legend title starts with "-".`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", ".", "Directory for output images")
	rootCmd.Flags().IntVar(&f.size, "size", histcmp.DefaultSize, "Canvas width and height in pixels")
	rootCmd.Flags().StringVar(&f.summaryPath, "summary", "", "Write a run summary (.xlsx or JSON)")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON summary")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	stdout := cmd.OutOrStdout()

	parsed, err := histcmp.ParseArgs(args, stdout)
	if errors.Is(err, histcmp.ErrUsage) {
		fmt.Fprintf(stdout, "Usage: %s\n", usageLine)
		return nil
	}
	if err != nil {
		return err
	}

	if f.size <= 0 {
		return fmt.Errorf("invalid size: %d (must be positive)", f.size)
	}
	if err := os.MkdirAll(f.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := histcmp.DefaultOptions()
	opts.Normalize = parsed.Normalize
	opts.OutputDir = f.outputDir
	opts.Stdout = stdout

	summary, err := histcmp.New(parsed.Inputs, render.New(f.size), opts).Run()
	if err != nil {
		return err
	}

	if f.summaryPath != "" {
		if err := writeSummary(summary, f); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return nil
}

func writeSummary(summary *models.Summary, f flags) error {
	switch strings.ToLower(filepath.Ext(f.summaryPath)) {
	case ".xlsx", ".xlsm":
		return output.WriteWorkbook(summary, f.summaryPath)
	}

	jsonData, err := output.ToJSON(summary, f.pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(f.summaryPath, jsonData, 0644)
}
