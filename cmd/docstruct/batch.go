package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/docstruct/pathfinder"
)

// runBatch implements `docstruct batch <inputs...>` (spec §6): glob
// expansion over the input arguments, one independent conversion per
// resolved file, failures recovered and summarized, non-zero exit if any
// file failed. Grounded on original_source/src/main.rs::convert_batch.
func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	output := fs.String("output", "", "output directory root (default: <input>.docstruct per file)")
	format := fs.String("format", "", "comma-separated output formats: json,markdown,text")
	dpi := fs.Int("dpi", 0, "rasterization DPI (default from config)")
	debug := fs.Bool("debug", false, "also emit debug/page_NNN.html overlay views")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("batch requires at least one input glob or path")
	}

	inputs, err := resolveBatchInputs(fs.Args())
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files matched")
	}

	cfg, logger, err := loadRuntime(false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	effectiveDPI := *dpi
	if effectiveDPI == 0 {
		effectiveDPI = cfg.DefaultDPI
	}
	formats := splitFormats(*format, cfg.DefaultFormat)

	var failed []string
	for _, input := range inputs {
		outDir := batchOutputDir(*output, input)
		logger.Info("converting", fieldInt("remaining", len(inputs)))

		result, err := runPipeline(input, effectiveDPI, cfg.RenderCacheDir, logger)
		if err == nil {
			err = exportFormats(outDir, result, formats, *debug)
		}
		if err != nil {
			logger.Error(fmt.Sprintf("failed to convert %s: %v", input, err))
			failed = append(failed, input)
			continue
		}
	}

	fmt.Fprintf(os.Stdout, "converted %d/%d files\n", len(inputs)-len(failed), len(inputs))
	if len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "failures:\n")
		for _, f := range failed {
			fmt.Fprintf(os.Stderr, "  - %s\n", f)
		}
		return fmt.Errorf("%d file(s) failed", len(failed))
	}
	return nil
}

func batchOutputDir(outputRoot, input string) string {
	if outputRoot == "" {
		return input + ".docstruct"
	}
	return filepath.Join(outputRoot, filepath.Base(input)+".docstruct")
}

// resolveBatchInputs expands glob patterns (`docs/**/*.pdf`) via
// pathfinder's doublestar-backed finder, while passing plain paths through
// unchanged so absolute, non-glob arguments still work.
func resolveBatchInputs(args []string) ([]string, error) {
	finder := pathfinder.NewFinder()
	seen := make(map[string]bool)
	var out []string

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[") {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, err
			}
			if _, err := os.Stat(abs); err != nil {
				return nil, fmt.Errorf("input %q: %w", arg, err)
			}
			if !seen[abs] {
				seen[abs] = true
				out = append(out, abs)
			}
			continue
		}

		results, err := finder.FindFiles(context.Background(), pathfinder.FindQuery{
			Root:    ".",
			Include: []string{arg},
		})
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		for _, r := range results {
			if !seen[r.SourcePath] {
				seen[r.SourcePath] = true
				out = append(out, r.SourcePath)
			}
		}
	}

	return out, nil
}
