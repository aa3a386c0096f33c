package main

import (
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fulmenhq/docstruct/internal/export"
	"github.com/fulmenhq/docstruct/logging"
	"github.com/fulmenhq/docstruct/telemetry"
)

// runConvert implements `docstruct convert <input>` (spec §6).
func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	output := fs.String("output", "", "output directory (default: <input>.docstruct)")
	format := fs.String("format", "", "comma-separated output formats: json,markdown,text (default from config)")
	dpi := fs.Int("dpi", 0, "rasterization DPI (default from config)")
	debug := fs.Bool("debug", false, "also emit debug/page_NNN.html overlay views")
	quiet := fs.Bool("quiet", false, "suppress info-level logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("convert requires exactly one input file")
	}
	input := fs.Arg(0)

	cfg, logger, err := loadRuntime(*quiet)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	outDir := *output
	if outDir == "" {
		outDir = input + ".docstruct"
	}
	effectiveDPI := *dpi
	if effectiveDPI == 0 {
		effectiveDPI = cfg.DefaultDPI
	}
	formats := splitFormats(*format, cfg.DefaultFormat)

	result, err := runPipeline(input, effectiveDPI, cfg.RenderCacheDir, logger)
	if err != nil {
		return err
	}

	if err := exportFormats(outDir, result, formats, *debug); err != nil {
		return err
	}

	if *debug {
		logTimingSummary(logger, result.Telemetry)
	}

	logger.Info("conversion complete", fieldInt("pages", len(result.Document.Pages)))
	return nil
}

// logTimingSummary reports the run's collaborator timings and block-count
// reduction from the telemetry registry, used under --debug to explain where
// wall-clock time went and how much the alignment/cascade stages trimmed.
func logTimingSummary(logger *logging.Logger, reg *telemetry.Registry) {
	if reg == nil {
		return
	}
	logger.Info("timing summary",
		zap.Duration("render_total", reg.Summary("render")),
		zap.Duration("parsertrack_total", reg.Summary("parsertrack")),
		zap.Duration("ocrtrack_total", reg.Summary("ocrtrack")),
		zap.Duration("fusion_total", reg.Summary("fusion")),
		zap.Float64("parser_blocks", reg.CounterValue("parser.blocks")),
		zap.Float64("ocr_blocks", reg.CounterValue("ocr.blocks")),
		zap.Float64("final_blocks", reg.CounterValue("final.blocks")),
	)
}

func splitFormats(requested, fallback string) []string {
	raw := requested
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		raw = "json"
	}
	parts := strings.Split(raw, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}

func exportFormats(outDir string, result pipelineResult, formats []string, debug bool) error {
	for _, f := range formats {
		var err error
		switch f {
		case "json":
			err = export.WriteJSON(outDir, result.Document)
		case "markdown", "md":
			err = export.WriteMarkdown(outDir, result.Document, result.PageImages)
		case "text", "txt":
			err = export.WriteText(outDir, result.Document)
		case "html":
			err = export.WriteHTMLDebug(outDir, result.Document, result.PageImages)
		default:
			err = fmt.Errorf("unknown format %q", f)
		}
		if err != nil {
			return err
		}
	}

	if debug {
		if err := export.WriteHTMLDebug(outDir, result.Document, result.PageImages); err != nil {
			return err
		}
	}

	return nil
}
