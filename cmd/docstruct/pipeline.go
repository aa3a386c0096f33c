package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/fusion"
	"github.com/fulmenhq/docstruct/internal/ocrtrack"
	"github.com/fulmenhq/docstruct/internal/parsertrack"
	"github.com/fulmenhq/docstruct/internal/pdfmeta"
	"github.com/fulmenhq/docstruct/internal/rasterize"
	"github.com/fulmenhq/docstruct/logging"
	"github.com/fulmenhq/docstruct/telemetry"
)

func fieldInt(key string, v int) zap.Field {
	return zap.Int(key, v)
}

// pipelineResult bundles the fused document with the rendered page images
// the exporters need for figure cropping and the HTML debug background, plus
// the run's telemetry registry for the CLI's --debug timing report.
type pipelineResult struct {
	Document   docmodel.DocumentFinal
	PageImages map[int]string
	Telemetry  *telemetry.Registry
}

// runPipeline drives the per-document fusion pipeline (spec §4.10, §5): for
// every page, render, extract both tracks, then fuse; pages are processed
// strictly in order and the ordering guarantee carries through to the
// output document.
func runPipeline(path string, dpi int, cacheDir string, logger *logging.Logger) (pipelineResult, error) {
	reg := telemetry.NewRegistry()

	pageCount, err := pdfmeta.PageCount(path)
	if err != nil {
		return pipelineResult{}, fmt.Errorf("reading page count: %w", err)
	}

	cache := rasterize.NewCache(cacheDir, dpi)

	parserPages := make([]docmodel.PageHypothesis, 0, pageCount)
	ocrPages := make([]docmodel.PageHypothesis, 0, pageCount)
	pageImages := make(map[int]string, pageCount)

	for idx := 0; idx < pageCount; idx++ {
		logger.Info("rendering page", fieldInt("page", idx+1), fieldInt("of", pageCount))

		renderStart := time.Now()
		render, err := cache.Page(path, idx+1)
		reg.Histogram("render", time.Since(renderStart))
		if err != nil {
			return pipelineResult{}, fmt.Errorf("rasterizing page %d: %w", idx+1, err)
		}
		pageImages[idx] = render.Path

		parseStart := time.Now()
		parserPage, err := parsertrack.Page(path, idx, logger)
		reg.Histogram("parsertrack", time.Since(parseStart))
		if err != nil {
			return pipelineResult{}, fmt.Errorf("parsing page %d: %w", idx+1, err)
		}

		ocrStart := time.Now()
		ocrPage, err := ocrtrack.Page(render.Path, idx, render.Width, render.Height)
		reg.Histogram("ocrtrack", time.Since(ocrStart))
		if err != nil {
			return pipelineResult{}, fmt.Errorf("running OCR on page %d: %w", idx+1, err)
		}

		reg.Counter("parser.blocks", float64(len(parserPage.Blocks)))
		reg.Counter("ocr.blocks", float64(len(ocrPage.Blocks)))

		parserPages = append(parserPages, parserPage)
		ocrPages = append(ocrPages, ocrPage)
	}

	fuseStart := time.Now()
	doc := fusion.Document(parserPages, ocrPages)
	reg.Histogram("fusion", time.Since(fuseStart))

	finalBlocks := 0
	for _, page := range doc.Pages {
		finalBlocks += len(page.Blocks)
	}
	reg.Counter("final.blocks", float64(finalBlocks))

	return pipelineResult{Document: doc, PageImages: pageImages, Telemetry: reg}, nil
}
