// Package fusion implements the per-page driver (spec §4.10): align, resolve,
// classify, then assemble the PageFinal with its debug snapshot.
package fusion

import (
	"github.com/fulmenhq/docstruct/internal/align"
	"github.com/fulmenhq/docstruct/internal/classify"
	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/resolve"
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func countGlyphs(blocks []docmodel.Block) int {
	total := 0
	for _, b := range blocks {
		if text, ok := b.TextContent(); ok {
			total += len([]rune(text))
		}
	}
	return total
}

// largestAreaFraction returns the largest text block's bbox area as a
// fraction of the page area, clamped to [0, 1].
func largestAreaFraction(blocks []docmodel.Block, pageArea float64) float64 {
	if pageArea <= 0 {
		return 0
	}
	largest := 0.0
	for _, b := range blocks {
		if b.Kind != docmodel.KindText {
			continue
		}
		area := b.BBox.Area()
		if area > largest {
			largest = area
		}
	}
	frac := largest / pageArea
	if frac > 1 {
		return 1
	}
	if frac < 0 {
		return 0
	}
	return frac
}

func ocrTextDensity(ocrGlyphs int) float64 {
	d := float64(ocrGlyphs) / 1000
	if d > 1 {
		return 1
	}
	return d
}

// Page runs the full per-page fusion pipeline over a parser and an OCR
// hypothesis for the same page index.
func Page(parserPage, ocrPage docmodel.PageHypothesis) docmodel.PageFinal {
	alignment := align.Blocks(parserPage.Blocks, ocrPage.Blocks)

	parserGlyphs := countGlyphs(parserPage.Blocks)
	ocrGlyphs := countGlyphs(ocrPage.Blocks)
	pageArea := float64(max(parserPage.Width, ocrPage.Width)) * float64(max(parserPage.Height, ocrPage.Height))

	class := classify.Page(classify.Signals{
		ParserGlyphs:   parserGlyphs,
		OcrGlyphs:      ocrGlyphs,
		ImageCoverage:  largestAreaFraction(ocrPage.Blocks, pageArea),
		OcrTextDensity: ocrTextDensity(ocrGlyphs),
	})

	blocks := resolve.Page(alignment, class)

	return docmodel.PageFinal{
		PageIdx: parserPage.PageIdx,
		Class:   class,
		Blocks:  blocks,
		Width:   max(parserPage.Width, ocrPage.Width),
		Height:  max(parserPage.Height, ocrPage.Height),
		Debug: &docmodel.PageDebug{
			ParserBlocks: docmodel.CloneBlocks(parserPage.Blocks),
			OcrBlocks:    docmodel.CloneBlocks(ocrPage.Blocks),
		},
	}
}

// Document runs Page over every page, preserving input page-index order
// (spec §5 ordering guarantee). parserPages and ocrPages must be paired by
// index and the same length; callers own collaborator invocation.
func Document(parserPages, ocrPages []docmodel.PageHypothesis) docmodel.DocumentFinal {
	pages := make([]docmodel.PageFinal, 0, len(parserPages))
	for i := range parserPages {
		pages = append(pages, Page(parserPages[i], ocrPages[i]))
	}
	return docmodel.DocumentFinal{Pages: pages}
}
