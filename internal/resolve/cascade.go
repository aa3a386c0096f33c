package resolve

import (
	"strings"

	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/textquality"
)

// stage is one cascade filter: given the full block slice, return the
// subset that survives. Every stage must be idempotent and preserve
// relative order (spec §4.7).
type stage func(blocks []docmodel.Block) []docmodel.Block

// runCascade applies the page-class-appropriate stage ordering.
func runCascade(blocks []docmodel.Block, class docmodel.PageClass) []docmodel.Block {
	switch class {
	case docmodel.PageDigital:
		return apply(blocks,
			filterDegradedParserBlocks,
			filterRedundantOcrTextBlocks,
			func(b []docmodel.Block) []docmodel.Block { return filterLowQualityOcrTextBlocks(b, true) },
			func(b []docmodel.Block) []docmodel.Block { return filterKoreanOcrWhenParserReliable(b) },
			filterOcrTextWhenParserReliable,
		)
	case docmodel.PageHybrid:
		return apply(blocks,
			filterDegradedParserBlocks,
			filterRedundantOcrTextBlocks,
			func(b []docmodel.Block) []docmodel.Block { return filterLowQualityOcrTextBlocks(b, true) },
			func(b []docmodel.Block) []docmodel.Block { return filterKoreanOcrWhenParserReliable(b) },
			filterOcrTextWhenParserReliable,
		)
	default: // Scanned
		return apply(blocks,
			filterDegradedParserBlocks,
			func(b []docmodel.Block) []docmodel.Block { return filterLowQualityOcrTextBlocks(b, false) },
		)
	}
}

func apply(blocks []docmodel.Block, stages ...stage) []docmodel.Block {
	out := blocks
	for _, s := range stages {
		out = s(out)
	}
	return out
}

func isOcrText(b docmodel.Block) bool {
	return b.Kind == docmodel.KindText && b.Provenance == docmodel.ProvenanceOcr
}

func isParserOrFusedText(b docmodel.Block) bool {
	return b.Kind == docmodel.KindText && (b.Provenance == docmodel.ProvenanceParser || b.Provenance == docmodel.ProvenanceFused)
}

func textOf(b docmodel.Block) string {
	t, _ := b.TextContent()
	return t
}

// filterDegradedParserBlocks is stage 1: always runs. Drops Parser text
// blocks whose text is heavily-degraded Korean when some OCR text block
// scores better.
func filterDegradedParserBlocks(blocks []docmodel.Block) []docmodel.Block {
	bestOcrQ, haveOcr := 0, false
	for _, b := range blocks {
		if isOcrText(b) {
			q := textquality.KoreanQuality(textOf(b))
			if !haveOcr || q > bestOcrQ {
				bestOcrQ = q
				haveOcr = true
			}
		}
	}
	if !haveOcr {
		return blocks
	}

	out := make([]docmodel.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind == docmodel.KindText && b.Provenance == docmodel.ProvenanceParser {
			text := textOf(b)
			parserQ := textquality.KoreanQuality(text)
			if textquality.HasKorean(text) && parserQ < -10 && bestOcrQ > parserQ {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// filterRedundantOcrTextBlocks is stage 2 (Digital, Hybrid only). Drops OCR
// text blocks that duplicate a dominant parser/Fused text block.
func filterRedundantOcrTextBlocks(blocks []docmodel.Block) []docmodel.Block {
	totalParserChars := 0
	maxParserQ := 0
	haveParser := false
	maxParserArea := 0.0
	var parserNorms []string
	var parserBBoxes []struct {
		norm string
		area float64
		bbox docmodel.Block
	}

	for _, b := range blocks {
		if !isParserOrFusedText(b) {
			continue
		}
		text := textOf(b)
		totalParserChars += len([]rune(text))
		q := textquality.KoreanQuality(text)
		if !haveParser || q > maxParserQ {
			maxParserQ = q
			haveParser = true
		}
		area := b.BBox.Area()
		if area > maxParserArea {
			maxParserArea = area
		}
		norm := textquality.NormalizeForDedup(text)
		parserNorms = append(parserNorms, norm)
		parserBBoxes = append(parserBBoxes, struct {
			norm string
			area float64
			bbox docmodel.Block
		}{norm, area, b})
	}

	if totalParserChars < 120 || !haveParser || maxParserQ < -2 || maxParserArea < 300000 {
		return blocks
	}

	out := make([]docmodel.Block, 0, len(blocks))
	for _, b := range blocks {
		if !isOcrText(b) {
			out = append(out, b)
			continue
		}
		ocrNorm := textquality.NormalizeForDedup(textOf(b))
		if isDuplicateOfParser(ocrNorm, b, parserBBoxes) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func isDuplicateOfParser(ocrNorm string, ocrBlock docmodel.Block, parserBBoxes []struct {
	norm string
	area float64
	bbox docmodel.Block
}) bool {
	if len([]rune(ocrNorm)) < 4 {
		return true
	}
	for _, p := range parserBBoxes {
		if len([]rune(ocrNorm)) >= 8 && strings.Contains(p.norm, ocrNorm) {
			return true
		}
		sim := textquality.TextSimilarity(p.norm, ocrNorm)
		if sim >= 0.82 {
			return true
		}
		iou := ocrBlock.BBox.IoU(p.bbox.BBox)
		if iou >= 0.55 && sim >= 0.55 {
			return true
		}
	}
	return false
}

// filterLowQualityOcrTextBlocks is stage 3: drops blank or noisy OCR text;
// in aggressive mode also drops short compact OCR text.
func filterLowQualityOcrTextBlocks(blocks []docmodel.Block, aggressive bool) []docmodel.Block {
	out := make([]docmodel.Block, 0, len(blocks))
	for _, b := range blocks {
		if isOcrText(b) {
			text := textOf(b)
			if strings.TrimSpace(text) == "" || textquality.IsNoisyOCR(text) {
				continue
			}
			if aggressive && textquality.CompactLength(text) <= 3 {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// filterKoreanOcrWhenParserReliable is stage 4 (Digital, Hybrid only). When
// the parser track already carries substantial, good-quality Korean text,
// every OCR text block containing Korean is dropped.
func filterKoreanOcrWhenParserReliable(blocks []docmodel.Block) []docmodel.Block {
	totalSyllables := 0
	maxParserQ := 0
	haveParser := false
	for _, b := range blocks {
		if !isParserOrFusedText(b) {
			continue
		}
		text := textOf(b)
		totalSyllables += textquality.SyllableCount(text)
		q := textquality.KoreanQuality(text)
		if !haveParser || q > maxParserQ {
			maxParserQ = q
			haveParser = true
		}
	}
	if totalSyllables < 18 || !haveParser || maxParserQ < -1 {
		return blocks
	}

	out := make([]docmodel.Block, 0, len(blocks))
	for _, b := range blocks {
		if isOcrText(b) && textquality.HasKorean(textOf(b)) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// filterOcrTextWhenParserReliable is stage 5 (Digital, Hybrid only). When
// the parser track dominates overall character volume, every remaining OCR
// text block is dropped; non-text OCR blocks always survive.
func filterOcrTextWhenParserReliable(blocks []docmodel.Block) []docmodel.Block {
	parserChars, ocrChars := 0, 0
	maxParserQ := 0
	haveParser := false
	parserTextBlocks := 0
	for _, b := range blocks {
		switch {
		case isParserOrFusedText(b):
			parserTextBlocks++
			text := textOf(b)
			parserChars += len([]rune(text))
			q := textquality.KoreanQuality(text)
			if !haveParser || q > maxParserQ {
				maxParserQ = q
				haveParser = true
			}
		case isOcrText(b):
			ocrChars += len([]rune(textOf(b)))
		}
	}

	if parserChars < 220 || parserTextBlocks < 1 || !haveParser || maxParserQ < -2 {
		return blocks
	}
	if !(ocrChars == 0 || parserChars*10 >= ocrChars*7) {
		return blocks
	}

	out := make([]docmodel.Block, 0, len(blocks))
	for _, b := range blocks {
		if isOcrText(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}
