// Package classify implements the page classifier (spec §4.8), mapping
// per-page parser/OCR signal counts to a PageClass.
package classify

import "github.com/fulmenhq/docstruct/internal/docmodel"

// Signals are the per-page measurements the classifier decides on.
type Signals struct {
	ParserGlyphs   int
	OcrGlyphs      int
	ImageCoverage  float64 // [0,1], largest OCR block area / page area
	OcrTextDensity float64 // min(1, ocr_glyphs/1000)
}

// saturatingMul2 doubles n without overflowing int, matching the Rust
// prototype's saturating_mul(2) guard for pathological glyph counts.
func saturatingMul2(n int) int {
	const maxInt = int(^uint(0) >> 1)
	if n > maxInt/2 {
		return maxInt
	}
	return n * 2
}

// Page applies the first-match-wins decision tree from spec §4.8.
func Page(s Signals) docmodel.PageClass {
	switch {
	case s.ParserGlyphs >= 120 && s.ParserGlyphs >= saturatingMul2(s.OcrGlyphs):
		return docmodel.PageDigital
	case s.OcrGlyphs >= saturatingMul2(s.ParserGlyphs) && (s.OcrTextDensity > 0.35 || s.ImageCoverage > 0.3):
		return docmodel.PageScanned
	case s.ParserGlyphs > 220 && s.OcrTextDensity < 0.25 && s.ImageCoverage < 0.25:
		return docmodel.PageDigital
	default:
		return docmodel.PageHybrid
	}
}
