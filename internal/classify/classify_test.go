package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

func TestClassifiesDigitalPage(t *testing.T) {
	s := Signals{ParserGlyphs: 420, OcrGlyphs: 100, ImageCoverage: 0.2, OcrTextDensity: 0.18}
	assert.Equal(t, docmodel.PageDigital, Page(s))
}

func TestClassifiesScannedPage(t *testing.T) {
	s := Signals{ParserGlyphs: 20, OcrGlyphs: 300, ImageCoverage: 0.62, OcrTextDensity: 0.56}
	assert.Equal(t, docmodel.PageScanned, Page(s))
}

func TestClassifiesHybridWhenNeitherDominates(t *testing.T) {
	s := Signals{ParserGlyphs: 50, OcrGlyphs: 60, ImageCoverage: 0.1, OcrTextDensity: 0.06}
	assert.Equal(t, docmodel.PageHybrid, Page(s))
}

func TestPerfectOverlapScenarioClassifiesHybrid(t *testing.T) {
	// Scenario 1 from spec §8: parser_glyphs=5, ocr_glyphs=5 -> neither
	// threshold is met, so the page is Hybrid, not Digital.
	s := Signals{ParserGlyphs: 5, OcrGlyphs: 5, ImageCoverage: 0, OcrTextDensity: 0.005}
	assert.Equal(t, docmodel.PageHybrid, Page(s))
}

func TestClassifyIsTotalAndDeterministic(t *testing.T) {
	s := Signals{ParserGlyphs: 1_000_000, OcrGlyphs: 1_000_000, ImageCoverage: 1, OcrTextDensity: 1}
	first := Page(s)
	second := Page(s)
	assert.Equal(t, first, second)
}
