// Package resolve implements the resolver: pairwise resolution of aligned
// blocks (spec §4.5), orphan promotion (§4.6), and the page-class-dependent
// filter cascade (§4.7).
package resolve

import (
	"github.com/fulmenhq/docstruct/internal/align"
	"github.com/fulmenhq/docstruct/internal/confidence"
	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/textquality"
)

func str(s string) *string   { return &s }
func f64(v float64) *float64 { return &v }

func geometryGood(iou, centerDistance float64) bool {
	return iou > 0.3 || centerDistance < 50
}

// resolvePair emits the single fused block for one matched (parser, ocr)
// pair, per the page-class decision table in spec §4.5.
func resolvePair(pair align.MatchedPair, class docmodel.PageClass) docmodel.Block {
	a, b := pair.A, pair.B

	if a.Kind != docmodel.KindText || b.Kind != docmodel.KindText || a.Kind != b.Kind {
		return resolveNonText(pair)
	}

	parserText, _ := a.TextContent()
	ocrText, _ := b.TextContent()
	sim := textquality.TextSimilarity(parserText, ocrText)
	geomGood := geometryGood(pair.IoU, pair.CenterDistance)
	base := confidence.Score(true, true, f64(sim), geomGood)

	lines, prov := chooseTextSide(class, sim, parserText, ocrText)

	score := base
	korean := textquality.HasKorean(parserText) || textquality.HasKorean(ocrText)
	parserQ := textquality.KoreanQuality(parserText)
	ocrQ := textquality.KoreanQuality(ocrText)
	if korean && prov == docmodel.ProvenanceParser && parserQ < -2 {
		score -= 0.2
	}
	if korean && prov == docmodel.ProvenanceOcr && ocrQ > 0 {
		score += 0.05
	}
	if class == docmodel.PageScanned && prov == docmodel.ProvenanceOcr {
		score += 0.08
	}
	score = clamp01(score)

	bbox := a.BBox
	if prov == docmodel.ProvenanceOcr {
		bbox = b.BBox
	}

	out := docmodel.NewTextBlock(bbox, lines, score, prov)
	out.Debug = &docmodel.BlockDebug{
		ParserText: str(parserText),
		OcrText:    str(ocrText),
		FinalText:  str(linesText(lines)),
		Similarity: f64(sim),
	}
	return out
}

func linesText(lines []docmodel.Line) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += " "
		}
		out += l.Text()
	}
	return out
}

// chooseTextSide implements the per-page-class text↔text decision table.
func chooseTextSide(class docmodel.PageClass, sim float64, parserText, ocrText string) ([]docmodel.Line, docmodel.Provenance) {
	korean := textquality.HasKorean(parserText) || textquality.HasKorean(ocrText)
	parserQ := textquality.KoreanQuality(parserText)
	ocrQ := textquality.KoreanQuality(ocrText)
	ocrLonger := func(n int) bool { return len([]rune(ocrText)) >= len([]rune(parserText))+n }

	parserLines := []docmodel.Line{{Spans: []docmodel.Span{{Text: parserText, Provenance: docmodel.ProvenanceParser}}}}
	ocrLines := []docmodel.Line{{Spans: []docmodel.Span{{Text: ocrText, Provenance: docmodel.ProvenanceOcr}}}}

	switch class {
	case docmodel.PageDigital:
		if sim >= 0.72 {
			return parserLines, docmodel.ProvenanceFused
		}
		if korean && sim < 0.30 && ocrQ > parserQ+5 && ocrLonger(40) {
			return ocrLines, docmodel.ProvenanceOcr
		}
		return parserLines, docmodel.ProvenanceParser

	case docmodel.PageHybrid:
		if sim >= 0.72 {
			return parserLines, docmodel.ProvenanceFused
		}
		koreanSwitch := korean && sim < 0.30 && ocrQ > parserQ+4 && ocrLonger(50)
		lengthSwitch := sim < 0.35 && ocrLonger(80) && !textquality.IsNoisyOCR(ocrText)
		if koreanSwitch || lengthSwitch {
			return ocrLines, docmodel.ProvenanceOcr
		}
		return parserLines, docmodel.ProvenanceParser

	default: // Scanned
		if sim >= 0.72 {
			return ocrLines, docmodel.ProvenanceFused
		}
		if ocrText != "" && !textquality.IsNoisyOCR(ocrText) {
			return ocrLines, docmodel.ProvenanceOcr
		}
		return parserLines, docmodel.ProvenanceParser
	}
}

// resolveNonText collapses a non-text or cross-kind matched pair into a
// FigureBlock whose bbox is the union of both sides.
func resolveNonText(pair align.MatchedPair) docmodel.Block {
	a, b := pair.A, pair.B
	geomGood := geometryGood(pair.IoU, pair.CenterDistance)
	score := confidence.Score(true, true, nil, geomGood)
	return docmodel.NewFigureBlock(a.BBox.Union(b.BBox), score, docmodel.ProvenanceFused)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
