package resolve

import (
	"github.com/fulmenhq/docstruct/internal/confidence"
	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/textquality"
)

// promoteParserOrphan converts an unmatched parser block into a standalone
// Parser-provenance block (spec §4.6).
func promoteParserOrphan(b docmodel.Block, class docmodel.PageClass) docmodel.Block {
	score := confidence.Score(true, false, nil, true)

	text, isText := b.TextContent()
	if isText && textquality.IsKoreanParserDegraded(text) {
		score -= 0.2
	}
	if class == docmodel.PageScanned {
		score -= 0.1
	}
	score = clamp01(score)

	out := b.WithProvenance(docmodel.ProvenanceParser).WithConfidence(score)
	if isText {
		out.Debug = &docmodel.BlockDebug{ParserText: str(text), FinalText: str(text)}
	}
	return out
}

// promoteOcrOrphan converts an unmatched OCR block into a standalone
// Ocr-provenance block (spec §4.6).
func promoteOcrOrphan(b docmodel.Block, class docmodel.PageClass) docmodel.Block {
	score := confidence.Score(false, true, nil, true)

	text, isText := b.TextContent()
	if class == docmodel.PageScanned {
		score += 0.08
	}
	score = clamp01(score)

	out := b.WithProvenance(docmodel.ProvenanceOcr).WithConfidence(score)
	if isText {
		out.Debug = &docmodel.BlockDebug{OcrText: str(text), FinalText: str(text)}
	}
	return out
}
