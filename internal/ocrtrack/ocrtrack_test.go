package ocrtrack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

func TestParseTokensBuildsBlocksByType(t *testing.T) {
	payload := `[
		{"text": "Hello OCR", "bbox": [10, 10, 60, 30], "confidence": 0.92, "block_type": "text"},
		{"text": "", "bbox": [0, 0, 500, 300], "block_type": "table"},
		{"text": "", "bbox": [0, 300, 500, 600], "block_type": "figure"},
		{"text": "", "bbox": [0, 600, 200, 650], "block_type": "math", "latex": "x^2"}
	]`

	hyp, err := parseTokens([]byte(payload), 2, 1000, 1400)
	require.NoError(t, err)

	assert.Equal(t, 2, hyp.PageIdx)
	assert.Equal(t, 1000, hyp.Width)
	require.Len(t, hyp.Blocks, 4)

	assert.Equal(t, docmodel.KindText, hyp.Blocks[0].Kind)
	text, ok := hyp.Blocks[0].TextContent()
	require.True(t, ok)
	assert.Equal(t, "Hello OCR", text)
	assert.InDelta(t, 0.92, hyp.Blocks[0].Confidence, 1e-9)

	assert.Equal(t, docmodel.KindTable, hyp.Blocks[1].Kind)
	assert.Equal(t, docmodel.KindFigure, hyp.Blocks[2].Kind)
	assert.Equal(t, docmodel.KindMath, hyp.Blocks[3].Kind)
	assert.Equal(t, "x^2", hyp.Blocks[3].Latex)
}

func TestParseTokensDefaultsMissingConfidence(t *testing.T) {
	payload := `[{"text": "no confidence", "bbox": [0, 0, 10, 10], "block_type": "text"}]`

	hyp, err := parseTokens([]byte(payload), 0, 100, 100)
	require.NoError(t, err)
	require.Len(t, hyp.Blocks, 1)
	assert.Equal(t, defaultConfidence, hyp.Blocks[0].Confidence)
}

func TestParseTokensEmptyArrayIsEmptyHypothesis(t *testing.T) {
	hyp, err := parseTokens([]byte(`[]`), 0, 100, 100)
	require.NoError(t, err)
	assert.Empty(t, hyp.Blocks)
}

func TestParseTokensRejectsSchemaViolation(t *testing.T) {
	_, err := parseTokens([]byte(`[{"text": "missing bbox", "block_type": "text"}]`), 0, 100, 100)
	assert.Error(t, err)
}

func TestParseTokensRejectsUnknownBlockType(t *testing.T) {
	_, err := parseTokens([]byte(`[{"text": "x", "bbox": [0,0,1,1], "block_type": "barcode"}]`), 0, 100, 100)
	assert.Error(t, err)
}

func TestTokenToBlockRejectsNonFiniteBBox(t *testing.T) {
	tok := token{Text: "garbled", BBox: [4]float64{0, 0, math.NaN(), 10}, BlockType: "text"}
	_, err := tokenToBlock(tok)
	assert.Error(t, err)
}
