package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/geometry"
)

func textBlock(x0, y0, x1, y1 float64, text string) docmodel.Block {
	bb := geometry.New(x0, y0, x1, y1)
	lines := []docmodel.Line{{Spans: []docmodel.Span{{Text: text, BBox: bb, Provenance: docmodel.ProvenanceFused}}}}
	return docmodel.NewTextBlock(bb, lines, 0.9, docmodel.ProvenanceFused)
}

func TestPageFilenameZeroPadsToThreeDigits(t *testing.T) {
	assert.Equal(t, "page_001.txt", pageFilename("page", 0, "txt"))
	assert.Equal(t, "page_042.md", pageFilename("page", 41, "md"))
}

func TestBlockTextReturnsEmptyForNonTextBlocks(t *testing.T) {
	fig := docmodel.NewFigureBlock(geometry.New(0, 0, 10, 10), 0.5, docmodel.ProvenanceOcr)
	assert.Equal(t, "", blockText(fig))
}

func TestBlockTypeLabelMatchesKind(t *testing.T) {
	block := textBlock(0, 0, 10, 10, "hello")
	assert.Equal(t, "text", blockTypeLabel(block))

	table := docmodel.NewTableBlock(geometry.New(0, 0, 10, 10), 0.5, docmodel.ProvenanceParser)
	assert.Equal(t, "table", blockTypeLabel(table))
}
