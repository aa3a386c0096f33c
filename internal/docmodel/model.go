// Package docmodel defines the value types that flow through the fusion
// engine: provenance-tagged blocks, lines, spans, and the per-page and
// per-document hypotheses and results.
package docmodel

import (
	"strings"

	"github.com/fulmenhq/docstruct/internal/geometry"
)

// Provenance records which track produced a block or line.
type Provenance string

const (
	ProvenanceParser Provenance = "parser"
	ProvenanceOcr    Provenance = "ocr"
	ProvenanceFused  Provenance = "fused"
)

// PageClass is the outcome of the page classifier (spec §4.8).
type PageClass string

const (
	PageDigital PageClass = "digital"
	PageScanned PageClass = "scanned"
	PageHybrid  PageClass = "hybrid"
)

// TextStyle carries optional font metadata for a span. Neither field is
// required; exporters degrade gracefully when both are empty.
type TextStyle struct {
	Font string  `json:"font,omitempty"`
	Size float64 `json:"size,omitempty"`
	// HasSize distinguishes "size 0" from "no size recorded", since 0 is a
	// legitimate zero value for an unset float.
	HasSize bool `json:"-"`
}

// Span is a single run of text with its own bbox and provenance so a Line can
// mix spans recovered from different tracks.
type Span struct {
	Text       string        `json:"text"`
	BBox       geometry.BBox `json:"bbox"`
	Provenance Provenance    `json:"provenance"`
	Style      *TextStyle    `json:"style,omitempty"`
}

// Line is an ordered sequence of spans in reading order.
type Line struct {
	Spans []Span `json:"spans"`
}

// Text concatenates a line's span text with single-space separators.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Spans))
	for _, s := range l.Spans {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// BlockKind discriminates the Block tagged union.
type BlockKind string

const (
	KindText   BlockKind = "text"
	KindTable  BlockKind = "table"
	KindFigure BlockKind = "figure"
	KindMath   BlockKind = "math"
)

// BlockDebug records the provenance trail attached by the resolver.
type BlockDebug struct {
	ParserText *string  `json:"parserText,omitempty"`
	OcrText    *string  `json:"ocrText,omitempty"`
	FinalText  *string  `json:"finalText,omitempty"`
	Similarity *float64 `json:"similarity,omitempty"`
}

// Block is a tagged union over the four page-region kinds the fusion engine
// produces. Rather than modeling this with an interface hierarchy (which
// would force a type switch on concrete implementations everywhere a caller
// wants bbox/provenance/confidence), every variant is represented by a
// single struct carrying a Kind discriminator plus the fields each variant
// uses; accessors below give callers a common "any block" view. Kind-specific
// fields are zero-valued when not applicable (e.g. Lines is nil for a
// TableBlock).
type Block struct {
	Kind       BlockKind
	BBox       geometry.BBox
	Confidence float64
	Provenance Provenance
	Debug      *BlockDebug

	// TextBlock only.
	Lines []Line

	// MathBlock only.
	Latex string
}

// NewTextBlock constructs a text-kind block.
func NewTextBlock(bbox geometry.BBox, lines []Line, confidence float64, prov Provenance) Block {
	return Block{Kind: KindText, BBox: bbox, Lines: lines, Confidence: confidence, Provenance: prov}
}

// NewTableBlock constructs a table-kind block.
func NewTableBlock(bbox geometry.BBox, confidence float64, prov Provenance) Block {
	return Block{Kind: KindTable, BBox: bbox, Confidence: confidence, Provenance: prov}
}

// NewFigureBlock constructs a figure-kind block.
func NewFigureBlock(bbox geometry.BBox, confidence float64, prov Provenance) Block {
	return Block{Kind: KindFigure, BBox: bbox, Confidence: confidence, Provenance: prov}
}

// NewMathBlock constructs a math-kind block with optional LaTeX.
func NewMathBlock(bbox geometry.BBox, confidence float64, prov Provenance, latex string) Block {
	return Block{Kind: KindMath, BBox: bbox, Confidence: confidence, Provenance: prov, Latex: latex}
}

// TextContent concatenates every span's text across every line, joined by
// single spaces, for TextBlocks; other kinds return ("", false).
func (b Block) TextContent() (string, bool) {
	if b.Kind != KindText {
		return "", false
	}
	parts := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		parts = append(parts, line.Text())
	}
	return strings.Join(parts, " "), true
}

// WithBBox returns a copy of b with BBox replaced.
func (b Block) WithBBox(bbox geometry.BBox) Block {
	b.BBox = bbox
	return b
}

// WithConfidence returns a copy of b with Confidence replaced.
func (b Block) WithConfidence(c float64) Block {
	b.Confidence = c
	return b
}

// WithProvenance returns a copy of b with Provenance replaced.
func (b Block) WithProvenance(p Provenance) Block {
	b.Provenance = p
	return b
}

// WithDebug returns a copy of b with Debug replaced.
func (b Block) WithDebug(d *BlockDebug) Block {
	b.Debug = d
	return b
}

// PageHypothesis is one track's view of a page.
type PageHypothesis struct {
	PageIdx int     `json:"pageIdx"`
	Blocks  []Block `json:"blocks"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
}

// PageDebug holds verbatim copies of both tracks' input blocks so exporters
// can show both layers regardless of what fusion chose (spec §3).
type PageDebug struct {
	ParserBlocks []Block `json:"parserBlocks,omitempty"`
	OcrBlocks    []Block `json:"ocrBlocks,omitempty"`
}

// PageFinal is the fused result for one page.
type PageFinal struct {
	PageIdx int        `json:"pageIdx"`
	Class   PageClass  `json:"class"`
	Blocks  []Block    `json:"blocks"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Debug   *PageDebug `json:"debug,omitempty"`
}

// DocumentFinal is the ordered sequence of fused pages for a document.
type DocumentFinal struct {
	Pages []PageFinal `json:"pages"`
}

// CloneBlocks deep-copies a block slice so PageDebug snapshots are
// independent of whatever the resolver later does to its working copies.
func CloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		clone := b
		if b.Lines != nil {
			clone.Lines = make([]Line, len(b.Lines))
			for j, line := range b.Lines {
				clone.Lines[j] = Line{Spans: append([]Span(nil), line.Spans...)}
			}
		}
		if b.Debug != nil {
			d := *b.Debug
			clone.Debug = &d
		}
		out[i] = clone
	}
	return out
}
