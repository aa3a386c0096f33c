// Package parsertrack wraps the pdftotext collaborator (spec §6) to build
// the parser-side PageHypothesis: one TextBlock per pdftotext block, with
// Hangul jamo composed and heavily-degraded Korean text blanked out before it
// ever reaches alignment (spec §7: "parser text too degraded" is recovered
// locally, not raised as an error).
package parsertrack

import (
	"encoding/xml"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"

	docerrors "github.com/fulmenhq/docstruct/errors"
	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/geometry"
	"github.com/fulmenhq/docstruct/internal/hangul"
	"github.com/fulmenhq/docstruct/internal/textquality"
	"github.com/fulmenhq/docstruct/logging"
)

// bboxDoc mirrors poppler's pdftotext -bbox-layout XML output: a page
// containing blocks, each a sequence of lines, each a sequence of words with
// their own bounding boxes.
type bboxDoc struct {
	XMLName xml.Name  `xml:"doc"`
	Pages   []bboxPage `xml:"page"`
}

type bboxPage struct {
	Width  string     `xml:"width,attr"`
	Height string     `xml:"height,attr"`
	Blocks []bboxBlock `xml:"block"`
}

type bboxBlock struct {
	Lines []bboxLine `xml:"line"`
}

type bboxLine struct {
	XMin  string    `xml:"xMin,attr"`
	YMin  string    `xml:"yMin,attr"`
	XMax  string    `xml:"xMax,attr"`
	YMax  string    `xml:"yMax,attr"`
	Words []bboxWord `xml:"word"`
}

type bboxWord struct {
	XMin string `xml:"xMin,attr"`
	YMin string `xml:"yMin,attr"`
	XMax string `xml:"xMax,attr"`
	YMax string `xml:"yMax,attr"`
	Text string `xml:",chardata"`
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Page runs pdftotext -bbox-layout over a single page of path and returns the
// resulting hypothesis. logger may be nil, in which case degraded-text
// events are dropped rather than logged.
func Page(path string, pageIdx int, logger *logging.Logger) (docmodel.PageHypothesis, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return docmodel.PageHypothesis{}, docerrors.InputMissing(path, err)
	}
	if pageIdx < 0 {
		return docmodel.PageHypothesis{}, docerrors.MalformedHypothesis(fmt.Sprintf("negative page index %d", pageIdx))
	}

	if _, err := exec.LookPath("pdftotext"); err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed("pdftotext", err)
	}

	page1Based := pageIdx + 1
	cmd := exec.Command("pdftotext",
		"-bbox-layout",
		"-f", strconv.Itoa(page1Based),
		"-l", strconv.Itoa(page1Based),
		path, "-",
	)
	out, err := cmd.Output()
	if err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed("pdftotext", err)
	}

	return parseBBoxOutput(out, pageIdx, logger)
}

func parseBBoxOutput(data []byte, pageIdx int, logger *logging.Logger) (docmodel.PageHypothesis, error) {
	var doc bboxDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed("pdftotext", fmt.Errorf("parsing bbox-layout output: %w", err))
	}
	if len(doc.Pages) == 0 {
		return docmodel.PageHypothesis{PageIdx: pageIdx}, nil
	}

	page := doc.Pages[0]
	width := int(parseFloat(page.Width))
	height := int(parseFloat(page.Height))

	blocks := make([]docmodel.Block, 0, len(page.Blocks))
	for _, blk := range page.Blocks {
		block, ok, err := buildBlock(blk, logger)
		if err != nil {
			return docmodel.PageHypothesis{}, err
		}
		if ok {
			blocks = append(blocks, block)
		}
	}

	return docmodel.PageHypothesis{
		PageIdx: pageIdx,
		Blocks:  blocks,
		Width:   width,
		Height:  height,
	}, nil
}

func buildBlock(blk bboxBlock, logger *logging.Logger) (docmodel.Block, bool, error) {
	if len(blk.Lines) == 0 {
		return docmodel.Block{}, false, nil
	}

	lines := make([]docmodel.Line, 0, len(blk.Lines))
	union := geometry.BBox{}
	first := true

	for _, ln := range blk.Lines {
		bbox := geometry.New(parseFloat(ln.XMin), parseFloat(ln.YMin), parseFloat(ln.XMax), parseFloat(ln.YMax))
		if first {
			union = bbox
			first = false
		} else {
			union = union.Union(bbox)
		}

		spans := make([]docmodel.Span, 0, len(ln.Words))
		for _, w := range ln.Words {
			text := hangul.Compose(w.Text)
			wordBBox := geometry.New(parseFloat(w.XMin), parseFloat(w.YMin), parseFloat(w.XMax), parseFloat(w.YMax))
			spans = append(spans, docmodel.Span{Text: text, BBox: wordBBox, Provenance: docmodel.ProvenanceParser})
		}
		lines = append(lines, docmodel.Line{Spans: spans})
	}

	if !union.IsFinite() {
		return docmodel.Block{}, false, docerrors.MalformedHypothesis(fmt.Sprintf("non-finite parser block bbox %+v", union))
	}

	block := docmodel.NewTextBlock(union, lines, 1.0, docmodel.ProvenanceParser)
	if text, ok := block.TextContent(); ok && textquality.IsKoreanParserHeavilyDegraded(text) {
		if logger != nil {
			logger.Warn("parser text too degraded, blanking block", zap.String("preview", textquality.PreviewWords(text, 6)))
		}
		block = blankTextBlock(block)
	}
	return block, true, nil
}

// blankTextBlock returns a copy of block with every span's text cleared,
// keeping bboxes intact so alignment can still place the block (spec §7).
func blankTextBlock(block docmodel.Block) docmodel.Block {
	lines := make([]docmodel.Line, len(block.Lines))
	for i, ln := range block.Lines {
		spans := make([]docmodel.Span, len(ln.Spans))
		for j, s := range ln.Spans {
			s.Text = ""
			spans[j] = s
		}
		lines[i] = docmodel.Line{Spans: spans}
	}
	block.Lines = lines
	return block
}
