// Package ocrtrack invokes the Python OCR bridge collaborator (spec §6) on a
// rendered page image and turns its validated token stream into an OCR-side
// PageHypothesis.
package ocrtrack

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/santhosh-tekuri/jsonschema/v5"

	docerrors "github.com/fulmenhq/docstruct/errors"
	"github.com/fulmenhq/docstruct/internal/docmodel"
	"github.com/fulmenhq/docstruct/internal/geometry"
)

//go:embed tokens.schema.json
var tokensSchemaJSON []byte

var tokensSchema = compileTokensSchema()

func compileTokensSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	const url = "mem://ocrtrack/tokens.schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(tokensSchemaJSON)); err != nil {
		panic(fmt.Sprintf("ocrtrack: invalid embedded token schema: %v", err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("ocrtrack: failed to compile embedded token schema: %v", err))
	}
	return schema
}

// token is the wire shape of one OCR bridge token (spec §6).
type token struct {
	Text       string    `json:"text"`
	BBox       [4]float64 `json:"bbox"`
	Confidence *float64  `json:"confidence,omitempty"`
	BlockType  string    `json:"block_type"`
	Latex      string    `json:"latex,omitempty"`
}

// BridgeScript is the name of the OCR bridge script looked up on PATH.
const BridgeScript = "docstruct_ocr_bridge.py"

const defaultConfidence = 0.5

// Page runs the OCR bridge against imagePath and returns the resulting
// hypothesis, with width/height carried through from the rasterizer.
func Page(imagePath string, pageIdx, width, height int) (docmodel.PageHypothesis, error) {
	info, err := os.Stat(imagePath)
	if err != nil || info.IsDir() {
		return docmodel.PageHypothesis{}, docerrors.InputMissing(imagePath, err)
	}
	if pageIdx < 0 {
		return docmodel.PageHypothesis{}, docerrors.MalformedHypothesis(fmt.Sprintf("negative page index %d", pageIdx))
	}

	scriptPath, err := exec.LookPath(BridgeScript)
	if err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed(BridgeScript, err)
	}

	pythonPath, err := exec.LookPath("python3")
	if err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed("python3", err)
	}

	cmd := exec.Command(pythonPath, scriptPath, imagePath)
	out, err := cmd.Output()
	if err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed(BridgeScript, err)
	}

	return parseTokens(out, pageIdx, width, height)
}

func parseTokens(data []byte, pageIdx, width, height int) (docmodel.PageHypothesis, error) {
	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed(BridgeScript, fmt.Errorf("parsing token JSON: %w", err))
	}
	if err := tokensSchema.Validate(payload); err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed(BridgeScript, fmt.Errorf("token stream failed schema validation: %w", err))
	}

	var tokens []token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return docmodel.PageHypothesis{}, docerrors.CollaboratorFailed(BridgeScript, fmt.Errorf("decoding validated tokens: %w", err))
	}

	// Spec §7: a collaborator returning no tokens is an empty hypothesis,
	// not an error.
	blocks := make([]docmodel.Block, 0, len(tokens))
	for _, tok := range tokens {
		block, err := tokenToBlock(tok)
		if err != nil {
			return docmodel.PageHypothesis{}, docerrors.MalformedHypothesis(err.Error())
		}
		blocks = append(blocks, block)
	}

	return docmodel.PageHypothesis{
		PageIdx: pageIdx,
		Blocks:  blocks,
		Width:   width,
		Height:  height,
	}, nil
}

func tokenToBlock(tok token) (docmodel.Block, error) {
	bbox := geometry.New(tok.BBox[0], tok.BBox[1], tok.BBox[2], tok.BBox[3])
	if !bbox.IsFinite() {
		return docmodel.Block{}, fmt.Errorf("ocrtrack: non-finite token bbox %+v", bbox)
	}

	confidence := defaultConfidence
	if tok.Confidence != nil {
		confidence = *tok.Confidence
	}

	switch tok.BlockType {
	case "text":
		line := docmodel.Line{Spans: []docmodel.Span{{Text: tok.Text, BBox: bbox, Provenance: docmodel.ProvenanceOcr}}}
		return docmodel.NewTextBlock(bbox, []docmodel.Line{line}, confidence, docmodel.ProvenanceOcr), nil
	case "table":
		return docmodel.NewTableBlock(bbox, confidence, docmodel.ProvenanceOcr), nil
	case "figure":
		return docmodel.NewFigureBlock(bbox, confidence, docmodel.ProvenanceOcr), nil
	case "math":
		return docmodel.NewMathBlock(bbox, confidence, docmodel.ProvenanceOcr, tok.Latex), nil
	default:
		return docmodel.Block{}, fmt.Errorf("ocrtrack: unknown block_type %q", tok.BlockType)
	}
}
