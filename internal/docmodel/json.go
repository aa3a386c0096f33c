package docmodel

import (
	"encoding/json"
	"fmt"

	"github.com/fulmenhq/docstruct/internal/geometry"
)

// wireType maps a BlockKind to the discriminated-union tag spec §6 requires
// for document.json.
func (k BlockKind) wireType() string {
	switch k {
	case KindText:
		return "TextBlock"
	case KindTable:
		return "TableBlock"
	case KindFigure:
		return "FigureBlock"
	case KindMath:
		return "MathBlock"
	default:
		return string(k)
	}
}

func kindFromWireType(t string) (BlockKind, error) {
	switch t {
	case "TextBlock":
		return KindText, nil
	case "TableBlock":
		return KindTable, nil
	case "FigureBlock":
		return KindFigure, nil
	case "MathBlock":
		return KindMath, nil
	default:
		return "", fmt.Errorf("docmodel: unknown block type %q", t)
	}
}

// blockWire is the on-disk shape of a Block: a "type"-discriminated union
// with kind-specific fields omitted when not applicable.
type blockWire struct {
	Type       string        `json:"type"`
	BBox       geometry.BBox `json:"bbox"`
	Confidence float64       `json:"confidence"`
	Provenance Provenance    `json:"provenance"`
	Debug      *BlockDebug   `json:"debug,omitempty"`
	Lines      []Line        `json:"lines,omitempty"`
	Latex      string        `json:"latex,omitempty"`
}

// MarshalJSON renders a Block as the document.json wire format: a
// "type"-discriminated union (spec §6).
func (b Block) MarshalJSON() ([]byte, error) {
	wire := blockWire{
		Type:       b.Kind.wireType(),
		BBox:       b.BBox,
		Confidence: b.Confidence,
		Provenance: b.Provenance,
		Debug:      b.Debug,
	}
	if b.Kind == KindText {
		wire.Lines = b.Lines
	}
	if b.Kind == KindMath {
		wire.Latex = b.Latex
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the document.json wire format back into a Block.
func (b *Block) UnmarshalJSON(data []byte) error {
	var wire blockWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	kind, err := kindFromWireType(wire.Type)
	if err != nil {
		return err
	}
	*b = Block{
		Kind:       kind,
		BBox:       wire.BBox,
		Confidence: wire.Confidence,
		Provenance: wire.Provenance,
		Debug:      wire.Debug,
		Lines:      wire.Lines,
		Latex:      wire.Latex,
	}
	return nil
}
