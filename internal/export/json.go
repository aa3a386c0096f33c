package export

import (
	"encoding/json"
	"path/filepath"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// WriteJSON serializes doc to <dir>/document.json using the discriminated
// block-union wire format docmodel.Block.MarshalJSON implements (spec §6).
func WriteJSON(dir string, doc docmodel.DocumentFinal) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "document.json"), data)
}
