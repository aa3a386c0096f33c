// Package export renders a fused DocumentFinal to the on-disk formats spec
// §6 describes: document.json, per-page debug HTML, Markdown, and plain
// text, plus cropped figure/table/math images. Out of core (spec §1), but
// its data contract is the DocumentFinal the fusion driver produces.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	docerrors "github.com/fulmenhq/docstruct/errors"
	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// PageImage maps a page index to the rendered page image path used for
// figure cropping (markdown) and the background image (HTML debug view).
type PageImage = map[int]string

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return docerrors.ExportIO(dir, err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return docerrors.ExportIO(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return docerrors.ExportIO(path, err)
	}
	return nil
}

func pageFilename(prefix string, pageIdx int, ext string) string {
	return fmt.Sprintf("%s_%03d.%s", prefix, pageIdx+1, ext)
}

func blockText(b docmodel.Block) string {
	text, _ := b.TextContent()
	return text
}

func blockTypeLabel(b docmodel.Block) string {
	return string(b.Kind)
}
