package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// formatBlockText renders one block as plain text (spec §6 document.txt /
// page_NNN.txt), grounded on original_source/src/export/text_export.rs: text
// blocks dump their concatenated text, everything else a bracketed geometry
// placeholder.
func formatBlockText(b docmodel.Block) string {
	if b.Kind == docmodel.KindText {
		return blockText(b)
	}
	return fmt.Sprintf("[%s at x:%.0f y:%.0f w:%.0f h:%.0f]",
		strings.ToUpper(blockTypeLabel(b)), b.BBox.X0, b.BBox.Y0, b.BBox.Width(), b.BBox.Height())
}

// WriteText renders doc as document.txt plus one page_NNN.txt per page.
func WriteText(dir string, doc docmodel.DocumentFinal) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	var full strings.Builder
	for _, page := range doc.Pages {
		full.WriteString(fmt.Sprintf("=== Page %d ===\n\n", page.PageIdx+1))
		pageText := pageBodyText(page)
		full.WriteString(pageText)
		full.WriteString("\n")

		if err := writeFile(filepath.Join(dir, pageFilename("page", page.PageIdx, "txt")), []byte(pageText)); err != nil {
			return err
		}
	}

	return writeFile(filepath.Join(dir, "document.txt"), []byte(full.String()))
}

func pageBodyText(page docmodel.PageFinal) string {
	var b strings.Builder
	for _, block := range page.Blocks {
		text := formatBlockText(block)
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String()
}
