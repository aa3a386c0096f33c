package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// formatBlockMarkdown renders one already-fused block as Markdown. Text
// blocks dump their text; table/figure/math blocks crop an image out of the
// page render when one is available (pageImagePath != ""), falling back to
// a bracketed geometry placeholder otherwise. Grounded on
// original_source/src/export/markdown_export.rs::format_block.
func formatBlockMarkdown(imageDir, pageImagePath string, b docmodel.Block, pageIdx, blockIdx int) string {
	if b.Kind == docmodel.KindText {
		return blockText(b)
	}

	if b.Kind == docmodel.KindMath && b.Latex != "" {
		return fmt.Sprintf("\n**Math Equation %d:**\n\n$$\n%s\n$$\n", blockIdx+1, b.Latex)
	}

	if pageImagePath == "" {
		return fmt.Sprintf("\n[%s: %.0fx%.0f at (%.0f, %.0f)]\n",
			strings.ToUpper(blockTypeLabel(b)), b.BBox.Width(), b.BBox.Height(), b.BBox.X0, b.BBox.Y0)
	}

	imgPath, err := cropBlockImage(imageDir, pageImagePath, b.BBox, pageIdx, blockIdx, blockTypeLabel(b))
	if err != nil || imgPath == "" {
		return fmt.Sprintf("\n[%s: %.0fx%.0f at (%.0f, %.0f)]\n",
			strings.ToUpper(blockTypeLabel(b)), b.BBox.Width(), b.BBox.Height(), b.BBox.X0, b.BBox.Y0)
	}

	label := capitalize(blockTypeLabel(b))
	return fmt.Sprintf("\n**%s %d:**\n\n![%s](%s)\n", label, blockIdx+1, label, imgPath)
}

// WriteMarkdown renders doc as document.md plus one page_NNN.md per page,
// cropping table/figure/math regions into <dir>/figures when pageImages
// supplies a rendered page image for that page index.
func WriteMarkdown(dir string, doc docmodel.DocumentFinal, pageImages PageImage) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	imageDir := filepath.Join(dir, "figures")

	var full strings.Builder
	full.WriteString("# Document\n\n")

	for _, page := range doc.Pages {
		full.WriteString(fmt.Sprintf("---\n\n## Page %d\n\n", page.PageIdx+1))
		body := pageBodyMarkdown(imageDir, pageImages[page.PageIdx], page)
		full.WriteString(body)

		pageMD := fmt.Sprintf("# Page %d\n\n%s", page.PageIdx+1, body)
		if err := writeFile(filepath.Join(dir, pageFilename("page", page.PageIdx, "md")), []byte(pageMD)); err != nil {
			return err
		}
	}

	return writeFile(filepath.Join(dir, "document.md"), []byte(full.String()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pageBodyMarkdown(imageDir, pageImagePath string, page docmodel.PageFinal) string {
	var b strings.Builder
	for idx, block := range page.Blocks {
		text := formatBlockMarkdown(imageDir, pageImagePath, block, page.PageIdx, idx)
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String()
}
