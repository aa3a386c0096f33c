package export

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// WriteHTMLDebug renders one debug/page_NNN.html per page: the rendered
// page image as a background, with overlaid divs for every parser, OCR, and
// fused block carrying the data attributes spec §6 lists. Grounded on
// original_source/src/export/html_debug_export.rs.
func WriteHTMLDebug(dir string, doc docmodel.DocumentFinal, pageImages PageImage) error {
	debugDir := filepath.Join(dir, "debug")
	if err := ensureDir(debugDir); err != nil {
		return err
	}

	for _, page := range doc.Pages {
		var blocksHTML strings.Builder
		if page.Debug != nil {
			for _, b := range page.Debug.ParserBlocks {
				blocksHTML.WriteString(blockToDiv(b, "parser"))
			}
			for _, b := range page.Debug.OcrBlocks {
				blocksHTML.WriteString(blockToDiv(b, "ocr"))
			}
		}
		for _, b := range page.Blocks {
			blocksHTML.WriteString(blockToDiv(b, "fused"))
		}

		imagePath := ""
		if p, ok := pageImages[page.PageIdx]; ok {
			rel, err := filepath.Rel(debugDir, p)
			if err == nil {
				imagePath = rel
			} else {
				imagePath = p
			}
		}

		pageHTML := fmt.Sprintf(htmlTemplate, page.PageIdx+1, imagePath, blocksHTML.String())
		path := filepath.Join(debugDir, pageFilename("page", page.PageIdx, "html"))
		if err := writeFile(path, []byte(pageHTML)); err != nil {
			return err
		}
	}

	return nil
}

func blockToDiv(b docmodel.Block, layer string) string {
	text, _ := b.TextContent()
	debug := b.Debug
	if debug == nil {
		debug = &docmodel.BlockDebug{}
	}

	similarity := ""
	if debug.Similarity != nil {
		similarity = fmt.Sprintf("%.3f", *debug.Similarity)
	}

	return fmt.Sprintf(
		"<div class='bbox %s %s' style='left:%gpx; top:%gpx; width:%gpx; height:%gpx;' "+
			"data-text='%s' data-type='%s' data-provenance='%s' data-confidence='%g' "+
			"data-parser-text='%s' data-ocr-text='%s' data-final-text='%s' data-similarity='%s'></div>",
		layer, blockTypeLabel(b),
		b.BBox.X0, b.BBox.Y0, b.BBox.Width(), b.BBox.Height(),
		html.EscapeString(text), blockTypeLabel(b), string(b.Provenance), b.Confidence,
		html.EscapeString(derefString(debug.ParserText)),
		html.EscapeString(derefString(debug.OcrText)),
		html.EscapeString(derefString(debug.FinalText)),
		similarity,
	)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset='utf-8'>
<title>docstruct debug page %d</title>
<style>
body { margin: 0; font-family: Arial, sans-serif; }
#canvas { position: relative; }
#canvas img { display: block; }
.bbox { position: absolute; border: 2px solid rgba(0,0,255,0.4); box-sizing: border-box; }
.bbox.parser { border-color: rgba(0,0,255,0.6); }
.bbox.ocr { border-color: rgba(255,0,0,0.6); }
.bbox.fused { border-color: rgba(0,128,0,0.6); }
.bbox.text { background: rgba(100,100,255,0.1); }
.bbox.table { background: rgba(255,165,0,0.15); border-style: dashed; }
.bbox.figure { background: rgba(128,0,128,0.1); }
.bbox.math { background: rgba(0,200,200,0.15); }
#info { position: fixed; right: 10px; top: 10px; background: #fff; padding: 10px; border: 1px solid #ddd; max-width: 300px; }
</style>
</head>
<body>
<div id='info'>Click a block to inspect.</div>
<div id='canvas'>
<img src='%s' />
%s
</div>
<script>
const info = document.getElementById('info');
for (const el of document.querySelectorAll('.bbox')) {
  el.addEventListener('click', () => {
    info.innerHTML = ` + "`type: ${el.dataset.type}<br/>provenance: ${el.dataset.provenance}<br/>confidence: ${el.dataset.confidence}<br/>similarity: ${el.dataset.similarity}<br/>parser_text: ${el.dataset.parserText}<br/>ocr_text: ${el.dataset.ocrText}<br/>final_text: ${el.dataset.finalText}`" + `;
  });
}
</script>
</body>
</html>`
