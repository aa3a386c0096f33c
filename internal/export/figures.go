package export

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	docerrors "github.com/fulmenhq/docstruct/errors"
	"github.com/fulmenhq/docstruct/internal/geometry"
)

// cropSubImage is the subset of image.Image croppers need: SubImage plus
// Bounds, which every stdlib-decoded image (png, jpeg) satisfies via
// image.RGBA/NRGBA/YCbCr's concrete types.
type cropSubImage interface {
	image.Image
	SubImage(r image.Rectangle) image.Image
}

// cropBlockImage crops bbox out of the page image at pageImagePath and
// writes it to <imageDir>/page_NNN_<blockType>__NN.png, returning a path
// relative to the exporter's output directory for embedding in Markdown.
// Grounded on original_source/src/export/markdown_export.rs::crop_block_image;
// the standard library's image/png and image/jpeg decoders stand in for the
// original's `image` crate since no example repo ships a raster-image
// library (see DESIGN.md).
func cropBlockImage(imageDir, pageImagePath string, bbox geometry.BBox, pageIdx, blockIdx int, blockType string) (string, error) {
	f, err := os.Open(pageImagePath) // #nosec G304 -- pageImagePath comes from the rasterizer, not user input
	if err != nil {
		return "", docerrors.ExportIO(pageImagePath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", docerrors.ExportIO(pageImagePath, fmt.Errorf("decoding page image: %w", err))
	}

	bounds := img.Bounds()
	x0 := clampInt(int(bbox.X0), bounds.Min.X, bounds.Max.X)
	y0 := clampInt(int(bbox.Y0), bounds.Min.Y, bounds.Max.Y)
	x1 := clampInt(int(bbox.X1), bounds.Min.X, bounds.Max.X)
	y1 := clampInt(int(bbox.Y1), bounds.Min.Y, bounds.Max.Y)
	if x1 <= x0 || y1 <= y0 {
		return "", nil
	}

	cropper, ok := img.(cropSubImage)
	if !ok {
		return "", nil
	}
	cropped := cropper.SubImage(image.Rect(x0, y0, x1, y1))

	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return "", docerrors.ExportIO(imageDir, err)
	}

	filename := fmt.Sprintf("page_%03d_%s__%02d.png", pageIdx+1, blockType, blockIdx)
	outPath := filepath.Join(imageDir, filename)

	out, err := os.Create(outPath) // #nosec G304 -- path built from validated components
	if err != nil {
		return "", docerrors.ExportIO(outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, cropped); err != nil {
		return "", docerrors.ExportIO(outPath, err)
	}

	return filepath.Join("figures", filename), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
