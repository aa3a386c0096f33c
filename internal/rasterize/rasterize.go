// Package rasterize wraps the pdftoppm collaborator (spec §6) and caches
// rendered page images by a content hash of (path, page index, dpi) so
// repeated conversions of the same document at the same DPI skip re-running
// the external renderer.
package rasterize

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"os/exec"
	"path/filepath"

	docerrors "github.com/fulmenhq/docstruct/errors"
	"github.com/fulmenhq/docstruct/fulhash"
)

// Page is a rendered page image: the path it was written to, plus its
// nominal dimensions (spec §6: "width/height are nominal and may be
// approximate").
type Page struct {
	Path   string
	Width  int
	Height int
}

// Cache renders pages through pdftoppm, reusing a prior render when one
// already exists for the same (path, page, dpi) digest under dir.
type Cache struct {
	dir string
	dpi int
}

// NewCache returns a Cache that writes/reads rendered pages under dir at the
// given DPI. dir is created lazily on first render.
func NewCache(dir string, dpi int) *Cache {
	return &Cache{dir: dir, dpi: dpi}
}

// Page renders page index (1-based, matching pdftoppm -f/-l) of the PDF at
// path, reusing a cached render when present.
func (c *Cache) Page(path string, page int) (Page, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Page{}, docerrors.InputMissing(path, err)
	}

	key := fmt.Sprintf("%s|%d|%d", path, page, c.dpi)
	digest, err := fulhash.HashString(key)
	if err != nil {
		return Page{}, fmt.Errorf("rasterize: hashing cache key: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return Page{}, docerrors.ExportIO(c.dir, err)
	}

	outPrefix := filepath.Join(c.dir, digest.Hex())
	outPath := outPrefix + ".png"

	if _, err := os.Stat(outPath); err == nil {
		return c.describe(outPath)
	}

	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return Page{}, docerrors.CollaboratorFailed("pdftoppm", err)
	}

	cmd := exec.Command("pdftoppm",
		"-png",
		"-r", fmt.Sprintf("%d", c.dpi),
		"-f", fmt.Sprintf("%d", page),
		"-l", fmt.Sprintf("%d", page),
		"-singlefile",
		path, outPrefix,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return Page{}, docerrors.CollaboratorFailed("pdftoppm", fmt.Errorf("%w: %s", err, out))
	}

	return c.describe(outPath)
}

func (c *Cache) describe(path string) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, docerrors.CollaboratorFailed("pdftoppm", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Page{}, docerrors.CollaboratorFailed("pdftoppm", fmt.Errorf("decoding rendered page: %w", err))
	}

	return Page{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}
