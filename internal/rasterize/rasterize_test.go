package rasterize

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/docstruct/fulhash"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestCachePageReusesExistingRender(t *testing.T) {
	tmp := t.TempDir()
	pdfPath := filepath.Join(tmp, "input.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 stub"), 0o644))

	cacheDir := filepath.Join(tmp, "cache")
	cache := NewCache(cacheDir, 200)

	digest, err := fulhash.HashString(
		pdfPath + "|1|200",
	)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	writePNG(t, filepath.Join(cacheDir, digest.Hex()+".png"), 1700, 2200)

	page, err := cache.Page(pdfPath, 1)
	require.NoError(t, err)
	assert.Equal(t, 1700, page.Width)
	assert.Equal(t, 2200, page.Height)
}

func TestCachePageInputMissing(t *testing.T) {
	cache := NewCache(t.TempDir(), 200)
	_, err := cache.Page("/nonexistent/no.pdf", 1)
	require.Error(t, err)
}
