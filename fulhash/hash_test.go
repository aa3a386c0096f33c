package fulhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDefaultAlgorithmIsXXH3(t *testing.T) {
	d, err := Hash([]byte("render-cache-key"))
	assert.NoError(t, err)
	assert.Equal(t, XXH3_128, d.Algorithm())
	assert.NotEmpty(t, d.Hex())
}

func TestHashIsDeterministic(t *testing.T) {
	a, err1 := Hash([]byte("page-7-300dpi"))
	b, err2 := Hash([]byte("page-7-300dpi"))
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, a.Hex(), b.Hex())
}

func TestHashDiffersOnDifferentInput(t *testing.T) {
	a, _ := Hash([]byte("page-7-300dpi"))
	b, _ := Hash([]byte("page-8-300dpi"))
	assert.NotEqual(t, a.Hex(), b.Hex())
}

func TestHashSHA256Algorithm(t *testing.T) {
	d, err := Hash([]byte("content"), WithAlgorithm(SHA256))
	assert.NoError(t, err)
	assert.Equal(t, SHA256, d.Algorithm())
	assert.Len(t, d.Bytes(), 32)
}

func TestHashReaderMatchesHash(t *testing.T) {
	data := []byte("streamed page content")
	direct, err := Hash(data)
	assert.NoError(t, err)

	streamed, err := HashReader(strings.NewReader(string(data)))
	assert.NoError(t, err)
	assert.Equal(t, direct.Hex(), streamed.Hex())
}

func TestStreamingHasherResetAllowsReuse(t *testing.T) {
	h, err := NewHasher()
	assert.NoError(t, err)

	h.Write([]byte("first"))
	first := h.Sum()

	h.Reset()
	h.Write([]byte("first"))
	second := h.Sum()

	assert.Equal(t, first.Hex(), second.Hex())
}

func TestFormatAndParseDigestRoundTrip(t *testing.T) {
	d, err := Hash([]byte("round trip"))
	assert.NoError(t, err)

	s := FormatDigest(d)
	parsed, err := ParseDigest(s)
	assert.NoError(t, err)
	assert.Equal(t, d.Algorithm(), parsed.Algorithm())
	assert.Equal(t, d.Hex(), parsed.Hex())
}

func TestHashUnsupportedAlgorithmErrors(t *testing.T) {
	_, err := Hash([]byte("x"), WithAlgorithm(Algorithm("md5")))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
