// Package hangul composes decomposed Hangul jamo sequences into precomposed
// syllables, the way a well-behaved PDF text layer would have encoded them in
// the first place. Parsers frequently emit jamo-by-jamo runs instead of
// composed syllables; this package repairs that upstream of the fusion
// engine's text-quality gating.
//
// Grounded on original_source/src/parser/hangul.rs, ported from
// unicode_normalization's NFKC/NFC passes to golang.org/x/text/unicode/norm,
// the same normalization package foundry/similarity.StripAccents uses for
// NFD/NFC.
package hangul

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const hangulBase = 0xAC00

const (
	jungseongCount = 21
	jongseongCount = 28
)

// choseongIndex maps a standalone choseong jamo (U+1100-U+1112) to its index.
func choseongIndex(r rune) (int, bool) {
	if r >= 0x1100 && r <= 0x1112 {
		return int(r - 0x1100), true
	}
	return 0, false
}

// jungseongIndex maps a standalone jungseong jamo (U+1161-U+1175) to its index.
func jungseongIndex(r rune) (int, bool) {
	if r >= 0x1161 && r <= 0x1175 {
		return int(r - 0x1161), true
	}
	return 0, false
}

// jongseongIndex maps a standalone jongseong jamo (U+11A8-U+11C2) to its
// 1-based index (0 means "no final consonant").
func jongseongIndex(r rune) (int, bool) {
	if r >= 0x11A8 && r <= 0x11C2 {
		return int(r-0x11A8) + 1, true
	}
	return 0, false
}

func isChoseong(r rune) bool {
	_, ok := choseongIndex(r)
	return ok
}

func isJungseong(r rune) bool {
	_, ok := jungseongIndex(r)
	return ok
}

func isJongseong(r rune) bool {
	_, ok := jongseongIndex(r)
	return ok
}

// isHangulJamoOrCompat reports whether r falls in one of the four jamo
// ranges from spec §4.3: Hangul Jamo, Compatibility Jamo, Jamo Extended-A/B.
func isHangulJamoOrCompat(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x11FF:
		return true
	case r >= 0x3130 && r <= 0x318F:
		return true
	case r >= 0xA960 && r <= 0xA97F:
		return true
	case r >= 0xD7B0 && r <= 0xD7FF:
		return true
	default:
		return false
	}
}

// removeIntraJamoWhitespace strips whitespace that sits between two jamo
// characters (e.g. OCR/parser output that inserted a space between split
// jamo glyphs) while leaving ordinary word-separating whitespace alone.
func removeIntraJamoWhitespace(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i, r := range runes {
		if unicode.IsSpace(r) {
			var prev, next rune
			hasPrev, hasNext := false, false
			for j := i - 1; j >= 0; j-- {
				if !unicode.IsSpace(runes[j]) {
					prev, hasPrev = runes[j], true
					break
				}
			}
			for j := i + 1; j < len(runes); j++ {
				if !unicode.IsSpace(runes[j]) {
					next, hasNext = runes[j], true
					break
				}
			}
			if hasPrev && hasNext && isHangulJamoOrCompat(prev) && isHangulJamoOrCompat(next) {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// composeSyllable builds a precomposed Hangul syllable from zero-based
// choseong/jungseong indices and a 0-or-1-based jongseong index.
func composeSyllable(cho, jung, jong int) (rune, bool) {
	if cho < 0 || cho >= 19 || jung < 0 || jung >= jungseongCount || jong < 0 || jong >= jongseongCount {
		return 0, false
	}
	code := hangulBase + (cho * jungseongCount * jongseongCount) + (jung * jongseongCount) + jong
	return rune(code), true
}

// Compose combines separated Hangul jamos into complete precomposed
// syllables. Ordinary word spacing survives; only whitespace sitting between
// two jamo-range characters is removed. Non-Hangul text passes through
// unchanged. The function is total: there is no failure mode.
func Compose(text string) string {
	// 1) NFKC: compatibility jamo (e.g. ㄱㅏ) -> canonical jamo.
	normalized := norm.NFKC.String(text)
	// 2) remove only whitespace between jamos so normal word breaks survive.
	compact := removeIntraJamoWhitespace(normalized)
	// 3) NFC to merge anything already combinable via standard composition.
	nfc := norm.NFC.String(compact)

	runes := []rune(nfc)
	var out strings.Builder
	out.Grow(len(nfc))

	i := 0
	for i < len(runes) {
		c := runes[i]

		if choIdx, ok := choseongIndex(c); ok && i+1 < len(runes) {
			if jungIdx, ok := jungseongIndex(runes[i+1]); ok {
				jongIdx, skip := 0, 2
				if i+2 < len(runes) {
					if idx, ok := jongseongIndex(runes[i+2]); ok {
						jongIdx, skip = idx, 3
					}
				}
				if syllable, ok := composeSyllable(choIdx, jungIdx, jongIdx); ok {
					out.WriteRune(syllable)
					i += skip
					continue
				}
			}
		}

		out.WriteRune(c)
		i++
	}

	return out.String()
}
