// Package textquality implements the Korean-aware text quality heuristics,
// similarity scoring, and OCR noise detection used to gate which track's
// text the resolver prefers (spec §4.2).
package textquality

import (
	"strings"
	"unicode"

	"github.com/fulmenhq/docstruct/foundry/similarity"
)

// isSyllable reports whether r is a precomposed Hangul syllable (U+AC00-U+D7A3).
func isSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// isJamo reports whether r falls in one of the four Hangul jamo ranges, the
// same ranges the hangul package uses to detect decomposed input.
func isJamo(r rune) bool {
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

// isHanja reports whether r is a CJK ideograph code point (spec §4.2).
func isHanja(r rune) bool {
	switch {
	case r >= 0x3400 && r <= 0x4DBF:
		return true
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	default:
		return false
	}
}

// HasKorean reports whether text contains any Hangul syllable or jamo.
func HasKorean(text string) bool {
	for _, r := range text {
		if isSyllable(r) || isJamo(r) {
			return true
		}
	}
	return false
}

// HanjaCount counts Han ideograph code points in text.
func HanjaCount(text string) int {
	count := 0
	for _, r := range text {
		if isHanja(r) {
			count++
		}
	}
	return count
}

// KoreanQuality scores text as 2*syllables - 3*jamos. Composed syllables
// push the score up; leftover decomposed jamo runs push it down, which is
// how the resolver distinguishes a clean Korean parser/OCR block from a
// degraded, jamo-decomposed one.
func KoreanQuality(text string) int {
	syllables, jamos := 0, 0
	for _, r := range text {
		switch {
		case isSyllable(r):
			syllables++
		case isJamo(r):
			jamos++
		}
	}
	return 2*syllables - 3*jamos
}

// SyllableCount counts precomposed Hangul syllable characters in text, used
// by the filter cascade's Korean-reliability gate (spec §4.7 stage 4).
func SyllableCount(text string) int {
	n := 0
	for _, r := range text {
		if isSyllable(r) {
			n++
		}
	}
	return n
}

// IsKoreanParserDegraded reports the "badly decomposed Korean" predicate.
func IsKoreanParserDegraded(text string) bool {
	return HasKorean(text) && KoreanQuality(text) < -2
}

// IsKoreanParserHeavilyDegraded is the stricter variant used by the filter
// cascade's stage 1 (spec §4.7).
func IsKoreanParserHeavilyDegraded(text string) bool {
	return HasKorean(text) && KoreanQuality(text) < -10
}

// compactLength returns the rune count of text with all whitespace removed.
func compactLength(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CompactLength is the exported form of compactLength, used by the filter
// cascade's aggressive-mode short-OCR-text check (spec §4.7 stage 3).
func CompactLength(text string) int {
	return compactLength(text)
}

// NormalizeForDedup lowercases text and collapses runs of whitespace to a
// single space, the normalization the redundant-OCR-block filter uses before
// comparing parser and OCR text (spec §4.7 stage 2).
func NormalizeForDedup(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, " ")
}

// alphanumericOrHangulCount counts letters, digits, and Hangul syllables.
func alphanumericOrHangulCount(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || isSyllable(r) {
			n++
		}
	}
	return n
}

// uniqueCharCount counts distinct runes in text.
func uniqueCharCount(text string) int {
	seen := make(map[rune]struct{})
	for _, r := range text {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// IsNoisyOCR implements the §4.2 noisy-OCR predicate: any of a handful of
// length/script heuristics that flag OCR garbage rather than real text.
func IsNoisyOCR(text string) bool {
	compact := compactLength(text)
	if compact <= 1 {
		return true
	}
	if alphanumericOrHangulCount(text) <= 1 {
		return true
	}
	if compact >= 6 && uniqueCharCount(text) <= 2 {
		return true
	}
	if HasKorean(text) && HanjaCount(text) >= 2 {
		return true
	}
	if HasKorean(text) && KoreanQuality(text) < -6 {
		return true
	}
	return false
}

// digitsOf extracts the ASCII digit stream from text.
func digitsOf(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func numericMismatch(a, b string) bool {
	da, db := digitsOf(a), digitsOf(b)
	return da != "" && db != "" && da != db
}

// tokenJaccard computes the Jaccard overlap of whitespace-split tokens.
func tokenJaccard(a, b string) float64 {
	aTokens := strings.Fields(a)
	bTokens := strings.Fields(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}
	aSet := make(map[string]struct{}, len(aTokens))
	for _, tok := range aTokens {
		aSet[tok] = struct{}{}
	}
	bSet := make(map[string]struct{}, len(bTokens))
	for _, tok := range bTokens {
		bSet[tok] = struct{}{}
	}
	intersection := 0
	for tok := range aSet {
		if _, ok := bSet[tok]; ok {
			intersection++
		}
	}
	union := len(aSet)
	for tok := range bSet {
		if _, ok := aSet[tok]; !ok {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// TextSimilarity combines normalized edit distance with whitespace-token
// Jaccard overlap, then penalizes mismatched digit streams. The edit-distance
// half is foundry/similarity.Score, the normalized-Levenshtein ratio.
func TextSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	editScore := similarity.Score(a, b)
	jaccard := tokenJaccard(a, b)
	score := (editScore + jaccard) / 2
	if numericMismatch(a, b) {
		score -= 0.1
	}
	return clamp01(score)
}
