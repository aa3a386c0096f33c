package textquality

import (
	"bufio"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// PreviewWords returns the first n Unicode-word-segmented tokens of text,
// joined by single spaces. It backs short diagnostic log messages and the
// markdown exporter's block preview; the token-Jaccard half of
// TextSimilarity and the compact-length predicates stay on plain whitespace
// splitting exactly as spec §4.2 defines them. Word-boundary segmentation
// matters here because a Korean sentence or CJK-mixed heading has no
// whitespace to split on at all.
func PreviewWords(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Split(words.SplitFunc)

	out := make([]string, 0, n)
	for scanner.Scan() && len(out) < n {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}
