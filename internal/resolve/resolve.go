package resolve

import (
	"github.com/fulmenhq/docstruct/internal/align"
	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// Page resolves one page's alignment result into the final, filtered block
// list for that page, given its already-determined page class. Reading
// order is preserved: matched pairs in A's input order, then unmatched-A
// orphans, then unmatched-B orphans (spec §5 ordering guarantee).
func Page(result align.Result, class docmodel.PageClass) []docmodel.Block {
	blocks := make([]docmodel.Block, 0, len(result.Matched)+len(result.UnmatchedA)+len(result.UnmatchedB))

	for _, pair := range result.Matched {
		blocks = append(blocks, resolvePair(pair, class))
	}
	for _, b := range result.UnmatchedA {
		blocks = append(blocks, promoteParserOrphan(b, class))
	}
	for _, b := range result.UnmatchedB {
		blocks = append(blocks, promoteOcrOrphan(b, class))
	}

	return runCascade(blocks, class)
}
