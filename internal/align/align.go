// Package align implements the greedy block aligner (spec §4.4): a
// deliberately non-optimal one-to-one matcher between a parser-track block
// list and an OCR-track block list, using input order as a stable,
// reading-order-preserving tie-breaker.
package align

import (
	"math"

	"github.com/fulmenhq/docstruct/internal/docmodel"
)

// MatchedPair is one accepted alignment between a parser block and an OCR
// block, carrying the raw geometry the resolver needs for its own decisions.
type MatchedPair struct {
	A              docmodel.Block
	B              docmodel.Block
	IoU            float64
	CenterDistance float64
}

// Result is the outcome of aligning two block sequences.
type Result struct {
	Matched    []MatchedPair
	UnmatchedA []docmodel.Block
	UnmatchedB []docmodel.Block
}

func kindBonus(a, b docmodel.Block) float64 {
	if a.Kind == b.Kind {
		return 0.1
	}
	return 0
}

func score(a, b docmodel.Block) float64 {
	iou := a.BBox.IoU(b.BBox)
	dist := a.BBox.CenterDistance(b.BBox)
	return iou + kindBonus(a, b) - dist/10000
}

// Blocks greedily matches a (parser) against b (OCR) in a's input order,
// picking for each a the highest-scoring not-yet-used b (first encountered
// wins on ties), then accepting only when the raw iou/distance pass the
// acceptance gate. Unaccepted a's and never-used b's fall through to the
// unmatched lists.
func Blocks(a, b []docmodel.Block) Result {
	used := make([]bool, len(b))
	var matched []MatchedPair
	var unmatchedA []docmodel.Block

	for _, av := range a {
		bestIdx := -1
		bestScore := math.Inf(-1)
		for idx, bv := range b {
			if used[idx] {
				continue
			}
			s := score(av, bv)
			if s > bestScore {
				bestScore = s
				bestIdx = idx
			}
		}

		if bestIdx < 0 {
			unmatchedA = append(unmatchedA, av)
			continue
		}

		bv := b[bestIdx]
		iou := av.BBox.IoU(bv.BBox)
		dist := av.BBox.CenterDistance(bv.BBox)
		if iou > 0.1 || dist < 150 {
			used[bestIdx] = true
			matched = append(matched, MatchedPair{A: av, B: bv, IoU: iou, CenterDistance: dist})
		} else {
			unmatchedA = append(unmatchedA, av)
		}
	}

	var unmatchedB []docmodel.Block
	for idx, bv := range b {
		if !used[idx] {
			unmatchedB = append(unmatchedB, bv)
		}
	}

	return Result{Matched: matched, UnmatchedA: unmatchedA, UnmatchedB: unmatchedB}
}
