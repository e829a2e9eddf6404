package search

import (
	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/history"
)

// sameMove compares two moves ignoring the value field packed into bits
// 16-31, since a PV move recalled from a previous iteration carries no
// ordering score while the freshly generated candidate might.
func sameMove(a, b board.Move) bool {
	return a.From() == b.From() && a.To() == b.To() && a.Flag() == b.Flag()
}

// selectMove implements component C's move-ordering at moves[i:], matching
// spec.md §4.C's either/or behaviour (open question 4, decided in
// SPEC_FULL.md §5.4): if following the PV and a PV move exists in range, it
// is swapped to i and selectMove returns immediately: the history-max pass
// never runs on the same call.
func selectMove(moves []board.Move, i, ply, depth int, followPV bool, pv *pvTable, hist *history.History, side board.Color) {
	if followPV && depth > 1 {
		target := pv.move(ply)
		if !target.IsNull() {
			for j := i; j < len(moves); j++ {
				if sameMove(moves[j], target) {
					moves[i], moves[j] = moves[j], moves[i]
					return
				}
			}
		}
		return
	}

	best := i
	bestScore := hist.Score(side, moves[i])
	for j := i + 1; j < len(moves); j++ {
		if s := hist.Score(side, moves[j]); s > bestScore {
			bestScore = s
			best = j
		}
	}
	if best != i {
		moves[i], moves[best] = moves[best], moves[i]
	}
}
