package search

import "github.com/mkdlabs/chess0go/internal/board"

// pvTable is the triangular PV store of spec.md §3: pvTable[ply][i] holds
// the i-th move of the PV discovered at ply, pvLength[ply] its length.
// Grounded on original_source/src/search.cpp's triangularArray/
// triangularLength and the teacher's savePV/getPVLine shape.
type pvTable struct {
	moves  [MaxPly][MaxPly]board.Move
	length [MaxPly]int
}

// reset zeroes the triangle, called once per think() per spec.md §4.G step 2.
func (t *pvTable) reset() {
	*t = pvTable{}
}

// startNode sets triangularLength[ply] = ply, spec.md §4.F step 1.
func (t *pvTable) startNode(ply int) {
	t.length[ply] = ply
}

// record appends move at ply and copies up the child's PV (spec.md §4.F
// "New best" step): triangularArray[ply][ply] = move, then copy
// triangularArray[ply+1][j] for j in [ply+1, triangularLength[ply+1]).
func (t *pvTable) record(ply int, move board.Move) {
	t.moves[ply][ply] = move
	for j := ply + 1; j < t.length[ply+1]; j++ {
		t.moves[ply][j] = t.moves[ply+1][j]
	}
	t.length[ply] = t.length[ply+1]
}

// line returns the PV discovered at ply 0 as a slice, oldest move first.
func (t *pvTable) line() []board.Move {
	n := t.length[0]
	out := make([]board.Move, n)
	copy(out, t.moves[0][:n])
	return out
}

// move returns the ply-th move recorded at the given root-anchored PV,
// used by follow-PV move ordering (spec.md §4.C step 1: lastPV[ply]).
func (t *pvTable) move(ply int) board.Move {
	if ply >= t.length[0] {
		return board.NullMove
	}
	return t.moves[0][ply]
}
