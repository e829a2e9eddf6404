package board

// PieceValues holds the material weights used by Eval, indexed by
// PieceType. SetPieceValues overrides pawn..queen from
// internal/config's evalConfiguration so the ambient config stack has a
// real consumer; cmd/chess0go calls it once after config.Setup().
var PieceValues = [7]int{0, 100, 320, 330, 500, 900, 0}

// SetPieceValues overrides the material weights Eval uses. King's value
// (index King) is left at 0: it is never traded and must not bias material
// counting.
func SetPieceValues(pawn, knight, bishop, rook, queen int) {
	PieceValues[Pawn] = pawn
	PieceValues[Knight] = knight
	PieceValues[Bishop] = bishop
	PieceValues[Rook] = rook
	PieceValues[Queen] = queen
}

// Eval returns a static score from the side-to-move's perspective, in
// centipawns: material balance plus a small mobility term. This stands in
// for the spec's external "position evaluator" collaborator (§1/§6) and is
// intentionally simple — the search core, not the evaluator, is what this
// repository is grounded on.
func (b *Board) Eval() int {
	material := 0
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() {
			continue
		}
		v := PieceValues[p.Type()]
		if p.Color() == White {
			material += v
		} else {
			material -= v
		}
	}

	mobility := len(b.GeneratePseudoLegalMoves(make([]Move, 0, 48)))
	b.side = b.side.Other()
	oppMobility := len(b.GeneratePseudoLegalMoves(make([]Move, 0, 48)))
	b.side = b.side.Other()

	mobilityScore := mobility - oppMobility

	score := material
	if b.side == Black {
		score = -score
	}
	return score + mobilityScore/10
}
