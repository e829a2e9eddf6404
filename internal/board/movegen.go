package board

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func onBoard(file, rank int) bool { return file >= 0 && file <= 7 && rank >= 0 && rank <= 7 }

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to
// move to moves, the way the teacher's movegen.GeneratePseudoLegalMoves does
// (castling and en-passant legality still need the caller's IsLegalMove
// check, matching original_source's separate legality pass in alphabetapvs).
func (b *Board) GeneratePseudoLegalMoves(moves []Move) []Move {
	us := b.side
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() || p.Color() != us {
			continue
		}
		switch p.Type() {
		case Pawn:
			moves = b.genPawnMoves(sq, moves)
		case Knight:
			moves = b.genLeaper(sq, knightOffsets[:], moves)
		case King:
			moves = b.genLeaper(sq, kingOffsets[:], moves)
			moves = b.genCastles(moves)
		case Bishop:
			moves = b.genSlider(sq, bishopDirs[:], moves)
		case Rook:
			moves = b.genSlider(sq, rookDirs[:], moves)
		case Queen:
			moves = b.genSlider(sq, bishopDirs[:], moves)
			moves = b.genSlider(sq, rookDirs[:], moves)
		}
	}
	return moves
}

func (b *Board) genLeaper(from Square, offsets [][2]int, moves []Move) []Move {
	us := b.squares[from].Color()
	for _, o := range offsets {
		file, rank := from.File()+o[0], from.Rank()+o[1]
		if !onBoard(file, rank) {
			continue
		}
		to := SquareOf(file, rank)
		target := b.squares[to]
		if target.IsEmpty() {
			moves = append(moves, NewMove(from, to, Quiet))
		} else if target.Color() != us {
			moves = append(moves, NewMove(from, to, Capture))
		}
	}
	return moves
}

func (b *Board) genSlider(from Square, dirs [][2]int, moves []Move) []Move {
	us := b.squares[from].Color()
	for _, d := range dirs {
		file, rank := from.File(), from.Rank()
		for {
			file += d[0]
			rank += d[1]
			if !onBoard(file, rank) {
				break
			}
			to := SquareOf(file, rank)
			target := b.squares[to]
			if target.IsEmpty() {
				moves = append(moves, NewMove(from, to, Quiet))
				continue
			}
			if target.Color() != us {
				moves = append(moves, NewMove(from, to, Capture))
			}
			break
		}
	}
	return moves
}

func (b *Board) genPawnMoves(from Square, moves []Move) []Move {
	us := b.side
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}
	file, rank := from.File(), from.Rank()

	oneTo := SquareOf(file, rank+dir)
	if onBoard(file, rank+dir) && b.squares[oneTo].IsEmpty() {
		moves = appendPawnAdvance(moves, from, oneTo, rank+dir == promoRank)
		if rank == startRank {
			twoTo := SquareOf(file, rank+2*dir)
			if b.squares[twoTo].IsEmpty() {
				moves = append(moves, NewMove(from, twoTo, DoublePawnPush))
			}
		}
	}

	for _, df := range []int{-1, 1} {
		cf := file + df
		cr := rank + dir
		if !onBoard(cf, cr) {
			continue
		}
		to := SquareOf(cf, cr)
		target := b.squares[to]
		if !target.IsEmpty() && target.Color() != us {
			moves = appendPawnCapture(moves, from, to, cr == promoRank)
		} else if to == b.epSquare {
			moves = append(moves, NewMove(from, to, EnPassantCapture))
		}
	}
	return moves
}

func appendPawnAdvance(moves []Move, from, to Square, promotes bool) []Move {
	if !promotes {
		return append(moves, NewMove(from, to, Quiet))
	}
	return append(moves,
		NewMove(from, to, PromoteQueen), NewMove(from, to, PromoteRook),
		NewMove(from, to, PromoteBishop), NewMove(from, to, PromoteKnight))
}

func appendPawnCapture(moves []Move, from, to Square, promotes bool) []Move {
	if !promotes {
		return append(moves, NewMove(from, to, Capture))
	}
	return append(moves,
		NewMove(from, to, PromoteQueenCapture), NewMove(from, to, PromoteRookCapture),
		NewMove(from, to, PromoteBishopCapture), NewMove(from, to, PromoteKnightCapture))
}

func (b *Board) genCastles(moves []Move) []Move {
	us := b.side
	rank := 0
	kingside, queenside := WhiteKingside, WhiteQueenside
	if us == Black {
		rank = 7
		kingside, queenside = BlackKingside, BlackQueenside
	}
	kingSq := SquareOf(4, rank)
	if b.squares[kingSq] != MakePiece(us, King) || b.IsAttacked(kingSq, us.Other()) {
		return moves
	}
	if b.castling&kingside != 0 &&
		b.squares[SquareOf(5, rank)].IsEmpty() && b.squares[SquareOf(6, rank)].IsEmpty() &&
		!b.IsAttacked(SquareOf(5, rank), us.Other()) && !b.IsAttacked(SquareOf(6, rank), us.Other()) {
		moves = append(moves, NewMove(kingSq, SquareOf(6, rank), CastleKingside))
	}
	if b.castling&queenside != 0 &&
		b.squares[SquareOf(3, rank)].IsEmpty() && b.squares[SquareOf(2, rank)].IsEmpty() && b.squares[SquareOf(1, rank)].IsEmpty() &&
		!b.IsAttacked(SquareOf(3, rank), us.Other()) && !b.IsAttacked(SquareOf(2, rank), us.Other()) {
		moves = append(moves, NewMove(kingSq, SquareOf(2, rank), CastleQueenside))
	}
	return moves
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	for _, o := range knightOffsets {
		file, rank := sq.File()+o[0], sq.Rank()+o[1]
		if onBoard(file, rank) {
			p := b.squares[SquareOf(file, rank)]
			if p == MakePiece(by, Knight) {
				return true
			}
		}
	}
	for _, o := range kingOffsets {
		file, rank := sq.File()+o[0], sq.Rank()+o[1]
		if onBoard(file, rank) {
			p := b.squares[SquareOf(file, rank)]
			if p == MakePiece(by, King) {
				return true
			}
		}
	}
	if slidingAttack(b, sq, by, bishopDirs[:], Bishop, Queen) {
		return true
	}
	if slidingAttack(b, sq, by, rookDirs[:], Rook, Queen) {
		return true
	}
	dir := -1
	if by == Black {
		dir = 1
	}
	for _, df := range []int{-1, 1} {
		file, rank := sq.File()+df, sq.Rank()+dir
		if onBoard(file, rank) && b.squares[SquareOf(file, rank)] == MakePiece(by, Pawn) {
			return true
		}
	}
	return false
}

func slidingAttack(b *Board, sq Square, by Color, dirs [][2]int, pt1, pt2 PieceType) bool {
	for _, d := range dirs {
		file, rank := sq.File(), sq.Rank()
		for {
			file += d[0]
			rank += d[1]
			if !onBoard(file, rank) {
				break
			}
			p := b.squares[SquareOf(file, rank)]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == by && (p.Type() == pt1 || p.Type() == pt2) {
				return true
			}
			break
		}
	}
	return false
}

// IsLegalMove applies m and checks the mover's own king is not left in
// check, the way original_source tests legality after makeMove.
func (b *Board) IsLegalMove(m Move) bool {
	mover := b.side
	b.DoMove(m)
	legal := !b.IsAttacked(b.KingSquare(mover), b.side)
	b.UndoMove()
	return legal
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves through IsLegalMove.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves(make([]Move, 0, 48))
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if b.IsLegalMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove is a short-circuiting GenerateLegalMoves, used by the
// end-of-game detector (component H) so it need not build the full slice.
func (b *Board) HasLegalMove() bool {
	pseudo := b.GeneratePseudoLegalMoves(make([]Move, 0, 48))
	for _, m := range pseudo {
		if b.IsLegalMove(m) {
			return true
		}
	}
	return false
}
