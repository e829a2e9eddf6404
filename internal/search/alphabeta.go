package search

import "github.com/mkdlabs/chess0go/internal/board"

// alphabeta implements component F, spec.md §4.F: the main PV alpha-beta
// recursion with null-move reduction, PVS, late move reductions, cache
// probe/store and history updates. Grounded step-for-step on
// original_source/src/search.cpp's alphabetapvs().
func (e *Engine) alphabeta(ply, depth, alpha, beta int) int {
	e.pv.startNode(ply)

	if depth <= 0 {
		e.followPV = false
		return e.qsearch(ply, alpha, beta)
	}

	if ply > 0 && e.Board.RepetitionCount() >= 3 {
		return Draw
	}

	if !e.followPV && e.allowNull && !e.Board.InCheck() &&
		nonPawnMaterial(e.Board, e.Board.SideToMove()) > e.Tunables.NullmoveLimit {
		e.allowNull = false
		e.Board.DoNullMove()
		val := -e.alphabeta(ply+1, depth-1-e.Tunables.NullmoveReduction, -beta, -beta+1)
		e.Board.UndoNullMove()
		e.allowNull = true
		if e.timedOutOrStopped() {
			return 0
		}
		if val >= beta {
			return val
		}
	}

	moves := e.Board.GeneratePseudoLegalMoves(make([]board.Move, 0, 48))

	movesFound := 0
	pvMovesFound := 0

	for i := 0; i < len(moves); i++ {
		selectMove(moves, i, ply, depth, e.followPV, &e.lastPV, e.History, e.Board.SideToMove())
		m := moves[i]

		mover := e.Board.SideToMove()
		wasInCheck := e.Board.InCheck()
		e.Board.DoMove(m)

		var val int
		cached := false
		key := e.Board.Key()
		if e.Tunables.UseCache {
			entry := e.Cache.Find(key, depth)
			if entry.Depth >= 0 {
				val = entry.Score
				cached = true
				e.pv.moves[ply][ply] = m
				if e.pv.length[ply] < ply+1 {
					e.pv.length[ply] = ply + 1
				}
			}
		}

		if e.Board.IsAttacked(e.Board.KingSquare(mover), e.Board.SideToMove()) {
			e.Board.UndoMove()
			continue
		}

		e.nodes++
		e.monitor.tick()
		movesFound++

		if !cached {
			nextDepth := depth - 1
			givesCheck := e.Board.InCheck()
			if e.Tunables.UseLMR && ply > e.Tunables.LmrPlyStart && depth > e.Tunables.LmrSearchDepth &&
				!m.Flag().IsCapture() && !m.Flag().IsPromotion() &&
				!wasInCheck && !givesCheck &&
				movesFound > e.Tunables.LmrMoveStart && pvMovesFound == 0 {
				nextDepth = depth - 2
			}

			if pvMovesFound > 0 {
				val = -e.alphabeta(ply+1, depth-1, -alpha-1, -alpha)
				if val > alpha && val < beta {
					val = -e.alphabeta(ply+1, depth-1, -beta, -alpha)
				}
			} else {
				val = -e.alphabeta(ply+1, nextDepth, -beta, -alpha)
			}
		}

		e.Board.UndoMove()

		if e.timedOutOrStopped() {
			return 0
		}

		if val >= beta {
			e.History.Bump(mover, m, depth)
			return beta
		}

		if val > alpha {
			alpha = val
			pvMovesFound++
			e.pv.record(ply, m)
		}

		if e.Tunables.UseCache && !cached && val > -Checkmate && val < Checkmate {
			e.Cache.Add(key, cacheEntry(key, depth, val))
		}
	}

	if pvMovesFound > 0 {
		e.History.Bump(e.Board.SideToMove(), e.pv.moves[ply][ply], depth)
	}

	if e.Board.HalfMoveClock() > 149 {
		return Draw
	}

	if movesFound == 0 {
		if e.Board.InCheck() {
			return -(Checkmate - ply + 1)
		}
		return Stalemate
	}

	return alpha
}

// nonPawnMaterial sums the material value of every piece of side except
// pawns and the king, used by the null-move guard (spec.md §4.F step 4).
func nonPawnMaterial(b *board.Board, side board.Color) int {
	total := 0
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.Color() != side {
			continue
		}
		switch p.Type() {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
			total += board.PieceValues[p.Type()]
		}
	}
	return total
}
