package search

import (
	"sort"

	"github.com/mkdlabs/chess0go/internal/board"
)

// qsearch implements component E, spec.md §4.E: alpha-beta restricted to
// captures, promotions and one check extension, to avoid the horizon
// effect. Grounded on original_source/src/search.cpp's qsearch().
func (e *Engine) qsearch(ply, alpha, beta int) int {
	if e.timedOutOrStopped() {
		return 0
	}

	e.pv.startNode(ply)

	if e.Board.InCheck() {
		return e.alphabeta(ply, 1, alpha, beta)
	}

	val := e.Board.Eval()
	if val >= beta {
		return val
	}
	if val > alpha {
		alpha = val
	}

	moves := captureAndPromotionMoves(e.Board)
	for _, m := range moves {
		mover := e.Board.SideToMove()
		e.Board.DoMove(m)
		if e.Board.IsAttacked(e.Board.KingSquare(mover), e.Board.SideToMove()) {
			e.Board.UndoMove()
			continue
		}
		e.nodes++
		e.monitor.tick()

		val := -e.qsearch(ply+1, -beta, -alpha)
		e.Board.UndoMove()

		if e.timedOutOrStopped() {
			return 0
		}
		if val >= beta {
			return val
		}
		if val > alpha {
			alpha = val
			e.pv.record(ply, m)
		}
	}
	return alpha
}

// captureAndPromotionMoves generates the quiescence move list, pre-sorted
// by approximate MVV-LVA gain (spec.md §6 "captgen... pre-sorted by gain").
func captureAndPromotionMoves(b *board.Board) []board.Move {
	pseudo := b.GeneratePseudoLegalMoves(make([]board.Move, 0, 32))
	var out []board.Move
	for _, m := range pseudo {
		flag := m.Flag()
		if flag.IsCapture() || flag.IsPromotion() {
			out = append(out, m.WithValue(int32(captureGain(b, m))))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value() > out[j].Value() })
	return out
}

func captureGain(b *board.Board, m board.Move) int {
	victim := b.PieceAt(m.To())
	attacker := b.PieceAt(m.From())
	gain := board.PieceValues[victim.Type()]*16 - board.PieceValues[attacker.Type()]
	if p := m.Flag().PromotedType(); p != board.NoPieceType {
		gain += board.PieceValues[p]
	}
	return gain
}
