package search

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/logging"
)

var out = message.NewPrinter(language.English)

// NoMove is the sentinel returned by Think when there is nothing to search
// (spec.md §7: "No legal moves at root → think() returns NoMove").
var NoMove = board.NullMove

// Think implements component G, spec.md §4.G: the iterative-deepening
// driver. Grounded on original_source/src/search.cpp's Board::think().
func (e *Engine) Think(limits Limits) board.Move {
	log := logging.GetSearchLog()

	endState := EndOfGame(e.Board)
	if endState.IsOver() {
		return NoMove
	}
	if len(endState.LegalMoves) == 1 {
		return endState.LegalMoves[0]
	}

	if e.Tunables.UseBook {
		if entry, ok := e.book.GetEntry(e.Board.Key()); ok {
			return entry.Move
		}
	}

	e.pv.reset()
	e.lastPV.reset()
	e.History.Clear()
	e.nodes = 0
	e.stopRequested.Store(false)

	maxTimeMs := e.resolveMaxTime(limits)
	e.monitor.start(maxTimeMs)

	searchDepth := limits.Depth
	if searchDepth <= 0 || searchDepth > e.Tunables.SearchDepth {
		searchDepth = e.Tunables.SearchDepth
	}
	if searchDepth > MaxPly-1 {
		searchDepth = MaxPly - 1
	}

	for currentDepth := 1; currentDepth <= searchDepth; currentDepth++ {
		e.pv.reset()
		e.followPV = true
		e.allowNull = true

		score := e.alphabeta(0, currentDepth, -Infinity, Infinity)

		if e.timedOutOrStopped() {
			break
		}

		e.lastPV = e.pv
		elapsed := e.monitor.elapsedMs()

		if !e.Tunables.BeQuiet {
			log.Infof(out.Sprintf("depth=%2d score=%6d nodes=%8d time=%5dms pv=%s",
				currentDepth, score, e.nodes, elapsed, pvString(e.lastPV.line())))
		}

		if elapsed > maxTimeMs {
			break
		}

		if abs(score) > Checkmate-currentDepth {
			break
		}
	}

	moves := e.lastPV.line()
	if len(moves) == 0 {
		return NoMove
	}
	return moves[0]
}

// resolveMaxTime computes the millisecond search budget for this Think()
// call from limits, applying spec.md §4.G.a's time-control formula when a
// clock is in play.
func (e *Engine) resolveMaxTime(limits Limits) int64 {
	switch {
	case limits.MoveTime > 0:
		return limits.MoveTime.Milliseconds()
	case limits.Infinite:
		return 1 << 40
	case limits.TimeControl:
		return timeControl(
			limits.OwnTime.Milliseconds(),
			limits.OppTime.Milliseconds(),
			limits.OwnInc.Milliseconds(),
			int64(e.Board.PliesPlayed()),
		)
	default:
		return 5000
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func pvString(moves []board.Move) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += squareName(m.From()) + squareName(m.To())
	}
	return s
}

func squareName(sq board.Square) string {
	return string(rune('a'+sq.File())) + string(rune('1'+sq.Rank()))
}
