package search

import "github.com/mkdlabs/chess0go/internal/board"

// Outcome classifies why a game has ended, reported by EndOfGame.
type Outcome int

const (
	NotOver Outcome = iota
	OutcomeCheckmate
	OutcomeStalemate
	DrawInsufficientMaterial
	DrawRepetition
	DrawFiftyMove
	IllegalPosition
)

// EndOfGameResult is component H's return value, spec.md §4.H: whether the
// game is over, the legal move list (so the driver can take the
// single-legal-move shortcut without regenerating it), and why.
type EndOfGameResult struct {
	Outcome    Outcome
	LegalMoves []board.Move
}

func (r EndOfGameResult) IsOver() bool { return r.Outcome != NotOver }

// EndOfGame implements component H, checked in the order spec.md §4.H
// specifies. Grounded on original_source/src/search.cpp's isEndOfgame().
func EndOfGame(b *board.Board) EndOfGameResult {
	side := b.SideToMove()

	if b.IsAttacked(b.KingSquare(side.Other()), side) {
		return EndOfGameResult{Outcome: IllegalPosition}
	}

	legal := b.GenerateLegalMoves()
	if len(legal) == 0 {
		if b.InCheck() {
			return EndOfGameResult{Outcome: OutcomeCheckmate}
		}
		return EndOfGameResult{Outcome: OutcomeStalemate}
	}

	if b.HasInsufficientMaterial() {
		return EndOfGameResult{Outcome: DrawInsufficientMaterial, LegalMoves: legal}
	}

	if b.RepetitionCount() >= 3 {
		return EndOfGameResult{Outcome: DrawRepetition, LegalMoves: legal}
	}

	if b.HalfMoveClock() > 149 {
		return EndOfGameResult{Outcome: DrawFiftyMove, LegalMoves: legal}
	}

	return EndOfGameResult{Outcome: NotOver, LegalMoves: legal}
}
