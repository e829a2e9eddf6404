package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkdlabs/chess0go/internal/board"
)

func TestStartingPositionHas20LegalMoves(t *testing.T) {
	b := board.NewStartingPosition()
	moves := b.GenerateLegalMoves()
	assert.Len(t, moves, 20)
}

func TestFoolsMateLeavesNoLegalMoves(t *testing.T) {
	b := board.NewStartingPosition()
	play := func(from, to string, flag board.MoveFlag) {
		sq := func(s string) board.Square {
			file := int(s[0] - 'a')
			rank := int(s[1] - '1')
			return board.SquareOf(file, rank)
		}
		b.DoMove(board.NewMove(sq(from), sq(to), flag))
	}
	play("f2", "f3", board.Quiet)
	play("e7", "e5", board.DoublePawnPush)
	play("g2", "g4", board.DoublePawnPush)
	play("d8", "h4", board.Quiet)

	assert.True(t, b.InCheck())
	assert.False(t, b.HasLegalMove())
}

func TestStalematePosition(t *testing.T) {
	// White king a1, black king a3, black queen b3: White to move, not in
	// check, no legal move — a standard stalemate test position.
	b, err := board.FromFEN("8/8/8/8/8/kq6/8/K7 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.InCheck())
	assert.False(t, b.HasLegalMove())
}

func TestKingVsKingIsInsufficientMaterial(t *testing.T) {
	b, err := board.FromFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.HasInsufficientMaterial())
}

func TestSameColouredBishopsIsInsufficientMaterial(t *testing.T) {
	// White bishops on c1 and f4 (both dark squares), lone black king.
	b, err := board.FromFEN("4k3/8/8/8/5B2/8/8/2B1K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.HasInsufficientMaterial())
}

func TestOppositeColouredBishopsIsNotInsufficientMaterial(t *testing.T) {
	// White bishops c1 (dark square) and f1 (light square) against a lone
	// black king: not a categorical draw.
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.HasInsufficientMaterial())
}

func TestKnightVsKnightIsInsufficientMaterial(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/3n4/2N1K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.HasInsufficientMaterial())
}

func TestKnightVsBishopIsInsufficientMaterial(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/3b4/2N1K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.HasInsufficientMaterial())
}

func TestRookIsSufficientMaterial(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/2R1K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.HasInsufficientMaterial())
}

func TestRepetitionCount(t *testing.T) {
	b := board.NewStartingPosition()
	sq := func(s string) board.Square {
		file := int(s[0] - 'a')
		rank := int(s[1] - '1')
		return board.SquareOf(file, rank)
	}
	shuffle := []struct{ from, to string }{
		{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"},
	}
	for _, m := range shuffle {
		b.DoMove(board.NewMove(sq(m.from), sq(m.to), board.Quiet))
	}
	assert.Equal(t, 2, b.RepetitionCount())
}

func TestCastlingKingsideUpdatesRookAndRights(t *testing.T) {
	b, err := board.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	kingSq := sqFor("e1")
	toSq := sqFor("g1")
	b.DoMove(board.NewMove(kingSq, toSq, board.CastleKingside))
	assert.Equal(t, board.MakePiece(board.White, board.Rook), b.PieceAt(sqFor("f1")))
	assert.True(t, b.PieceAt(sqFor("h1")).IsEmpty())
	assert.Equal(t, board.CastlingRights(0), b.CastlingRights()&(board.WhiteKingside|board.WhiteQueenside))
}

func sqFor(s string) board.Square {
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return board.SquareOf(file, rank)
}

func TestSetPieceValuesOverridesEval(t *testing.T) {
	original := board.PieceValues
	defer func() { board.PieceValues = original }()

	board.SetPieceValues(1, 1, 1, 1, 1)
	assert.Equal(t, 1, board.PieceValues[board.Pawn])
	assert.Equal(t, 1, board.PieceValues[board.Queen])
	assert.Equal(t, 0, board.PieceValues[board.King])
}
