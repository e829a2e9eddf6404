package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/search"
)

func newEngine(b *board.Board) *search.Engine {
	tun := search.DefaultTunables()
	tun.SearchDepth = 4
	return search.NewEngine(b, tun, nil)
}

func sq(s string) board.Square {
	return board.SquareOf(int(s[0]-'a'), int(s[1]-'1'))
}

// S1: start position, depth 1 returns a legal move with a small score.
func TestThinkStartPositionDepthOne(t *testing.T) {
	b := board.NewStartingPosition()
	e := newEngine(b)
	m := e.Think(search.Limits{Depth: 1})

	require.NotEqual(t, search.NoMove, m)
	legal := b.GenerateLegalMoves()
	found := false
	for _, lm := range legal {
		if lm == m {
			found = true
		}
	}
	assert.True(t, found)
}

// S2: Fool's mate. After 1.f3 e5 2.g4, Black to move finds Qh4#.
func TestThinkFindsFoolsMate(t *testing.T) {
	b := board.NewStartingPosition()
	b.DoMove(board.NewMove(sq("f2"), sq("f3"), board.Quiet))
	b.DoMove(board.NewMove(sq("e7"), sq("e5"), board.DoublePawnPush))
	b.DoMove(board.NewMove(sq("g2"), sq("g4"), board.DoublePawnPush))

	e := newEngine(b)
	m := e.Think(search.Limits{Depth: 3})

	require.NotEqual(t, search.NoMove, m)
	assert.Equal(t, sq("d8"), m.From())
	assert.Equal(t, sq("h4"), m.To())
}

// S3: stalemate position has no legal moves and Think returns NoMove.
func TestThinkStalemateReturnsNoMove(t *testing.T) {
	b, err := board.FromFEN("8/8/8/8/8/kq6/8/K7 w - - 0 1")
	require.NoError(t, err)
	e := newEngine(b)
	m := e.Think(search.Limits{Depth: 4})
	assert.Equal(t, search.NoMove, m)

	result := search.EndOfGame(b)
	assert.Equal(t, search.OutcomeStalemate, result.Outcome)
}

// S4: K vs K is reported as a draw by the end-of-game detector.
func TestEndOfGameInsufficientMaterial(t *testing.T) {
	b, err := board.FromFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	result := search.EndOfGame(b)
	assert.Equal(t, search.DrawInsufficientMaterial, result.Outcome)
}

// S5: threefold repetition is detected by the end-of-game detector.
func TestEndOfGameThreefoldRepetition(t *testing.T) {
	b := board.NewStartingPosition()
	moves := []struct{ from, to string }{
		{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"},
		{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"},
	}
	for _, m := range moves {
		b.DoMove(board.NewMove(sq(m.from), sq(m.to), board.Quiet))
	}
	result := search.EndOfGame(b)
	assert.Equal(t, search.DrawRepetition, result.Outcome)
}

// Mate score bound (spec.md §8 property 1): IsMateScore only fires inside
// [-Checkmate, +Checkmate]'s extremes, never for an ordinary eval score.
func TestIsMateScoreBoundary(t *testing.T) {
	assert.False(t, search.IsMateScore(0))
	assert.False(t, search.IsMateScore(search.Checkmate-1))
	assert.True(t, search.IsMateScore(search.Checkmate))
	assert.True(t, search.IsMateScore(-search.Checkmate))
}

// PV legality (spec.md §8 property 3): every move in the reported PV is
// legal when played in sequence from the root.
func TestPVIsSequenceOfLegalMoves(t *testing.T) {
	b := board.NewStartingPosition()
	e := newEngine(b)
	e.Think(search.Limits{Depth: 3})
	pv := e.LastPV()
	require.NotEmpty(t, pv)

	cur := board.NewStartingPosition()
	for _, m := range pv {
		legal := cur.GenerateLegalMoves()
		ok := false
		for _, lm := range legal {
			if lm == m {
				ok = true
				break
			}
		}
		require.True(t, ok, "move %v not legal in sequence", m)
		cur.DoMove(m)
	}
}
