package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkdlabs/chess0go/internal/board"
)

func TestStartingPositionKeyIsStableAcrossCalls(t *testing.T) {
	b1 := board.NewStartingPosition()
	b2 := board.NewStartingPosition()
	assert.Equal(t, b1.Key(), b2.Key())
}

func TestMakeUnmakeRoundTripsKey(t *testing.T) {
	b := board.NewStartingPosition()
	before := b.Key()
	moves := b.GenerateLegalMoves()
	assert.NotEmpty(t, moves)
	b.DoMove(moves[0])
	assert.NotEqual(t, before, b.Key())
	b.UndoMove()
	assert.Equal(t, before, b.Key())
}

func TestDifferentPositionsLikelyDifferentKeys(t *testing.T) {
	b := board.NewStartingPosition()
	k1 := b.Key()
	moves := b.GenerateLegalMoves()
	b.DoMove(moves[0])
	k2 := b.Key()
	assert.NotEqual(t, k1, k2)
}
