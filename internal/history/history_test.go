package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/history"
)

func TestBumpIsMonotonicIncreasing(t *testing.T) {
	h := history.NewHistory()
	m := board.NewMove(board.SquareOf(4, 1), board.SquareOf(4, 3), board.Quiet)

	assert.Equal(t, int64(0), h.Score(board.White, m))
	h.Bump(board.White, m, 3)
	first := h.Score(board.White, m)
	assert.Equal(t, int64(9), first)

	h.Bump(board.White, m, 4)
	assert.Greater(t, h.Score(board.White, m), first)
}

func TestBumpIsPerSide(t *testing.T) {
	h := history.NewHistory()
	m := board.NewMove(board.SquareOf(0, 0), board.SquareOf(0, 1), board.Quiet)
	h.Bump(board.White, m, 5)
	assert.Equal(t, int64(0), h.Score(board.Black, m))
}

func TestClearResetsAllCounters(t *testing.T) {
	h := history.NewHistory()
	m := board.NewMove(board.SquareOf(1, 1), board.SquareOf(1, 2), board.Quiet)
	h.Bump(board.White, m, 4)
	h.Clear()
	assert.Equal(t, int64(0), h.Score(board.White, m))
}
