package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/book"
)

func TestInitializeAlwaysFailsOnFirstCall(t *testing.T) {
	b := book.New()
	err := b.Initialize("nonexistent.book")
	assert.Error(t, err)
}

func TestGetEntryAlwaysMisses(t *testing.T) {
	b := book.New()
	pos := board.NewStartingPosition()
	_, ok := b.GetEntry(pos.Key())
	assert.False(t, ok)
}
