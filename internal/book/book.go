// Package book carries the opening-book seam the teacher's own
// openingbook.Book exposes (ZobristKey-keyed entries, an Initialize(path)
// step, a lookup by position key) without implementing book loading or
// lookup itself. spec.md's Non-goals exclude opening books entirely;
// SPEC_FULL.md §3 keeps only this narrow, always-empty placeholder so
// internal/search's think() can hold a book field shaped the way the
// teacher's does, ready for a future book to be plugged in without
// touching the search core.
package book

import (
	"errors"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/zobrist"
)

// Entry mirrors the teacher's BookEntry: a recommended move for a given
// position key. Never populated by this package.
type Entry struct {
	Key  zobrist.Key
	Move board.Move
}

// Book is an always-empty opening book. It exists so internal/search can
// hold a *Book field shaped like the teacher's Search.book without
// depending on any book file format or loader.
type Book struct {
	initialized bool
}

// New returns a disabled Book.
func New() *Book { return &Book{} }

// Initialize always fails: this build carries no book data, matching
// spec.md's "no opening book" Non-goal. The signature and the "already
// initialized" short-circuit mirror openingbook.Book.Initialize so a real
// loader could be dropped in later without changing callers.
func (b *Book) Initialize(path string) error {
	if b.initialized {
		return nil
	}
	return errors.New("book: no opening book configured")
}

// GetEntry always reports a miss.
func (b *Book) GetEntry(key zobrist.Key) (Entry, bool) {
	return Entry{}, false
}
