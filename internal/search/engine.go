package search

import (
	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/book"
	"github.com/mkdlabs/chess0go/internal/history"
	"github.com/mkdlabs/chess0go/internal/transpositiontable"
	"github.com/mkdlabs/chess0go/internal/util"
	"github.com/mkdlabs/chess0go/internal/xboard"
	"github.com/mkdlabs/chess0go/internal/zobrist"
)

// Engine is the "Engine aggregate" spec.md §9 recommends in place of the
// original's process-wide globals: it owns the board, cache, history
// table, PV stores, time monitor and tunables, and is passed by reference
// into the recursion. No hidden state survives a Think() return beyond
// what Engine itself stores between searches (cache, history, lastPV —
// spec.md §5 "ordering guarantees").
type Engine struct {
	Board    *board.Board
	Cache    *transpositiontable.Cache
	History  *history.History
	Tunables Tunables
	book     *book.Book // always-disabled seam, see internal/book

	pv     pvTable // built during the current iteration
	lastPV pvTable // the most recently completed root PV (follow-PV source)

	monitor *monitor

	followPV  bool
	allowNull bool
	nodes     int64

	// stopRequested is set from Stop(), which may be called from a
	// different goroutine than the one running Think() (Session.StopSearch
	// does exactly this) — util.Bool keeps that handoff race-free.
	stopRequested util.Bool
}

// NewEngine constructs an Engine around a position, ready for repeated
// Think() calls. cmdSource may be nil (equivalent to xboard.NoopSource).
func NewEngine(b *board.Board, tun Tunables, cmdSource xboard.CommandSource) *Engine {
	return &Engine{
		Board:    b,
		Cache:    transpositiontable.NewCache(),
		History:  history.NewHistory(),
		Tunables: tun,
		book:     book.New(),
		monitor:  newMonitor(tun.UpdateInterval, cmdSource),
	}
}

// Stop requests cooperative cancellation, the "external stop" condition of
// spec.md §7's error table.
func (e *Engine) Stop() { e.stopRequested.Store(true) }

// Nodes returns the node counter accumulated by the most recent Think().
func (e *Engine) Nodes() int64 { return e.nodes }

// LastPV returns the most recently completed root principal variation.
func (e *Engine) LastPV() []board.Move { return e.lastPV.line() }

func (e *Engine) timedOutOrStopped() bool {
	return e.monitor.TimedOut() || e.stopRequested.Load()
}

// cacheEntry builds a transposition cache entry for the given key/depth/
// score, used by alphabeta's cache-store step (spec.md §4.F, §4.B).
func cacheEntry(key zobrist.Key, depth, score int) transpositiontable.Entry {
	return transpositiontable.Entry{Key: key, Depth: depth, Score: score}
}
