package search

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/logging"
	"github.com/mkdlabs/chess0go/internal/xboard"
)

// Session wraps an Engine with the goroutine-driven Start/Stop surface the
// teacher's own internal/search.Search exposes: StartSearch launches
// Think() on its own goroutine and returns immediately, StopSearch
// requests cooperative cancellation, isRunning (a weighted semaphore sized
// 1, exactly as the teacher uses it to model "one search at a time") marks
// a search in flight, and WaitWhileSearching blocks on a done channel until
// it completes. This is the ambient
// concurrency shape spec.md §5 calls out: "a single search runs at a
// time", modelled here as the teacher models it rather than with a bare
// mutex.
type Session struct {
	engine *Engine

	isRunning *semaphore.Weighted
	mu        sync.Mutex
	result    board.Move
	done      chan struct{}
}

// NewSession constructs a Session around a fresh Engine for the given
// position and tunables.
func NewSession(b *board.Board, tun Tunables, cmdSource xboard.CommandSource) *Session {
	return &Session{
		engine:    NewEngine(b, tun, cmdSource),
		isRunning: semaphore.NewWeighted(1),
	}
}

// StartSearch begins Think() on a new goroutine and returns at once,
// matching the teacher's Search.StartSearch semaphore handshake. It never
// blocks: if a previous search still holds the semaphore, the call is
// logged and ignored.
func (s *Session) StartSearch(limits Limits) {
	if !s.isRunning.TryAcquire(1) {
		logging.GetSearchLog().Warning("search already running, ignoring StartSearch")
		return
	}
	s.done = make(chan struct{})
	go func() {
		defer s.isRunning.Release(1)
		defer close(s.done)
		m := s.engine.Think(limits)
		s.mu.Lock()
		s.result = m
		s.mu.Unlock()
	}()
}

// StopSearch requests cooperative cancellation (spec.md §7 "External
// stop").
func (s *Session) StopSearch() { s.engine.Stop() }

// IsSearching reports whether a search goroutine currently holds the
// semaphore.
func (s *Session) IsSearching() bool {
	if s.isRunning.TryAcquire(1) {
		s.isRunning.Release(1)
		return false
	}
	return true
}

// WaitWhileSearching blocks until the in-flight search completes or ctx is
// done, matching the teacher's WaitWhileSearching.
func (s *Session) WaitWhileSearching(ctx context.Context) {
	if s.done == nil {
		return
	}
	select {
	case <-s.done:
	case <-ctx.Done():
	}
}

// Result returns the move found by the most recently completed search.
func (s *Session) Result() board.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Engine exposes the underlying Engine for callers that need direct access
// to the cache, history table or node counter between searches.
func (s *Session) Engine() *Engine { return s.engine }

// NewGame clears all state that must not carry over between games
// (spec.md's Non-goals exclude a persistent cache across games).
func (s *Session) NewGame() {
	s.engine.Cache.Clear()
	s.engine.History.Clear()
}
