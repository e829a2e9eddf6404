package search_test

import (
	"context"
	"time"

	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/search"
	"github.com/mkdlabs/chess0go/internal/transpositiontable"
)

func TestSessionStartSearchProducesAResult(t *testing.T) {
	b := board.NewStartingPosition()
	tun := search.DefaultTunables()
	tun.SearchDepth = 2
	s := search.NewSession(b, tun, nil)

	s.StartSearch(search.Limits{Depth: 2})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.WaitWhileSearching(ctx)

	assert.False(t, s.IsSearching())
	assert.NotEqual(t, search.NoMove, s.Result())
}

func TestSessionRejectsOverlappingStart(t *testing.T) {
	b := board.NewStartingPosition()
	tun := search.DefaultTunables()
	tun.SearchDepth = 6
	s := search.NewSession(b, tun, nil)

	s.StartSearch(search.Limits{Depth: 6})
	require.True(t, s.IsSearching())
	s.StartSearch(search.Limits{Depth: 6}) // ignored, logged, no panic

	s.StopSearch()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.WaitWhileSearching(ctx)
}

func TestSessionNewGameClearsCacheAndHistory(t *testing.T) {
	b := board.NewStartingPosition()
	s := search.NewSession(b, search.DefaultTunables(), nil)
	s.Engine().Cache.Add(b.Key(), transpositiontable.Entry{Key: b.Key(), Depth: 3, Score: 10})
	s.NewGame()
	entry := s.Engine().Cache.Find(b.Key(), 3)
	assert.Equal(t, -1, entry.Depth)
}
